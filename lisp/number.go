package lisp

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/nukata/goarith"
)

func tryToReadNumber(s string) (goarith.Number, bool) {
	z := new(big.Int)
	if _, ok := z.SetString(s, 10); ok {
		return goarith.AsNumber(z), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return goarith.AsNumber(f), true
	}
	return nil, false
}

// asNumber converts a Number atom into an arithmetic value.
func asNumber(x Sexpr) (goarith.Number, error) {
	if n, ok := x.(Number); ok {
		if v, ok := tryToReadNumber(string(n)); ok {
			return v, nil
		}
	}
	return nil, typeMismatch("number", x)
}

// numberAtom turns an arithmetic value back into a Number atom.
func numberAtom(n goarith.Number) Number {
	return Number(fmt.Sprint(n))
}

func intNumber(i int64) goarith.Number {
	return goarith.AsNumber(big.NewInt(i))
}

// fold combines the numbers of a list with op, starting from identity.
func fold(args Sexpr, identity int64, op func(a, b goarith.Number) goarith.Number) (Sexpr, error) {
	acc := intNumber(identity)
	elems, _ := Slice(args)
	for _, e := range elems {
		n, err := asNumber(e)
		if err != nil {
			return nil, err
		}
		acc = op(acc, n)
	}
	return numberAtom(acc), nil
}
