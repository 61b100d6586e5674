package lisp

import "regexp"

// Sexpr is the value type shared by the reader, the evaluator and the printer.
// The set of cases is closed: Literal, Number, Symbol, String, Operator,
// *Cell and *Function.
type Sexpr interface {
	sexpr()
}

// Literal is one of the two truth constants, t or nil.
type Literal string

// Number is a numeric atom holding its lexeme.
type Number string

// Symbol is a name looked up in an environment.
type Symbol string

// String is a string atom without its surrounding quotes.
type String string

// Operator is one of the reader prefix operators ' ` , or the dot.
type Operator string

func (Literal) sexpr()   {}
func (Number) sexpr()    {}
func (Symbol) sexpr()    {}
func (String) sexpr()    {}
func (Operator) sexpr()  {}
func (*Cell) sexpr()     {}
func (*Function) sexpr() {}

// Nil is the false value and the list terminator.
var Nil Sexpr = Literal("nil")

// T is the canonical true value.
var T Sexpr = Literal("t")

// Reader operators.
const (
	Quote      = Operator("'")
	Quasiquote = Operator("`")
	Unquote    = Operator(",")
	Dot        = Operator(".")
)

//----------------------------------------------------------------------

// Cell represents a cons-cell.
// &Cell{car, cdr} works as the "cons" operation.
type Cell struct {
	Car Sexpr
	Cdr Sexpr
}

// List builds a proper list of xs.
func List(xs ...Sexpr) Sexpr {
	var result Sexpr = Nil
	for i := len(xs) - 1; i >= 0; i-- {
		result = &Cell{xs[i], result}
	}
	return result
}

// listWithTail builds a list of xs ending in tail instead of nil.
func listWithTail(xs []Sexpr, tail Sexpr) Sexpr {
	result := tail
	for i := len(xs) - 1; i >= 0; i-- {
		result = &Cell{xs[i], result}
	}
	return result
}

// Slice returns the elements of a proper list and whatever ends it.
func Slice(x Sexpr) (elems []Sexpr, tail Sexpr) {
	for {
		c, ok := x.(*Cell)
		if !ok {
			return elems, x
		}
		elems = append(elems, c.Car)
		x = c.Cdr
	}
}

// Bool converts a Go boolean into t or nil.
func Bool(b bool) Sexpr {
	if b {
		return T
	}
	return Nil
}

//----------------------------------------------------------------------

// Specialness tells how a function receives its arguments.
type Specialness int

const (
	// Normal functions receive their arguments evaluated, left to right.
	Normal Specialness = iota
	// Lazy functions receive the raw argument forms.
	Lazy
	// Macro functions receive the raw argument forms and expand themselves.
	Macro
)

// Body is the native part of a Function.
type Body interface {
	Call(env *Env, args Sexpr) (Sexpr, error)
}

// BodyFunc adapts an ordinary function to Body.
type BodyFunc func(env *Env, args Sexpr) (Sexpr, error)

// Call calls f(env, args).
func (f BodyFunc) Call(env *Env, args Sexpr) (Sexpr, error) {
	return f(env, args)
}

// Function is a callable value.
type Function struct {
	Name    string
	Special Specialness
	Body    Body
}

//----------------------------------------------------------------------

var numberRE = regexp.MustCompile(`^-?[0-9]*\.?[0-9]+$`)

// NewAtom classifies a bare token: t and nil are literals, numeric
// lexemes are numbers and anything else is a symbol.
func NewAtom(text string) Sexpr {
	switch {
	case text == "t" || text == "nil":
		return Literal(text)
	case numberRE.MatchString(text):
		return Number(text)
	}
	return Symbol(text)
}

// lexeme returns the source text carried by an atom.
func lexeme(x Sexpr) (string, bool) {
	switch x := x.(type) {
	case Literal:
		return string(x), true
	case Number:
		return string(x), true
	case Symbol:
		return string(x), true
	case String:
		return string(x), true
	case Operator:
		return string(x), true
	case *Function:
		return x.Name, true
	}
	return "", false
}

// TypeName returns a short description of the case of x.
func TypeName(x Sexpr) string {
	switch x.(type) {
	case Literal:
		return "literal"
	case Number:
		return "number"
	case Symbol:
		return "symbol"
	case String:
		return "string"
	case Operator:
		return "operator"
	case *Cell:
		return "cons"
	case *Function:
		return "function"
	}
	return "unknown"
}
