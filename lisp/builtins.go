package lisp

import (
	"fmt"
	"io"
	"strings"

	"github.com/nukata/goarith"
)

// primitives are the native functions of the global frame.
var primitives = []struct {
	name    string
	special Specialness
	body    BodyFunc
}{
	{"car", Normal, car},
	{"cdr", Normal, cdr},
	{"cons", Normal, cons},
	{"list", Normal, list},
	{"lambda", Lazy, lambda},
	{"setq", Lazy, setq},
	{"if", Lazy, ifForm},
	{"+", Normal, add},
	{"*", Normal, mul},
	{"neg", Normal, neg},
	{"eq", Normal, eq},
	{"consp", Normal, consp},
	{"<", Normal, lessThan},
	{"eval", Normal, eval},
	{"load", Normal, load},
	{"echo", Normal, echo},
	{"defmacro", Lazy, defmacro},
}

// primitiveFrame returns a fresh frame holding every primitive.
func primitiveFrame() Frame {
	frame := make(Frame, len(primitives))
	for _, p := range primitives {
		frame[p.name] = &Function{Name: p.name, Special: p.special, Body: p.body}
	}
	return frame
}

// fixedArgs returns the n elements of a proper argument list.
func fixedArgs(name string, args Sexpr, n int) ([]Sexpr, error) {
	elems, tail := Slice(args)
	if len(elems) != n || tail != Nil {
		return nil, NewEvalError(ErrArity, fmt.Sprintf("%s takes %d argument(s)", name, n), args)
	}
	return elems, nil
}

//----------------------------------------------------------------------

func car(env *Env, args Sexpr) (Sexpr, error) {
	a, err := fixedArgs("car", args, 1)
	if err != nil {
		return nil, err
	}
	j, ok := a[0].(*Cell)
	if !ok {
		return nil, typeMismatch("cons", a[0])
	}
	return j.Car, nil
}

func cdr(env *Env, args Sexpr) (Sexpr, error) {
	a, err := fixedArgs("cdr", args, 1)
	if err != nil {
		return nil, err
	}
	j, ok := a[0].(*Cell)
	if !ok {
		return nil, typeMismatch("cons", a[0])
	}
	return j.Cdr, nil
}

func cons(env *Env, args Sexpr) (Sexpr, error) {
	a, err := fixedArgs("cons", args, 2)
	if err != nil {
		return nil, err
	}
	return &Cell{a[0], a[1]}, nil
}

func list(env *Env, args Sexpr) (Sexpr, error) {
	return args, nil
}

func add(env *Env, args Sexpr) (Sexpr, error) {
	return fold(args, 0, goarith.Number.Add)
}

func mul(env *Env, args Sexpr) (Sexpr, error) {
	return fold(args, 1, goarith.Number.Mul)
}

// (neg x...) returns the list of -x...
func neg(env *Env, args Sexpr) (Sexpr, error) {
	elems, _ := Slice(args)
	zero := intNumber(0)
	result := make([]Sexpr, len(elems))
	for i, e := range elems {
		n, err := asNumber(e)
		if err != nil {
			return nil, err
		}
		result[i] = numberAtom(zero.Sub(n))
	}
	return List(result...), nil
}

func lessThan(env *Env, args Sexpr) (Sexpr, error) {
	a, err := fixedArgs("<", args, 2)
	if err != nil {
		return nil, err
	}
	x, err := asNumber(a[0])
	if err != nil {
		return nil, err
	}
	y, err := asNumber(a[1])
	if err != nil {
		return nil, err
	}
	return Bool(x.Cmp(y) < 0), nil
}

// (eq a b) holds for atoms of the same case with the same lexeme.
// Cells are never eq; functions are eq only to themselves.
func eq(env *Env, args Sexpr) (Sexpr, error) {
	a, err := fixedArgs("eq", args, 2)
	if err != nil {
		return nil, err
	}
	x, y := a[0], a[1]
	switch x.(type) {
	case *Cell:
		return Nil, nil
	case *Function:
		return Bool(x == y), nil
	}
	if TypeName(x) != TypeName(y) {
		return Nil, nil
	}
	s, _ := lexeme(x)
	t, _ := lexeme(y)
	return Bool(s == t), nil
}

func consp(env *Env, args Sexpr) (Sexpr, error) {
	a, err := fixedArgs("consp", args, 1)
	if err != nil {
		return nil, err
	}
	_, ok := a[0].(*Cell)
	return Bool(ok), nil
}

// (eval "source") reads and evaluates the string; (eval x) evaluates x.
func eval(env *Env, args Sexpr) (Sexpr, error) {
	a, err := fixedArgs("eval", args, 1)
	if err != nil {
		return nil, err
	}
	if s, ok := a[0].(String); ok {
		return Eval(env, string(s))
	}
	return Evaluate(env, a[0])
}

func load(env *Env, args Sexpr) (Sexpr, error) {
	a, err := fixedArgs("load", args, 1)
	if err != nil {
		return nil, err
	}
	switch path := a[0].(type) {
	case String:
		return Load(env, string(path))
	case Symbol:
		return Load(env, string(path))
	}
	return nil, typeMismatch("file name", a[0])
}

func echo(env *Env, args Sexpr) (Sexpr, error) {
	elems, _ := Slice(args)
	ss := make([]string, len(elems))
	for i, e := range elems {
		ss[i] = Stringify(e)
	}
	if _, err := io.WriteString(env.runtime().output, strings.Join(ss, " ")+"\n"); err != nil {
		return nil, &EvalError{Kind: ErrIO, Message: "echo", Err: err}
	}
	return T, nil
}

//----------------------------------------------------------------------

// (setq name e) binds name to the value of e in the most local frame.
func setq(env *Env, args Sexpr) (Sexpr, error) {
	a, err := fixedArgs("setq", args, 2)
	if err != nil {
		return nil, err
	}
	name, ok := a[0].(Symbol)
	if !ok {
		return nil, typeMismatch("symbol", a[0])
	}
	v, err := Evaluate(env, a[1])
	if err != nil {
		return nil, err
	}
	return env.Define(string(name), v), nil
}

// (if test then [else]); only the literal nil is false.
func ifForm(env *Env, args Sexpr) (Sexpr, error) {
	a, tail := Slice(args)
	if len(a) < 2 || len(a) > 3 || tail != Nil {
		return nil, NewEvalError(ErrArity, "if takes 2 or 3 arguments", args)
	}
	test, err := Evaluate(env, a[0])
	if err != nil {
		return nil, err
	}
	if test != Nil {
		return Evaluate(env, a[1])
	}
	if len(a) == 3 {
		return Evaluate(env, a[2])
	}
	return Nil, nil
}

// (lambda (v...) e...) captures the defining environment.
func lambda(env *Env, args Sexpr) (Sexpr, error) {
	j, ok := args.(*Cell)
	if !ok {
		return nil, NewEvalError(ErrArity, "lambda needs a parameter list", args)
	}
	return &Function{
		Name:    "lambda",
		Special: Normal,
		Body:    &Closure{Params: j.Car, Body: j.Cdr, Env: env},
	}, nil
}

// Closure represents a lambda expression with its environment.
type Closure struct {
	Params Sexpr
	Body   Sexpr
	Env    *Env
}

// Call binds the evaluated arguments in a new frame over the defining
// environment and evaluates the body there.
func (c *Closure) Call(env *Env, args Sexpr) (Sexpr, error) {
	local, err := c.Env.BindParams(c.Params, args)
	if err != nil {
		return nil, err
	}
	return progn(local.at(env), c.Body)
}

// (defmacro name (v...) template) defines and returns a macro.
func defmacro(env *Env, args Sexpr) (Sexpr, error) {
	a, err := fixedArgs("defmacro", args, 3)
	if err != nil {
		return nil, err
	}
	name, ok := a[0].(Symbol)
	if !ok {
		return nil, typeMismatch("symbol", a[0])
	}
	fn := &Function{
		Name:    string(name),
		Special: Macro,
		Body:    &MacroBody{Params: a[1], Template: a[2]},
	}
	return env.Define(string(name), fn), nil
}

// MacroBody expands a template by plain substitution.
type MacroBody struct {
	Params   Sexpr
	Template Sexpr
}

// Call binds the raw arguments over an empty environment, so that only the
// parameters are substituted into the template, and evaluates the expansion
// in the caller's environment.
func (m *MacroBody) Call(env *Env, args Sexpr) (Sexpr, error) {
	base := &Env{depth: env.depth, rt: env.rt}
	bound, err := base.BindParams(m.Params, args)
	if err != nil {
		return nil, err
	}
	expansion, err := applyEnv(bound, m.Template)
	if err != nil {
		return nil, err
	}
	return Evaluate(env, expansion)
}
