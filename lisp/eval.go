package lisp

// Evaluate evaluates an expression in an environment.
//
// A cell headed by the quote operator yields its cdr unevaluated, one headed
// by the quasiquote operator yields its cdr with unquoted parts evaluated.
// Any other cell is an application: the car must evaluate to a Function,
// which receives the cdr evaluated element by element (Normal) or as it is
// (Lazy, Macro). Symbols are looked up; all other atoms evaluate to themselves.
func Evaluate(env *Env, exp Sexpr) (Sexpr, error) {
	switch x := exp.(type) {
	case Symbol:
		if v, ok := env.Lookup(string(x)); ok {
			return v, nil
		}
		return nil, NewEvalError(ErrUndefinedSymbol, "unbound symbol", x)
	case *Cell:
		inner, err := env.deeper()
		if err != nil {
			return nil, err
		}
		switch x.Car {
		case Quote:
			return x.Cdr, nil
		case Quasiquote:
			return evalQuasiquote(inner, x.Cdr)
		}
		return apply(inner, x)
	case nil:
		return nil, &EvalError{Kind: ErrTypeMismatch, Message: "no expression"}
	}
	return exp, nil
}

// apply evaluates an application (fun arg...).
func apply(env *Env, x *Cell) (Sexpr, error) {
	head, err := Evaluate(env, x.Car)
	if err != nil {
		return nil, err
	}
	fn, ok := head.(*Function)
	if !ok {
		return nil, NewEvalError(ErrNotAFunction, Stringify(head)+" is not a function", x)
	}
	args := x.Cdr
	if fn.Special == Normal {
		if args, err = evalList(env, args); err != nil {
			return nil, err
		}
	}
	return fn.Body.Call(env, args)
}

// evalList evaluates the elements of a list from left to right.
// A non-cell tail is kept unevaluated.
func evalList(env *Env, list Sexpr) (Sexpr, error) {
	elems, tail := Slice(list)
	for i, e := range elems {
		v, err := Evaluate(env, e)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return listWithTail(elems, tail), nil
}

// evalQuasiquote rebuilds a template, replacing every cell headed by the
// unquote operator with the value of its cdr.
func evalQuasiquote(env *Env, exp Sexpr) (Sexpr, error) {
	j, ok := exp.(*Cell)
	if !ok {
		return exp, nil
	}
	if j.Car == Unquote {
		return Evaluate(env, j.Cdr)
	}
	inner, err := env.deeper()
	if err != nil {
		return nil, err
	}
	var elems []Sexpr
	rest := exp
	for {
		c, ok := rest.(*Cell)
		if !ok || c.Car == Unquote { // a tail like (a . ,b) is evaluated below
			break
		}
		v, err := evalQuasiquote(inner, c.Car)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		rest = c.Cdr
	}
	tail, err := evalQuasiquote(inner, rest)
	if err != nil {
		return nil, err
	}
	return listWithTail(elems, tail), nil
}

// applyEnv substitutes bound symbols in exp by their values without
// evaluating anything. Unbound symbols stay as they are.
func applyEnv(env *Env, exp Sexpr) (Sexpr, error) {
	switch x := exp.(type) {
	case Symbol:
		if v, ok := env.Lookup(string(x)); ok {
			return v, nil
		}
		return x, nil
	case *Cell:
		elems, tail := Slice(x)
		inner, err := env.deeper()
		if err != nil {
			return nil, err
		}
		for i, e := range elems {
			if elems[i], err = applyEnv(inner, e); err != nil {
				return nil, err
			}
		}
		if tail, err = applyEnv(inner, tail); err != nil {
			return nil, err
		}
		return listWithTail(elems, tail), nil
	}
	return exp, nil
}

// progn evaluates each form of body in turn and returns the last value.
func progn(env *Env, body Sexpr) (Sexpr, error) {
	var result Sexpr = Nil
	for {
		j, ok := body.(*Cell)
		if !ok {
			return result, nil
		}
		v, err := Evaluate(env, j.Car)
		if err != nil {
			return nil, err
		}
		result, body = v, j.Cdr
	}
}

// evalForms evaluates top-level forms in order and returns the last value.
func evalForms(env *Env, forms []Sexpr) (Sexpr, error) {
	var result Sexpr = Nil
	for _, form := range forms {
		v, err := Evaluate(env, form)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// Eval reads every expression of a source text and evaluates them in env
// one after another. It returns the value of the last one.
func Eval(env *Env, source string) (Sexpr, error) {
	forms, err := readAll(Tokenize(source), env.runtime().maxDepth)
	if err != nil {
		return nil, err
	}
	return evalForms(env, forms)
}

// Load reads a file through the environment's FileReader and evaluates it
// in env. A leading #! line is skipped.
func Load(env *Env, path string) (Sexpr, error) {
	b, err := env.runtime().readFile(path)
	if err != nil {
		return nil, &EvalError{Kind: ErrIO, Message: "cannot load " + path, Err: err}
	}
	return Eval(env, SkipShebang(string(b)))
}
