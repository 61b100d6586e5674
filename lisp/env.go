package lisp

import (
	"io"
	"os"
)

// Frame is one lexical scope: a mapping from symbol names to values.
type Frame map[string]Sexpr

// FileReader returns the whole content of a named file.
type FileReader func(path string) ([]byte, error)

// runtime holds what every environment derived from one global environment
// shares. It is never written after construction.
type runtime struct {
	maxDepth int
	output   io.Writer
	readFile FileReader
}

var defaultRuntime = runtime{
	maxDepth: DefaultMaxDepth,
	output:   os.Stdout,
	readFile: os.ReadFile,
}

// Env represents an ordered chain of scope frames, the global frame first
// and the most local one last.
// Extending an Env never changes it: the result shares its frames and
// appends a new one.
type Env struct {
	frames []Frame
	depth  int
	rt     *runtime
}

// NewEnv returns an environment made of the given frames only.
func NewEnv(frames ...Frame) *Env {
	return &Env{frames: frames, rt: &defaultRuntime}
}

func (env *Env) runtime() *runtime {
	if env.rt == nil {
		return &defaultRuntime
	}
	return env.rt
}

// Lookup searches the frames from the most local to the global one.
func (env *Env) Lookup(name string) (Sexpr, bool) {
	for i := len(env.frames) - 1; i >= 0; i-- {
		if v, ok := env.frames[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in the most local frame and returns value.
func (env *Env) Define(name string, value Sexpr) Sexpr {
	if len(env.frames) == 0 {
		env.frames = []Frame{{}}
	}
	env.frames[len(env.frames)-1][name] = value
	return value
}

// Extend returns a new environment with frame appended as its most local one.
func (env *Env) Extend(frame Frame) *Env {
	frames := make([]Frame, len(env.frames), len(env.frames)+1)
	copy(frames, env.frames)
	return &Env{frames: append(frames, frame), depth: env.depth, rt: env.rt}
}

// BindParams pairs formal parameters with actual values positionally and
// extends env with one frame holding them. A formal list ending in a
// symbol, as in (a . rest) or a bare args, collects the remaining values.
func (env *Env) BindParams(formals, actuals Sexpr) (*Env, error) {
	frame := Frame{}
	params, args := formals, actuals
	for {
		p, ok := params.(*Cell)
		if !ok {
			break
		}
		sym, ok := p.Car.(Symbol)
		if !ok {
			return nil, typeMismatch("symbol as parameter", p.Car)
		}
		a, ok := args.(*Cell)
		if !ok {
			return nil, NewEvalError(ErrArity, "too few arguments for "+Stringify(formals), actuals)
		}
		frame[string(sym)] = a.Car
		params, args = p.Cdr, a.Cdr
	}
	switch rest := params.(type) {
	case Symbol:
		frame[string(rest)] = args
	case Literal:
		if rest != Nil {
			return nil, typeMismatch("symbol as parameter", rest)
		}
		if args != Nil {
			return nil, NewEvalError(ErrArity, "surplus arguments for "+Stringify(formals), args)
		}
	default:
		return nil, typeMismatch("parameter list", formals)
	}
	return env.Extend(frame), nil
}

// Depth returns the evaluation depth at which env is in use.
func (env *Env) Depth() int {
	return env.depth
}

// deeper returns a copy of env one evaluation level down.
// The copy shares every frame, so definitions through it land in the
// same most local frame.
func (env *Env) deeper() (*Env, error) {
	if env.depth >= env.runtime().maxDepth {
		return nil, &EvalError{Kind: ErrResourceExhausted, Message: "recursion too deep"}
	}
	inner := *env
	inner.depth++
	return &inner, nil
}

// at returns env viewed at the depth of caller.
func (env *Env) at(caller *Env) *Env {
	env.depth = caller.depth
	return env
}
