// Package lisp implements a little Lisp dialect: a lexer, a reader of
// S-expressions, persistent lexical environments and an evaluator with
// eager functions, lazy special forms and substitution macros.
//
// The global environment holds the native primitives and a prelude written
// in the dialect itself, which defines defun, or, and, the comparisons
// <=, > and >=, subtraction and a few list helpers.
package lisp

import (
	"fmt"
	"io"
)

// Option configures a global environment.
type Option func(*runtime)

// WithOutput sets where echo writes.
func WithOutput(w io.Writer) Option {
	return func(rt *runtime) {
		rt.output = w
	}
}

// WithFileReader sets how load obtains the text of a file.
func WithFileReader(r FileReader) Option {
	return func(rt *runtime) {
		rt.readFile = r
	}
}

// WithMaxDepth bounds reader nesting and evaluator recursion.
func WithMaxDepth(n int) Option {
	return func(rt *runtime) {
		rt.maxDepth = n
	}
}

// NewGlobalEnv returns an environment whose only frame holds the primitives
// and the prelude definitions. It fails if the prelude fails.
func NewGlobalEnv(opts ...Option) (*Env, error) {
	rt := defaultRuntime
	for _, opt := range opts {
		opt(&rt)
	}
	env := &Env{frames: []Frame{primitiveFrame()}, rt: &rt}
	if _, err := Eval(env, prelude); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return env, nil
}

// Lisp is an interpreter session over one global environment.
type Lisp struct {
	Env *Env
}

// New returns a session with a fresh global environment.
func New(opts ...Option) (*Lisp, error) {
	env, err := NewGlobalEnv(opts...)
	if err != nil {
		return nil, err
	}
	return &Lisp{env}, nil
}

// Eval evaluates a source text in the session.
func (l *Lisp) Eval(source string) (Sexpr, error) {
	return Eval(l.Env, source)
}

// EvalExpr evaluates an already read expression in the session.
func (l *Lisp) EvalExpr(e Sexpr) (Sexpr, error) {
	return Evaluate(l.Env, e)
}

// Load evaluates a file in the session.
func (l *Lisp) Load(path string) (Sexpr, error) {
	return Load(l.Env, path)
}

// Read parses a source text under the session's depth bound.
func (l *Lisp) Read(source string) ([]Sexpr, error) {
	return readAll(Tokenize(source), l.Env.runtime().maxDepth)
}
