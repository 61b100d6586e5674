package lisp

import "errors"

// Kinds of failure. An *EvalError unwraps to exactly one of these.
var (
	ErrParse             = errors.New("parse error")
	ErrUndefinedSymbol   = errors.New("undefined symbol")
	ErrNotAFunction      = errors.New("not a function")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrArity             = errors.New("wrong number of arguments")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrIO                = errors.New("io error")
)

// EvalError represents an error in reading or evaluation.
type EvalError struct {
	Kind    error
	Message string
	Err     error // underlying cause, if any
}

// NewEvalError constructs a new EvalError about x.
func NewEvalError(kind error, msg string, x Sexpr) *EvalError {
	return &EvalError{Kind: kind, Message: msg + ": " + Stringify(x)}
}

func (err *EvalError) Error() string {
	s := err.Kind.Error() + ": " + err.Message
	if err.Err != nil {
		s += ": " + err.Err.Error()
	}
	return s
}

// Unwrap lets errors.Is match both the kind and the cause.
func (err *EvalError) Unwrap() []error {
	if err.Err == nil {
		return []error{err.Kind}
	}
	return []error{err.Kind, err.Err}
}

func typeMismatch(want string, x Sexpr) error {
	return NewEvalError(ErrTypeMismatch, want+" expected, got "+TypeName(x), x)
}
