package lisp

import (
	"errors"
	"testing"
)

func TestEnvLookupDefine(t *testing.T) {
	global := NewEnv(Frame{"x": Number("1")})
	local := global.Extend(Frame{"y": Number("2")})

	if v, ok := local.Lookup("x"); !ok || v != Number("1") {
		t.Errorf("x: got %v %v want 1", v, ok)
	}
	if _, ok := global.Lookup("y"); ok {
		t.Error("y leaked into the parent environment")
	}
	if _, ok := local.Lookup("z"); ok {
		t.Error("z should be absent")
	}

	// local shadows global and define writes the most local frame only
	local.Define("x", Number("10"))
	if v, _ := local.Lookup("x"); v != Number("10") {
		t.Errorf("local x: got %v want 10", v)
	}
	if v, _ := global.Lookup("x"); v != Number("1") {
		t.Errorf("global x: got %v want 1", v)
	}

	// frames are shared, so a later global definition is visible locally
	global.Define("g", T)
	if _, ok := local.Lookup("g"); !ok {
		t.Error("g defined globally is not visible locally")
	}
}

func TestEnvExtendDoesNotShareSlots(t *testing.T) {
	global := NewEnv(Frame{})
	a := global.Extend(Frame{"v": Number("1")})
	b := global.Extend(Frame{"v": Number("2")})
	if v, _ := a.Lookup("v"); v != Number("1") {
		t.Errorf("a: got %v want 1", v)
	}
	if v, _ := b.Lookup("v"); v != Number("2") {
		t.Errorf("b: got %v want 2", v)
	}
	if len(global.frames) != 1 {
		t.Errorf("parent grew to %d frames", len(global.frames))
	}
}

func TestBindParams(t *testing.T) {
	env := NewEnv(Frame{})
	mustRead := func(s string) Sexpr {
		forms, err := Read(s)
		if err != nil {
			t.Fatal(err)
		}
		return forms[0]
	}
	for i, tt := range []struct {
		formals string
		actuals string
		want    map[string]string
		err     error
	}{
		{formals: "(a b)", actuals: "(1 2)", want: map[string]string{"a": "1", "b": "2"}},
		{formals: "()", actuals: "()", want: map[string]string{}},
		{formals: "(a . rest)", actuals: "(1 2 3)", want: map[string]string{"a": "1", "rest": "(2 3)"}},
		{formals: "args", actuals: "(1 2)", want: map[string]string{"args": "(1 2)"}},
		{formals: "(a . rest)", actuals: "(1)", want: map[string]string{"a": "1", "rest": "nil"}},
		{formals: "(a b)", actuals: "(1)", err: ErrArity},
		{formals: "(a)", actuals: "(1 2)", err: ErrArity},
		{formals: "(1)", actuals: "(1)", err: ErrTypeMismatch},
	} {
		local, err := env.BindParams(mustRead(tt.formals), mustRead(tt.actuals))
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%d) got %v want %v", i, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d) unexpected error %v", i, err)
			continue
		}
		frame := local.frames[len(local.frames)-1]
		if len(frame) != len(tt.want) {
			t.Errorf("%d) got %d bindings want %d", i, len(frame), len(tt.want))
		}
		for k, w := range tt.want {
			if got := Stringify(frame[k]); got != w {
				t.Errorf("%d) %s: got %s want %s", i, k, got, w)
			}
		}
		if len(env.frames) != 1 {
			t.Errorf("%d) parent environment changed", i)
		}
	}
}
