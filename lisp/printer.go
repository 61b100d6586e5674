package lisp

import "strings"

// Stringify returns the textual representation of an expression.
// A list prints as (e1 e2 ...), an improper tail as (e1 e2 . tail).
func Stringify(x Sexpr) string {
	var sb strings.Builder
	writeSexpr(&sb, x)
	return sb.String()
}

// writeSexpr prints a standalone form.
func writeSexpr(sb *strings.Builder, x Sexpr) {
	switch x := x.(type) {
	case nil:
		sb.WriteString("#<void>")
	case *Cell:
		sb.WriteByte('(')
		writeListBody(sb, x)
	case String:
		sb.WriteByte('"')
		sb.WriteString(string(x))
		sb.WriteByte('"')
	case *Function:
		if x.Special == Macro {
			sb.WriteString("#macro'")
		} else {
			sb.WriteString("#'")
		}
		sb.WriteString(x.Name)
	default:
		s, _ := lexeme(x)
		sb.WriteString(s)
	}
}

// writeListBody prints the elements of an already opened list.
func writeListBody(sb *strings.Builder, j *Cell) {
	for {
		writeSexpr(sb, j.Car)
		if kdr, ok := j.Cdr.(*Cell); ok {
			sb.WriteByte(' ')
			j = kdr
			continue
		}
		if j.Cdr != Nil {
			sb.WriteString(" . ")
			writeSexpr(sb, j.Cdr)
		}
		sb.WriteByte(')')
		return
	}
}

func (x Literal) String() string   { return string(x) }
func (x Number) String() string    { return string(x) }
func (x Symbol) String() string    { return string(x) }
func (x String) String() string    { return Stringify(x) }
func (x Operator) String() string  { return string(x) }
func (j *Cell) String() string     { return Stringify(j) }
func (f *Function) String() string { return Stringify(f) }
