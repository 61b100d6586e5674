package lisp

import (
	"strings"
	"unicode"
)

// TokenKind classifies a token.
type TokenKind int

const (
	LeftParen TokenKind = iota
	RightParen
	Op
	Str
	Num
	Sym
)

var tokenKindNames = [...]string{"LeftParen", "RightParen", "Op", "Str", "Num", "Sym"}

func (k TokenKind) String() string {
	return tokenKindNames[k]
}

// Token is one lexeme of source text.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")"
}

// operators are the characters that stand alone outside strings.
const operators = "(),'`."

type lexer struct {
	tokens   []Token
	pending  strings.Builder
	inString bool
	escaping bool
}

// flush emits the pending bare token, if any.
func (lx *lexer) flush() {
	if lx.pending.Len() == 0 {
		return
	}
	text := lx.pending.String()
	lx.pending.Reset()
	kind := Sym
	if _, ok := NewAtom(text).(Number); ok {
		kind = Num
	}
	lx.tokens = append(lx.tokens, Token{kind, text})
}

// continuesNumber reports whether a dot at src[i] belongs to the number
// being scanned rather than being the dotted-pair operator.
func (lx *lexer) continuesNumber(src []rune, i int) bool {
	if lx.pending.Len() == 0 || i+1 >= len(src) || !unicode.IsDigit(src[i+1]) {
		return false
	}
	for j, r := range lx.pending.String() {
		if !(unicode.IsDigit(r) || (j == 0 && r == '-')) {
			return false
		}
	}
	return true
}

// Tokenize splits a source text into tokens.
// A backslash copies the next character into the current token literally,
// inside or outside a string. An unterminated string is flushed as it is.
func Tokenize(source string) []Token {
	var lx lexer
	src := []rune(source)
	for i, ch := range src {
		switch {
		case lx.escaping:
			lx.pending.WriteRune(ch)
			lx.escaping = false
		case ch == '\\':
			lx.escaping = true
		case ch == '"':
			if lx.inString {
				lx.tokens = append(lx.tokens, Token{Str, lx.pending.String()})
				lx.pending.Reset()
			} else {
				lx.flush()
			}
			lx.inString = !lx.inString
		case lx.inString:
			lx.pending.WriteRune(ch)
		case ch == '.' && lx.continuesNumber(src, i):
			lx.pending.WriteRune(ch)
		case strings.ContainsRune(operators, ch):
			lx.flush()
			switch ch {
			case '(':
				lx.tokens = append(lx.tokens, Token{LeftParen, "("})
			case ')':
				lx.tokens = append(lx.tokens, Token{RightParen, ")"})
			default:
				lx.tokens = append(lx.tokens, Token{Op, string(ch)})
			}
		case unicode.IsSpace(ch):
			lx.flush()
		default:
			lx.pending.WriteRune(ch)
		}
	}
	if lx.inString {
		lx.tokens = append(lx.tokens, Token{Str, lx.pending.String()})
	} else {
		lx.flush()
	}
	return lx.tokens
}
