package lisp

import "strings"

// DefaultMaxDepth bounds reader nesting and evaluator recursion.
const DefaultMaxDepth = 10000

type indexError int

type reader struct {
	tokens   []Token
	depth    int
	maxDepth int
}

func (rd *reader) peek() Token {
	if len(rd.tokens) == 0 {
		panic(indexError(0))
	}
	return rd.tokens[0]
}

func (rd *reader) pop() Token {
	result := rd.peek()
	rd.tokens = rd.tokens[1:]
	return result
}

// read reads one expression from the tokens.
func (rd *reader) read() Sexpr {
	token := rd.pop()
	switch token.Kind {
	case LeftParen:
		rd.enter()
		defer rd.leave()
		return rd.readTail()
	case RightParen:
		panic(&EvalError{Kind: ErrParse, Message: "unexpected )"})
	case Op: // 'e => (' . e)
		rd.enter()
		defer rd.leave()
		return &Cell{Operator(token.Text), rd.read()}
	case Str:
		return String(token.Text)
	case Num:
		return Number(token.Text)
	}
	return NewAtom(token.Text)
}

// readTail reads the rest of a list after its opening parenthesis.
func (rd *reader) readTail() Sexpr {
	var elems []Sexpr
	for {
		token := rd.peek()
		switch {
		case token.Kind == RightParen:
			rd.pop()
			return List(elems...)
		case token.Kind == Op && token.Text == string(Dot):
			rd.pop()
			tail := rd.read()
			if rd.peek().Kind != RightParen {
				panic(NewEvalError(ErrParse, ") expected after dotted tail", tail))
			}
			rd.pop()
			return listWithTail(elems, tail)
		}
		elems = append(elems, rd.read())
	}
}

func (rd *reader) enter() {
	rd.depth++
	if rd.depth > rd.maxDepth {
		panic(&EvalError{Kind: ErrResourceExhausted, Message: "expression nested too deeply"})
	}
}

func (rd *reader) leave() {
	rd.depth--
}

// readAll reads every top-level expression from tokens.
func readAll(tokens []Token, maxDepth int) (result []Sexpr, err error) {
	rd := &reader{tokens: tokens, maxDepth: maxDepth}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case indexError:
				err = &EvalError{Kind: ErrParse, Message: "unexpected end of input, ) expected"}
			case *EvalError:
				err = e
			default:
				panic(e)
			}
			result = nil
		}
	}()
	for len(rd.tokens) != 0 {
		result = append(result, rd.read())
	}
	return result, nil
}

// Read parses a source text into its top-level expressions.
func Read(source string) ([]Sexpr, error) {
	return readAll(Tokenize(source), DefaultMaxDepth)
}

// SkipShebang drops a leading #! line.
func SkipShebang(text string) string {
	if !strings.HasPrefix(text, "#!") {
		return text
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[i+1:]
	}
	return ""
}
