package calculator

import (
	"io"
	"strings"
)

// stack is a stack of operand values.
type stack []float64

func (s *stack) push(v float64) {
	*s = append(*s, v)
}

// pop removes the top from the stack and returns it. Panics if the stack is
// empty.
func (s *stack) pop() float64 {
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

// EvalPostfix evaluates a sequence of tokens in postfix order. Each operator
// applies to the two values before it, the earlier one being the left operand.
// Division by zero follows IEEE-754 and is not an error. If an operator lacks
// operands, a bracket appears, or the tokens do not reduce to exactly one
// value, the error is InvalidExpression.
func EvalPostfix(postfix Tokens) (float64, error) {
	s := make(stack, 0, len(postfix)/2+1)
	for _, tok := range postfix {
		if tok.IsNum() {
			s.push(tok.num)
			continue
		}
		if len(s) < 2 {
			return 0, tokenError(InvalidExpression, tok)
		}
		b := s.pop()
		a := s.pop()
		switch tok.sym {
		case '+':
			s.push(a + b)
		case '-':
			s.push(a - b)
		case '*':
			s.push(a * b)
		case '/':
			s.push(a / b)
		default:
			return 0, tokenError(InvalidExpression, tok)
		}
	}
	if len(s) != 1 {
		err := &ParseError{Kind: InvalidExpression}
		if len(postfix) > 0 {
			err.Col = postfix[len(postfix)-1].pos
		}
		return 0, err
	}
	return s[0], nil
}

// Eval is a shortcut to run every stage of evaluation on an expression read
// from src.
func Eval(src io.RuneReader) (float64, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	toks, err = Normalize(toks)
	if err != nil {
		return 0, err
	}
	toks, err = Postfix(toks)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(toks)
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
