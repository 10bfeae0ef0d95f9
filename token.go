package calculator

import (
	"errors"
	"strconv"
	"strings"
)

// Token is a single lexical unit of an expression: either a number or one of
// the operator and bracket symbols in Operators. The zero Token is invalid.
type Token struct {
	kind tokenKind
	sym  rune
	num  float64
	pos  int
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a number operand.
	tokenNum
	// tokenOp is an operator or bracket.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are operator or bracket tokens.
const Operators = "+-*/()"

// ErrNotNumber is returned when reading the value of an operator token.
var ErrNotNumber = errors.New("calculator: operator token has no numeric value")

// Num creates a number token.
func Num(v float64) Token {
	return Token{kind: tokenNum, num: v}
}

// Op creates an operator token. Panics if sym is not in Operators.
func Op(sym rune) Token {
	if !strings.ContainsRune(Operators, sym) {
		panic("calculator: invalid operator " + strconv.QuoteRune(sym))
	}
	return Token{kind: tokenOp, sym: sym}
}

// at returns a copy of t at column pos.
func (t Token) at(pos int) Token {
	t.pos = pos
	return t
}

// IsNum returns whether t is a number.
func (t Token) IsNum() bool {
	return t.kind == tokenNum
}

// IsOp returns whether t is the operator sym.
func (t Token) IsOp(sym rune) bool {
	return t.kind == tokenOp && t.sym == sym
}

// Symbol returns the operator rune of t, or 0 if t is a number.
func (t Token) Symbol() rune {
	if t.kind != tokenOp {
		return 0
	}
	return t.sym
}

// Float returns the value of a number token. It returns ErrNotNumber if t is
// an operator.
func (t Token) Float() (float64, error) {
	if t.kind != tokenNum {
		return 0, ErrNotNumber
	}
	return t.num, nil
}

// Pos returns the 1-based rune column of the token in its source text, or 0
// if the token was not scanned from text.
func (t Token) Pos() int {
	return t.pos
}

// String returns the text form of the token: its symbol, or the shortest
// representation of its value.
func (t Token) String() string {
	switch t.kind {
	case tokenNum:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case tokenOp:
		return string(t.sym)
	default:
		return "<invalid>"
	}
}

// Tokens is a sequence of tokens.
type Tokens []Token

// String returns the text forms of the tokens separated by spaces.
func (s Tokens) String() string {
	var b strings.Builder
	for i, t := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
