package calculator

import (
	"strconv"
)

// Kind classifies the errors that result from invalid input. Kind implements
// error so that errors.Is can match a *ParseError against its kind.
type Kind int8

const (
	kindNone Kind = iota
	// UnknownCharacter is a rune that is not a digit, decimal separator,
	// operator, bracket, or whitespace.
	UnknownCharacter
	// MultipleDecimalPoints is a number containing two decimal separators.
	MultipleDecimalPoints
	// InvalidNumber is a number literal that could not be parsed.
	InvalidNumber
	// InvalidUnaryOperator is a unary minus not followed by a number.
	InvalidUnaryOperator
	// UnbalancedBrackets is an unmatched open or close bracket.
	UnbalancedBrackets
	// InvalidExpression is an expression with too few or too many operands
	// for its operators.
	InvalidExpression
)

func (k Kind) Error() string {
	switch k {
	case UnknownCharacter:
		return "unknown character"
	case MultipleDecimalPoints:
		return "multiple decimal points"
	case InvalidNumber:
		return "invalid number"
	case InvalidUnaryOperator:
		return "invalid unary operator"
	case UnbalancedBrackets:
		return "unbalanced brackets"
	case InvalidExpression:
		return "invalid expression"
	default:
		return "calculator.Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError is an error caused by invalid input. It implements InputError
// and unwraps to its Kind.
type ParseError struct {
	// Kind is the category of the error.
	Kind Kind
	// Col is the 1-based rune column of the token that caused the error, or 0
	// if there is no such token.
	Col int
	// Text is the offending input text, if any.
	Text string
}

func (err *ParseError) Error() string {
	msg := err.Kind.Error()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *ParseError) Unwrap() error {
	return err.Kind
}

func (err *ParseError) Pos() int {
	return err.Col
}

// tokenError creates an error located at a token.
func tokenError(kind Kind, tok Token) *ParseError {
	return &ParseError{Kind: kind, Col: tok.pos, Text: tok.String()}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*ParseError)(nil)
