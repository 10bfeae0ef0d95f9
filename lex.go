package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// DecimalSeparators contains the runes accepted as a decimal point.
const DecimalSeparators = ".,"

type lexer struct {
	src  io.RuneReader
	buf  strings.Builder
	rune int
	// start is the column of the first rune of the pending number.
	start int
	// dot is whether the pending number has a decimal separator.
	dot  bool
	toks Tokens
}

// Tokenize scans an expression into tokens. Whitespace is skipped without
// ending a number. Errors from src other than io.EOF are returned as is.
func Tokenize(src io.RuneReader) (Tokens, error) {
	l := lexer{src: src}
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		l.rune++
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.digit(r)
		case strings.ContainsRune(DecimalSeparators, r):
			if l.dot {
				l.buf.WriteRune(r)
				return nil, &ParseError{Kind: MultipleDecimalPoints, Col: l.start, Text: l.buf.String()}
			}
			l.dot = true
			l.digit(r)
		case strings.ContainsRune(Operators, r):
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.toks = append(l.toks, Op(r).at(l.rune))
		default:
			return nil, &ParseError{Kind: UnknownCharacter, Col: l.rune, Text: string(r)}
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// TokenizeString is a shortcut to tokenize a string.
func TokenizeString(src string) (Tokens, error) {
	return Tokenize(strings.NewReader(src))
}

// digit adds a rune to the pending number.
func (l *lexer) digit(r rune) {
	if l.buf.Len() == 0 {
		l.start = l.rune
	}
	l.buf.WriteRune(r)
}

// flush appends the pending number, if any, as a token.
func (l *lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	defer l.buf.Reset()
	l.dot = false
	s := l.buf.String()
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		// ParseFloat returns ±Inf along with ErrRange for overflow, which is
		// the value we want.
		if !errors.Is(err, strconv.ErrRange) {
			return &ParseError{Kind: InvalidNumber, Col: l.start, Text: s}
		}
	}
	l.toks = append(l.toks, Num(v).at(l.start))
	return nil
}
