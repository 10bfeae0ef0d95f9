// Package calculator evaluates arithmetic expressions to float64 results.
//
// An expression is a string of decimal numbers, the binary operators + - * /,
// unary + and -, and parentheses. Either "." or "," may be the decimal
// separator, so "2.5+2,5" is 5. Whitespace is ignored everywhere, including
// inside numbers: "1 2" is 12. "*" and "/" bind tighter than "+" and "-", and
// operators of equal precedence associate to the left.
//
// Evaluation runs in four stages, each exported so that it can be used on its
// own: Tokenize scans the text, Normalize rewrites unary signs into binary
// subtractions, Postfix reorders tokens with the shunting-yard algorithm, and
// EvalPostfix computes the result. EvalString runs all four.
//
// Division follows IEEE-754, so "1/0" is +Inf rather than an error. Every
// error caused by bad input is a *ParseError, which unwraps to its Kind.
//
package calculator
