package calculator

// unaryAt reports whether the next token appended to out is in unary
// position: at the start of the expression, or after any operator other than
// a close bracket.
func unaryAt(out Tokens) bool {
	if len(out) == 0 {
		return true
	}
	prev := out[len(out)-1]
	return prev.kind == tokenOp && prev.sym != ')'
}

// Normalize rewrites unary signs so that every operator in the result is
// binary. A unary plus is dropped. A unary minus and the number it applies to
// become a bracketed subtraction from zero, so -2 becomes ( 0 - 2 ) and --2
// becomes ( 0 - ( 0 - 2 ) ). Unary minus must be followed by a number, after
// any further minus signs; otherwise the error is InvalidUnaryOperator.
//
// The input is not modified.
func Normalize(toks Tokens) (Tokens, error) {
	out := make(Tokens, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch {
		case tok.IsOp('+') && unaryAt(out):
			// Drop it.
		case tok.IsOp('-') && unaryAt(out):
			var err error
			out, i, err = negate(out, toks, i)
			if err != nil {
				return nil, err
			}
		default:
			out = append(out, tok)
		}
	}
	return out, nil
}

// negate appends the rewrite of the unary minus at toks[i] and its operand to
// out. The second result is the index of the operand.
func negate(out, toks Tokens, i int) (Tokens, int, error) {
	minus := toks[i]
	depth := 0
	for {
		// toks[i] is a unary minus. Only another minus may come between it
		// and its number.
		last := toks[i]
		depth++
		i++
		if i < len(toks) && toks[i].IsNum() {
			break
		}
		if i == len(toks) || !toks[i].IsOp('-') {
			return nil, 0, tokenError(InvalidUnaryOperator, last)
		}
	}
	open, zero, sub, end := Op('(').at(minus.pos), Num(0).at(minus.pos), Op('-').at(minus.pos), Op(')').at(minus.pos)
	for k := 0; k < depth; k++ {
		out = append(out, open, zero, sub)
	}
	out = append(out, toks[i])
	for k := 0; k < depth; k++ {
		out = append(out, end)
	}
	return out, i, nil
}
