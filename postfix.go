package calculator

// priority gets the precedence class of an operator symbol. Higher is more
// binding. An open bracket has the lowest priority so that no binary operator
// pops past it.
func priority(sym rune) int8 {
	switch sym {
	case '(':
		return 0
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	default:
		panic("calculator: no priority for " + string(sym))
	}
}

// Postfix converts a sequence of tokens containing only binary operators from
// infix to postfix order using the shunting-yard algorithm. Brackets do not
// appear in the result. Operators of equal priority are left-associative, so
// 2-2-2 becomes 2 2 - 2 -.
func Postfix(toks Tokens) (Tokens, error) {
	out := make(Tokens, 0, len(toks))
	var stack Tokens
	for _, tok := range toks {
		switch {
		case tok.IsNum():
			out = append(out, tok)
		case tok.IsOp('('):
			stack = append(stack, tok)
		case tok.IsOp(')'):
			for {
				if len(stack) == 0 {
					return nil, tokenError(UnbalancedBrackets, tok)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.IsOp('(') {
					break
				}
				out = append(out, top)
			}
		case tok.kind == tokenOp:
			p := priority(tok.sym)
			for len(stack) > 0 && priority(stack[len(stack)-1].sym) >= p {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			return nil, tokenError(InvalidExpression, tok)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.IsOp('(') {
			return nil, tokenError(UnbalancedBrackets, top)
		}
		out = append(out, top)
	}
	return out, nil
}
