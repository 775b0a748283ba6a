package calc

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

type operator struct {
	// prec is the precedence value. Higher is more binding. Zero means there
	// is no such operator.
	prec int8
	// right indicates right-associativity.
	right bool
}

// yields returns whether p, on top of the operator stack, is output before
// next is pushed.
func (p operator) yields(next operator) bool {
	if p.prec != next.prec {
		return p.prec > next.prec
	}
	return !next.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has a prec of 0.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false}
	case "-":
		return operator{1, false}
	case "*":
		return operator{2, false}
	case "/":
		return operator{2, false}
	default:
		return operator{}
	}
}

// Reorder converts a sequence of tokens in infix order to postfix order,
// respecting operator precedence and parentheses. The result holds the texts
// of numbers and operators; parentheses never appear in it. Reorder doesn't
// check that operators have operands, which is left to Evaluate.
//
// Reorder panics if a token has a kind other than TokenNum, TokenOp, or
// TokenParen.
func Reorder(tokens []Token) ([]string, error) {
	out := make([]string, 0, len(tokens))
	// ops holds operator and open parenthesis tokens. Keeping whole tokens
	// lets bracket errors report where the parenthesis was.
	var ops []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok.Text)
		case TokenOp:
			prec := binop(tok.Text)
			if prec.prec == 0 {
				return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text}
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != TokenOp || !binop(top.Text).yields(prec) {
					break
				}
				out = append(out, top.Text)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case TokenParen:
			switch tok.Text {
			case "(":
				ops = append(ops, tok)
			case ")":
				for {
					if len(ops) == 0 {
						return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
					}
					top := ops[len(ops)-1]
					ops = ops[:len(ops)-1]
					if top.Kind == TokenParen {
						break
					}
					out = append(out, top.Text)
				}
			default:
				return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
			}
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == TokenParen {
			return nil, &BracketError{Col: top.Pos, Left: top.Text}
		}
		out = append(out, top.Text)
	}
	return out, nil
}
