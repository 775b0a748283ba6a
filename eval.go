package calc

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// stack is the value stack used to evaluate postfix expressions.
type stack []float64

func (s *stack) push(x float64) {
	*s = append(*s, x)
}

// pop removes the top from the stack and returns it. Panics if the stack is
// empty.
func (s *stack) pop() float64 {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

// Evaluate computes the value of an expression in postfix order, as produced
// by Reorder. Each element is either one of the operators in Operators or a
// number literal. Division by zero is not an error; it gives an infinity or
// NaN following the usual floating-point rules.
func Evaluate(postfix []string) (float64, error) {
	if len(postfix) == 0 {
		return 0, &EmptyExpressionError{}
	}
	s := make(stack, 0, len(postfix)/2+1)
	for i, text := range postfix {
		if binop(text).prec == 0 {
			x, err := parseNum(text)
			if err != nil {
				return 0, &NumberError{Index: i + 1, Text: text, Err: err}
			}
			s.push(x)
			continue
		}
		if len(s) < 2 {
			return 0, &UnderflowError{Index: i + 1, Op: text, Have: len(s)}
		}
		// The first value popped is the right operand.
		r := s.pop()
		l := s.pop()
		s.push(apply(text, l, r))
	}
	if len(s) != 1 {
		return 0, &IncompleteError{Values: len(s)}
	}
	return s[0], nil
}

// apply computes l op r.
func apply(op string, l, r float64) float64 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		return l / r
	default:
		panic("calc: invalid operator " + strconv.Quote(op))
	}
}

var errNotFinite = errors.New("not finite")

// parseNum parses a number literal, rejecting infinities and NaNs.
func parseNum(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, errNotFinite
	}
	return x, nil
}

// Eval is a shortcut to tokenize, reorder, and evaluate an expression.
func Eval(src io.RuneScanner) (float64, error) {
	toks, err := TokenizeReader(src)
	if err != nil {
		return 0, err
	}
	postfix, err := Reorder(toks)
	if err != nil {
		return 0, err
	}
	return Evaluate(postfix)
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// JoinArgs collects separate pieces of an expression, such as command-line
// arguments, into one expression string. The pieces are joined without
// separators, so ["1", "+1"] becomes "1+1", and surrounding whitespace is
// trimmed.
func JoinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, ""))
}
