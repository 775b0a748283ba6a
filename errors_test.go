package calc_test

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zephyrtronium/calc"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind calc.ErrorKind
	}{
		{"nil", nil, calc.ErrorNone},
		{"other", errors.New("other"), calc.ErrorNone},
		{"lex", &calc.LexError{Text: "$", Col: 1}, calc.InvalidCharacter},
		{"op", &calc.OperatorError{Col: 1, Operator: "^"}, calc.UnknownOperator},
		{"bracket", &calc.BracketError{Col: 1, Left: "("}, calc.MismatchedParenthesis},
		{"underflow", &calc.UnderflowError{Index: 1, Op: "+"}, calc.StackUnderflow},
		{"number", &calc.NumberError{Index: 1, Text: "x"}, calc.MalformedNumber},
		{"incomplete", &calc.IncompleteError{Values: 2}, calc.IncompleteExpression},
		{"empty", &calc.EmptyExpressionError{}, calc.EmptyExpression},
		{"wrapped", fmt.Errorf("evaluating: %w", &calc.BracketError{Col: 3, Right: ")"}), calc.MismatchedParenthesis},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.kind, calc.KindOf(c.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		src  string
		res  []string
	}{
		{"lex", "1+$", []string{`^3:`, `(?i)\binvalid character\b`, `"\$"`}},
		{"unclosed", "(1", []string{`^1:`, `(?i)\bopen parenthesis\b`, `(?i)\bno close\b`}},
		{"unopened", "1)", []string{`^2:`, `(?i)\bclose parenthesis\b`, `(?i)\bno open\b`}},
		{"underflow", "1*", []string{`"\*"`, `(?i)\boperands?\b`, `\b2\b`, `\b1\b`}},
		{"incomplete", "1 2 3", []string{`(?i)\bincomplete\b`, `\b3\b`}},
		{"empty", "", []string{`(?i)\bno expression\b`}},
		{"range", strings.Repeat("9", 400), []string{`(?i)\bmalformed number\b`, `(?i)\bout of range\b`}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calc.EvalString(c.src)
			if err == nil {
				t.Fatalf("%q gave no error", c.src)
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
		})
	}
}

func TestMalformedNumberMessage(t *testing.T) {
	_, err := calc.Evaluate([]string{"1", "inf", "+"})
	assert.EqualError(t, err, `postfix 2: malformed number "inf": not finite`)
	_, err = calc.Evaluate([]string{"x"})
	assert.EqualError(t, err, `postfix 1: malformed number "x": invalid syntax`)
	err = &calc.NumberError{Index: 3, Text: "y"}
	assert.EqualError(t, err, `postfix 3: malformed number "y"`)
}

func TestBracketErrorMessage(t *testing.T) {
	err := &calc.BracketError{Col: 2, Right: "]"}
	assert.EqualError(t, err, `2: invalid parenthesis "]"`)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "StackUnderflow", calc.StackUnderflow.String())
	assert.Equal(t, "EmptyExpression", calc.EmptyExpression.String())
	assert.Equal(t, "ErrorKind(-1)", calc.ErrorKind(-1).String())
}
