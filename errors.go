package calc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies the errors returned while evaluating an expression.
// Every error type in this package has a Kind method returning one.
type ErrorKind int8

const (
	// ErrorNone is the kind of errors that don't come from this package.
	ErrorNone ErrorKind = iota
	// InvalidCharacter is a rune in the input that cannot start a token.
	InvalidCharacter
	// UnknownOperator is an operator token with no precedence.
	UnknownOperator
	// MismatchedParenthesis is a parenthesis without a partner.
	MismatchedParenthesis
	// StackUnderflow is an operator applied with fewer than two operands.
	StackUnderflow
	// MalformedNumber is a number that doesn't parse to a finite float64.
	MalformedNumber
	// IncompleteExpression is an expression that leaves more than one value.
	IncompleteExpression
	// EmptyExpression is an expression with nothing to evaluate.
	EmptyExpression
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind
//go:generate go mod tidy

// KindOf returns the kind of the first error in err's chain that has one, or
// ErrorNone if there is none.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ErrorNone
}

// LexError indicates a rune which cannot start any token. It implements
// InputError.
type LexError struct {
	// Text is the invalid rune.
	Text string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Kind() ErrorKind {
	return InvalidCharacter
}

// OperatorError is an error indicating an operator token that is not
// understood by the reorderer. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Kind() ErrorKind {
	return UnknownOperator
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the unclosed open parenthesis, if that is the problem.
	Left string
	// Right is the unopened close parenthesis, if that is the problem.
	Right string
}

func (err *BracketError) Error() string {
	switch {
	case err.Left == "" && err.Right == ")":
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	case err.Left == "(" && err.Right == "":
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	default:
		return errpos(err.Col, "invalid parenthesis "+strconv.Quote(err.Left+err.Right))
	}
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Kind() ErrorKind {
	return MismatchedParenthesis
}

// EmptyExpressionError is an error indicating that there was nothing to
// evaluate.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

func (err *EmptyExpressionError) Kind() ErrorKind {
	return EmptyExpression
}

// UnderflowError is an error indicating an operator without two operands to
// apply it to.
type UnderflowError struct {
	// Index is the 1-based position of the operator in the postfix sequence.
	Index int
	// Op is the operator.
	Op string
	// Have is the number of operands that were available.
	Have int
}

func (err *UnderflowError) Error() string {
	return "postfix " + strconv.Itoa(err.Index) + ": operator " + strconv.Quote(err.Op) + " needs 2 operands but has " + strconv.Itoa(err.Have)
}

func (err *UnderflowError) Kind() ErrorKind {
	return StackUnderflow
}

// IncompleteError is an error indicating that evaluation ended with more than
// one value, i.e. the expression is missing operators.
type IncompleteError struct {
	// Values is the number of values left on the stack.
	Values int
}

func (err *IncompleteError) Error() string {
	return "incomplete expression: " + strconv.Itoa(err.Values) + " values with no operator between them"
}

func (err *IncompleteError) Kind() ErrorKind {
	return IncompleteExpression
}

// NumberError is an error indicating an operand that is not a finite number.
// It unwraps to the parsing error, if there was one.
type NumberError struct {
	// Index is the 1-based position of the operand in the postfix sequence.
	Index int
	// Text is the operand.
	Text string
	// Err is the error from parsing Text.
	Err error
}

func (err *NumberError) Error() string {
	r := "postfix " + strconv.Itoa(err.Index) + ": malformed number " + strconv.Quote(err.Text)
	var ne *strconv.NumError
	switch {
	case errors.As(err.Err, &ne):
		r += ": " + ne.Err.Error()
	case err.Err != nil:
		r += ": " + err.Err.Error()
	}
	return r
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) Kind() ErrorKind {
	return MalformedNumber
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error from
// Tokenize or Reorder implements InputError.
type InputError interface {
	error
	// Pos returns the column of the rune or token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
)
