// Package calc implements a floating-point calculator for arithmetic on
// integer literals.
//
// An expression is evaluated in three steps. Tokenize splits the text into
// numbers, the operators + - * /, and parentheses. Reorder rearranges the
// tokens from infix to postfix order with the shunting-yard algorithm, so that
// "3+4*2" becomes "3 4 2 * +". Evaluate reduces the postfix sequence to a
// float64 using a value stack. EvalString does all three.
//
// A minus sign is part of a number when it appears where an operand is
// expected and a digit follows it immediately: "-5+3" and "2*-3" contain the
// numbers -5 and -3, but "5-3" is a subtraction. All operators are
// left-associative, and * and / bind more tightly than + and -.
//
// None of the functions keep state between calls, so they are safe to use
// concurrently.
package calc
