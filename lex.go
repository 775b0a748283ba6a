package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Text is the exact text of the token, e.g. "42", "-5", "+", or "(".
	Text string
	// Kind is the class of the token.
	Kind TokenKind
	// Pos is the 1-based column of the first rune of the token.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the class of a token.
type TokenKind int8

const (
	// TokenNone is the zero TokenKind. The tokenizer never produces it.
	TokenNone TokenKind = iota
	// TokenNum is a run of decimal digits, possibly with a leading minus.
	TokenNum
	// TokenOp is one of the binary operators in Operators.
	TokenOp
	// TokenParen is ( or ).
	TokenParen
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// operand is set when the next token must start an operand: at the start
	// of input and after an operator or an open parenthesis. A minus sign
	// directly followed by a digit in that position is a negative number.
	operand bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:     src,
		operand: true,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		pos := l.rune
		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r):
			l.buf.WriteRune(r)
			if err := l.scanNum(); err != nil {
				return Token{}, err
			}
			return l.emit(TokenNum, pos), nil
		case r == '-' && l.operand:
			l.buf.WriteRune(r)
			d, err := l.digitNext()
			if err != nil {
				return Token{}, err
			}
			if !d {
				// Leave it to the evaluator to find the missing operand.
				return l.emit(TokenOp, pos), nil
			}
			if err := l.scanNum(); err != nil {
				return Token{}, err
			}
			return l.emit(TokenNum, pos), nil
		case strings.ContainsRune(Operators, r):
			l.buf.WriteRune(r)
			return l.emit(TokenOp, pos), nil
		case r == '(', r == ')':
			l.buf.WriteRune(r)
			return l.emit(TokenParen, pos), nil
		default:
			l.buf.WriteRune(r)
			return Token{}, &LexError{Text: l.buf.String(), Col: pos}
		}
	}
}

// emit creates a token from the buffered text and decides whether the token
// after it starts an operand.
func (l *lexer) emit(kind TokenKind, pos int) Token {
	tok := Token{Text: l.buf.String(), Kind: kind, Pos: pos}
	switch kind {
	case TokenNum:
		l.operand = false
	case TokenOp:
		l.operand = true
	case TokenParen:
		l.operand = tok.Text == "("
	}
	return tok
}

// digitNext reports whether the next rune is a digit without consuming it.
func (l *lexer) digitNext() (bool, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	l.unreadRune()
	return isDigit(r), nil
}

// scanNum consumes the rest of a digit run into the buffer.
func (l *lexer) scanNum() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !isDigit(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Tokenize splits an expression into tokens. Whitespace separates tokens but
// is otherwise ignored. An expression with no tokens gives a nil slice and no
// error.
func Tokenize(expression string) ([]Token, error) {
	return TokenizeReader(strings.NewReader(expression))
}

// TokenizeReader is like Tokenize, but it reads the expression from src until
// EOF.
func TokenizeReader(src io.RuneScanner) ([]Token, error) {
	scan := lex(src)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}
