package lib

import (
	"fmt"
)

const (
	// EOF is the character reported once the cursor has run off the end of
	// the input. It can never be produced by a byte of input.
	EOF rune = -1

	// Lambda is the empty match.
	Lambda = ""
)

// Lexer is what a parser pulls tokens from. Concrete lexers embed a
// *BaseLexer for the character mechanics and implement both methods.
type Lexer interface {
	// NextToken scans forward from the cursor and returns the next token,
	// or EOFToken() once input is exhausted.
	NextToken() (Token, error)
	// TokenName maps a token type to a human readable name for diagnostics.
	TokenName(tokType TokenType) string
}

// BaseLexer walks an input string one ASCII character at a time.
type BaseLexer struct {
	input     string
	p         int
	c         rune
	lastChar  rune
	lastToken Token
}

// NewBaseLexer returns a lexer whose cursor already sits on the first
// character of input (or EOF if input is empty).
func NewBaseLexer(input string) *BaseLexer {
	l := &BaseLexer{
		input:     input,
		p:         -1,
		lastToken: NullToken(),
	}
	l.Consume()
	return l
}

// Consume advances the cursor by one character. Consuming at the end of
// input is a no-op that keeps reporting EOF.
func (l *BaseLexer) Consume() *BaseLexer {
	l.lastChar = l.c
	if l.p < len(l.input) {
		l.p++
	}
	l.c = l.charAt(l.p)
	return l
}

// Lookahead peeks at the character after the current one.
func (l *BaseLexer) Lookahead() rune {
	return l.charAt(l.p + 1)
}

func (l *BaseLexer) charAt(i int) rune {
	if i < 0 || i >= len(l.input) {
		return EOF
	}
	return rune(l.input[i])
}

func (l *BaseLexer) Current() rune {
	return l.c
}

func (l *BaseLexer) Position() int {
	return l.p
}

func (l *BaseLexer) Input() string {
	return l.input
}

// LastCharacter returns the character the cursor was on before the last
// Consume, or 0 if no character has been passed yet.
func (l *BaseLexer) LastCharacter() rune {
	return l.lastChar
}

func (l *BaseLexer) LastToken() Token {
	return l.lastToken
}

func (l *BaseLexer) IsLetter() bool {
	return isLetter(l.c)
}

func (l *BaseLexer) IsDigit() bool {
	return isDigit(l.c)
}

func (l *BaseLexer) IsSpace() bool {
	return isSpace(l.c)
}

// WS skips the run of whitespace starting at the cursor.
func (l *BaseLexer) WS() {
	for isSpace(l.c) {
		l.Consume()
	}
}

// Since returns the input between start and the cursor.
func (l *BaseLexer) Since(start int) string {
	if start < 0 {
		start = 0
	}
	if start > l.p {
		return Lambda
	}
	return l.input[start:l.p]
}

// Emit builds a token and records it as the last token. NextToken
// implementations should produce every token through here.
func (l *BaseLexer) Emit(tokType TokenType, value string) Token {
	tok := NewToken(tokType, value)
	l.lastToken = tok
	return tok
}

func (l *BaseLexer) EmitEOF() Token {
	return l.Emit(EOFType, EOFValue)
}

// Errorf reports a lexing failure at the cursor.
func (l *BaseLexer) Errorf(format string, args ...interface{}) error {
	return fmt.Errorf("error at offset %d: %s", l.p, fmt.Sprintf(format, args...))
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
