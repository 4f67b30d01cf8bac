package lib

// TokenBuffer is a Lexer that replays tokens written into it. Once it runs
// out it keeps returning the EOF token.
type TokenBuffer struct {
	toks  []Token
	next  int
	names func(TokenType) string
}

// NewTokenBuffer returns a buffer preloaded with toks. names may be nil, in
// which case DefaultTokenName is used.
func NewTokenBuffer(names func(TokenType) string, toks ...Token) *TokenBuffer {
	if names == nil {
		names = DefaultTokenName
	}
	tb := &TokenBuffer{names: names}
	tb.toks = append(tb.toks, toks...)
	return tb
}

func (tb *TokenBuffer) Write(tok Token) {
	tb.toks = append(tb.toks, tok)
}

func (tb *TokenBuffer) NextToken() (Token, error) {
	tok := tb.Peek()
	if tb.next < len(tb.toks) {
		tb.next++
	}
	return tok, nil
}

// Peek returns the token NextToken would return without advancing.
func (tb *TokenBuffer) Peek() Token {
	if tb.next >= len(tb.toks) {
		return EOFToken()
	}
	return tb.toks[tb.next]
}

// Len is the number of tokens not yet read.
func (tb *TokenBuffer) Len() int {
	return len(tb.toks) - tb.next
}

func (tb *TokenBuffer) TokenName(tokType TokenType) string {
	return tb.names(tokType)
}

// Tokenize drains l and returns every token it produced, up to and including
// the first EOF token.
func Tokenize(l Lexer) ([]Token, error) {
	toks := []Token{}
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.IsEOF() {
			return toks, nil
		}
	}
}
