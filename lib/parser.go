package lib

import (
	"log/slog"
)

// Grammar is implemented by concrete recursive descent parsers. Parse runs
// the grammar's entry rule and returns the consumed tokens.
type Grammar interface {
	Parse() ([]Token, error)
}

// BaseParser holds one token of lookahead over a Lexer and records every
// token it consumes. Concrete parsers embed it and build their rules out of
// Match, Consume and Lookahead.
type BaseParser struct {
	input     Lexer
	lookahead Token
	tokens    []Token
	log       *slog.Logger
}

type Option func(*BaseParser)

// WithLogger sets the logger used to trace token consumption at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(p *BaseParser) {
		if log != nil {
			p.log = log
		}
	}
}

// NewBaseParser reads the first token from input so the parser always has a
// lookahead.
func NewBaseParser(input Lexer, opts ...Option) (*BaseParser, error) {
	p := &BaseParser{
		input:  input,
		tokens: []Token{},
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	tok, err := input.NextToken()
	if err != nil {
		return nil, err
	}
	p.lookahead = tok
	return p, nil
}

func (p *BaseParser) Lexer() Lexer {
	return p.input
}

func (p *BaseParser) Lookahead() Token {
	return p.lookahead
}

// Match consumes the lookahead if it has the given type. Otherwise it returns
// a *SyntaxMismatch and the parser is left as it was.
func (p *BaseParser) Match(tokType TokenType) error {
	if p.lookahead.Type() == tokType {
		return p.Consume()
	}

	err := &SyntaxMismatch{
		ExpectedType: tokType,
		Expected:     p.input.TokenName(tokType),
		FoundType:    p.lookahead.Type(),
		Found:        p.input.TokenName(p.lookahead.Type()),
		Token:        p.lookahead,
	}
	p.log.Debug("syntax mismatch", "expected", err.Expected, "found", err.Found, "token", p.lookahead.String())
	return err
}

// Consume records the lookahead and reads the next token. If the lexer
// fails nothing changes.
func (p *BaseParser) Consume() error {
	next, err := p.input.NextToken()
	if err != nil {
		return err
	}
	p.log.Debug("consume", "token", p.lookahead.String())
	p.tokens = append(p.tokens, p.lookahead)
	p.lookahead = next
	return nil
}

// Tokens returns a copy of the tokens consumed so far, in order.
func (p *BaseParser) Tokens() []Token {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}
