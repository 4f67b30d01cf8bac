package lib

import (
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
)

// TokenType tags a token. Values 0 and 1 are reserved; every other positive
// value is free for the concrete lexer to assign.
type TokenType int

const (
	// NullTokenType marks the placeholder token a lexer holds before it has
	// produced anything. Never use it as a grammar token type.
	NullTokenType TokenType = 0
	// EOFType is the type concrete lexers return once input is exhausted.
	EOFType TokenType = 1
)

// EOFValue is the value carried by the EOF token.
const EOFValue = "<EOF>"

// Token is an immutable (type, value) pair produced by a lexer.
type Token struct {
	tokType  TokenType
	value    string
	hasValue bool
}

func NewToken(tokType TokenType, value string) Token {
	return Token{tokType: tokType, value: value, hasValue: true}
}

// NullToken returns the (0, absent) placeholder.
func NullToken() Token {
	return Token{tokType: NullTokenType}
}

func EOFToken() Token {
	return NewToken(EOFType, EOFValue)
}

func (t Token) Type() TokenType {
	return t.tokType
}

// Value returns the token's text, or "" when the token carries no value.
func (t Token) Value() string {
	return t.value
}

func (t Token) HasValue() bool {
	return t.hasValue
}

func (t Token) IsEOF() bool {
	return t.tokType == EOFType
}

// String returns the display form "<type, value>".
func (t Token) String() string {
	return fmt.Sprintf("<%d, %s>", t.tokType, t.value)
}

type tokenJSON struct {
	Type  TokenType `json:"type"`
	Value *string   `json:"value"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	out := tokenJSON{Type: t.tokType}
	if t.hasValue {
		v := t.value
		out.Value = &v
	}
	return json.Marshal(out)
}

func (t *Token) UnmarshalJSON(b []byte) error {
	var in tokenJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*t = Token{tokType: in.Type}
	if in.Value != nil {
		t.value = *in.Value
		t.hasValue = true
	}
	return nil
}

// DefaultTokenName names the reserved token types and falls back to the
// decimal type number for everything else.
func DefaultTokenName(tokType TokenType) string {
	switch tokType {
	case NullTokenType:
		return "<NULL>"
	case EOFType:
		return EOFValue
	default:
		return strconv.Itoa(int(tokType))
	}
}
