package lib

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	require.Equal(t, "<5, x>", NewToken(5, "x").String())
	require.Equal(t, "<1, <EOF>>", EOFToken().String())
	require.Equal(t, "<0, >", NullToken().String())
}

func TestTokenAccessors(t *testing.T) {
	tok := NewToken(9, "")
	require.Equal(t, TokenType(9), tok.Type())
	require.Equal(t, "", tok.Value())
	require.True(t, tok.HasValue())
	require.False(t, tok.IsEOF())

	null := NullToken()
	require.Equal(t, NullTokenType, null.Type())
	require.False(t, null.HasValue())

	require.True(t, EOFToken().IsEOF())
	require.Equal(t, EOFValue, EOFToken().Value())
}

func TestWriteTokens(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTokens(&buf, []Token{NewToken(5, "x"), NullToken(), EOFToken()})
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"type": 5, "value": "x"},
		{"type": 0, "value": null},
		{"type": 1, "value": "<EOF>"}
	]`, buf.String())

	var decoded []Token
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, []Token{NewToken(5, "x"), NullToken(), EOFToken()}, decoded)
}

func TestWriteTokensNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTokens(&buf, nil))
	require.JSONEq(t, `[]`, buf.String())
}

func TestWriteMismatch(t *testing.T) {
	_, _, err := parseList("[a,")
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMismatch(&buf, err))
	require.JSONEq(t, `{
		"expectedType": 2,
		"expected": "NAME",
		"foundType": 1,
		"found": "<EOF>",
		"token": {"type": 1, "value": "<EOF>"}
	}`, buf.String())
}

func TestWriteMismatchOtherError(t *testing.T) {
	other := errors.New("boom")
	var buf bytes.Buffer
	require.Equal(t, other, WriteMismatch(&buf, other))
	require.Zero(t, buf.Len())
}
