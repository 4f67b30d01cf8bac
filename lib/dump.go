package lib

import (
	"errors"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// WriteTokens writes toks to w as an indented JSON array.
func WriteTokens(w io.Writer, toks []Token) error {
	if toks == nil {
		toks = []Token{}
	}
	return json.MarshalWrite(w, toks, jsontext.Multiline(true), jsontext.WithIndent("  "))
}

// WriteMismatch writes the *SyntaxMismatch wrapped in err to w as JSON. It
// returns err unchanged if err is not a mismatch.
func WriteMismatch(w io.Writer, err error) error {
	var mismatch *SyntaxMismatch
	if !errors.As(err, &mismatch) {
		return err
	}
	return json.MarshalWrite(w, mismatch, jsontext.Multiline(true), jsontext.WithIndent("  "))
}
