package lib

import (
	"errors"
	"fmt"
)

// ErrSyntaxMismatch matches any *SyntaxMismatch with errors.Is.
var ErrSyntaxMismatch = errors.New("syntax mismatch")

// SyntaxMismatch is returned by Match when the lookahead token is not of the
// expected type.
type SyntaxMismatch struct {
	ExpectedType TokenType `json:"expectedType"`
	Expected     string    `json:"expected"`
	FoundType    TokenType `json:"foundType"`
	Found        string    `json:"found"`
	Token        Token     `json:"token"`
}

func (e *SyntaxMismatch) Error() string {
	return fmt.Sprintf("expecting token [%s], found [%s] at %s", e.Expected, e.Found, e.Token)
}

func (e *SyntaxMismatch) Is(target error) bool {
	return target == ErrSyntaxMismatch
}
