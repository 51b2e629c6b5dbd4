package bfalang

import (
	"errors"
	"fmt"
)

var (
	ErrStructural = errors.New("structural error")

	ErrUnmatchedLoopEnd  = errors.New("unmatched loop terminator")
	ErrUnrecognizedToken = errors.New("unrecognized token")
	ErrUnclosedLoop      = errors.New("unclosed loop")
)

// StructuralError is returned by Parse. Kind is one of ErrUnmatchedLoopEnd, ErrUnrecognizedToken or ErrUnclosedLoop.
type StructuralError struct {
	Kind  error
	Index int
	Token string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s: %q at token %d", ErrStructural, e.Kind, e.Token, e.Index)
}

func (e *StructuralError) Unwrap() error {
	return e.Kind
}

func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}
