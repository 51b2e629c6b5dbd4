package bfavm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/bfa/bfalang"
)

var (
	ErrStepLimitExceeded = errors.New("step limit exceeded")
	ErrLexicalMismatch   = errors.New("tokens are not valid")
)

type StepLimitExceededError struct {
	Step  int
	Limit int
	Op    bfalang.Op
}

func (e *StepLimitExceededError) Error() string {
	return fmt.Sprintf("%s at step %d, instruction: %s", ErrStepLimitExceeded, e.Step, e.Op)
}

func (e *StepLimitExceededError) Is(target error) bool {
	return target == ErrStepLimitExceeded
}

// LexicalMismatchError lists the tokens outside the vocabulary.
type LexicalMismatchError struct {
	Tokens []bfalang.Token
}

func (e *LexicalMismatchError) Error() string {
	parts := make([]string, 0, len(e.Tokens))
	for _, token := range e.Tokens {
		parts = append(parts, fmt.Sprintf("line %d: %q", token.Line, token.Text))
	}
	return ErrLexicalMismatch.Error() + ": " + strings.Join(parts, ", ")
}

func (e *LexicalMismatchError) Is(target error) bool {
	return target == ErrLexicalMismatch
}

// Message returns the text of the first interpreter error in err's chain, without wrapping details such as stack traces.
func Message(err error) string {
	var lexical *LexicalMismatchError
	var structural *bfalang.StructuralError
	var stepLimit *StepLimitExceededError
	switch {
	case errors.As(err, &lexical):
		return lexical.Error()
	case errors.As(err, &structural):
		return structural.Error()
	case errors.As(err, &stepLimit):
		return stepLimit.Error()
	}
	return err.Error()
}
