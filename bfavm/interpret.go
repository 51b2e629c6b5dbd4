package bfavm

import (
	"context"

	"github.com/reusee/bfa/bfalang"
	"github.com/reusee/bfa/procs"
	"github.com/samber/lo"
)

// Run records what the stages of Interpret produced. Fields of stages that were not reached stay empty.
type Run struct {
	Source  string
	Tokens  []bfalang.Token
	Valid   bool
	Program []bfalang.Instruction
}

type session struct {
	ctx     context.Context
	machine *Machine
	run     *Run
}

type stage = procs.Proc[*session]

// Interpret tokenizes, validates, parses and executes source on the machine.
// Validation failure returns *LexicalMismatchError without parsing.
func (m *Machine) Interpret(ctx context.Context, source string) (*Run, error) {
	s := &session{
		ctx:     ctx,
		machine: m,
		run: &Run{
			Source: source,
		},
	}
	err := procs.Drive(s, procs.Procs[*session]{
		procs.Func[*session](tokenizeStage),
		procs.Func[*session](validateStage),
		procs.Func[*session](parseStage),
		procs.Func[*session](executeStage),
	})
	return s.run, err
}

func tokenizeStage(s *session) (stage, error) {
	s.run.Tokens = bfalang.TokenLines(s.run.Source)
	return nil, nil
}

func texts(tokens []bfalang.Token) []string {
	return lo.Map(tokens, func(token bfalang.Token, _ int) string {
		return token.Text
	})
}

func validateStage(s *session) (stage, error) {
	tokens := texts(s.run.Tokens)
	s.run.Valid = bfalang.Validate(tokens)
	if s.run.Valid {
		return nil, nil
	}
	return nil, wrap(&LexicalMismatchError{
		Tokens: lo.Map(bfalang.Unrecognized(tokens), func(i int, _ int) bfalang.Token {
			return s.run.Tokens[i]
		}),
	})
}

func parseStage(s *session) (stage, error) {
	program, err := bfalang.Parse(texts(s.run.Tokens))
	if err != nil {
		return nil, err
	}
	s.run.Program = program
	return nil, nil
}

func executeStage(s *session) (stage, error) {
	s.machine.logger.DebugContext(s.ctx, "execute",
		"instructions", bfalang.Count(s.run.Program),
		"depth", bfalang.Depth(s.run.Program),
		"max steps", s.machine.Config.MaxSteps,
	)
	if err := s.machine.Execute(s.ctx, s.run.Program); err != nil {
		return nil, err
	}
	return nil, nil
}
