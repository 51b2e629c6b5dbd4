package debugs

import (
	"errors"
	"io"

	"github.com/reusee/bfa/bfalang"
	"github.com/reusee/bfa/bfavm"
	"gopkg.in/yaml.v3"
)

// Report summarizes one program run.
type Report struct {
	Tokens       int          `yaml:"tokens"`
	Valid        bool         `yaml:"valid"`
	Instructions int          `yaml:"instructions"`
	Depth        int          `yaml:"depth"`
	Steps        int          `yaml:"steps"`
	Pointer      int          `yaml:"pointer"`
	Output       string       `yaml:"output"`
	Config       bfavm.Config `yaml:"config"`
	Error        string       `yaml:"error,omitempty"`
	ErrorKind    string       `yaml:"error_kind,omitempty"`
	Program      string       `yaml:"program,omitempty"`
}

func NewReport(run *bfavm.Run, m *bfavm.Machine, err error) Report {
	report := Report{
		Steps:   m.Steps,
		Pointer: m.Pointer,
		Output:  m.RenderOutput(),
		Config:  m.Config,
	}
	if run != nil {
		report.Tokens = len(run.Tokens)
		report.Valid = run.Valid
		report.Instructions = bfalang.Count(run.Program)
		report.Depth = bfalang.Depth(run.Program)
		report.Program = bfalang.Format(run.Program)
	}
	if err != nil {
		report.Error = bfavm.Message(err)
		report.ErrorKind = errorKind(err)
	}
	return report
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, bfavm.ErrLexicalMismatch):
		return "lexical mismatch"
	case errors.Is(err, bfalang.ErrStructural):
		return "structural"
	case errors.Is(err, bfavm.ErrStepLimitExceeded):
		return "step limit exceeded"
	}
	return "other"
}

func (r Report) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
