package bfavm

import (
	"context"

	"github.com/reusee/bfa/bfalang"
)

// Execute runs program against the machine. Every visited instruction, loops included, counts one step;
// exceeding Config.MaxSteps fails with *StepLimitExceededError and leaves the state as it was at that point.
// Cell values saturate at 0 and Config.MaxValue, and the pointer stops at the tape edges with a warning.
// ctx is only used for logging.
func (m *Machine) Execute(ctx context.Context, program []bfalang.Instruction) error {
	for _, inst := range program {
		m.Steps++
		if m.Steps > m.Config.MaxSteps {
			return wrap(&StepLimitExceededError{
				Step:  m.Steps,
				Limit: m.Config.MaxSteps,
				Op:    inst.Op,
			})
		}

		if m.Config.Debug {
			m.logger.DebugContext(ctx, "step",
				"step", m.Steps,
				"op", inst.Op,
				"pointer", m.Pointer,
				"memory", m.View(10),
			)
		}

		switch inst.Op {

		case bfalang.OpInc:
			if m.Memory[m.Pointer] < m.Config.MaxValue {
				m.Memory[m.Pointer]++
			}

		case bfalang.OpDec:
			if m.Memory[m.Pointer] > 0 {
				m.Memory[m.Pointer]--
			}

		case bfalang.OpLeft:
			if m.Pointer > 0 {
				m.Pointer--
			} else {
				m.logger.WarnContext(ctx, "pointer is already at position 0, cannot move LEFT",
					"step", m.Steps,
				)
			}

		case bfalang.OpRight:
			if m.Pointer < len(m.Memory)-1 {
				m.Pointer++
			} else {
				m.logger.WarnContext(ctx, "pointer is at the last memory cell, cannot move RIGHT",
					"step", m.Steps,
					"pointer", m.Pointer,
				)
			}

		case bfalang.OpPrint:
			m.Output = append(m.Output, rune(m.Memory[m.Pointer]))

		case bfalang.OpLoop:
			if len(inst.Body) == 0 && m.Memory[m.Pointer] != 0 {
				// an empty body never changes the cell and costs no steps.
				// the reported step is synthetic: the limit is reached without executing up to it
				m.Steps = m.Config.MaxSteps + 1
				return wrap(&StepLimitExceededError{
					Step:  m.Steps,
					Limit: m.Config.MaxSteps,
					Op:    inst.Op,
				})
			}
			for m.Memory[m.Pointer] != 0 {
				if err := m.Execute(ctx, inst.Body); err != nil {
					return err
				}
			}

		}
	}

	return nil
}
