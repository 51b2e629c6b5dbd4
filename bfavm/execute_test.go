package bfavm

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/reusee/bfa/bfalang"
)

const sampleProgram = `
    INC
    INC
    INC
    INC
    INC
    INC
    INC
    INC
    INC
    INC
    INC
    INC
    INC
    LOOP_START
        RIGHT
        INC
        INC
        INC
        INC
        INC
        LEFT
        DEC
    LOOP_END
    RIGHT
    PRINT
`

func mustParse(t *testing.T, source string) []bfalang.Instruction {
	t.Helper()
	tokens := bfalang.Tokenize(source)
	if !bfalang.Validate(tokens) {
		t.Fatalf("invalid program: %q", source)
	}
	program, err := bfalang.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	return program
}

func ops(ops ...bfalang.Op) []bfalang.Instruction {
	ret := make([]bfalang.Instruction, 0, len(ops))
	for _, op := range ops {
		ret = append(ret, bfalang.Instruction{Op: op})
	}
	return ret
}

func TestExecuteSample(t *testing.T) {
	m := New(Config{}, nil)
	if err := m.Execute(t.Context(), mustParse(t, sampleProgram)); err != nil {
		t.Fatal(err)
	}
	if out := RenderOutput(m.Output); out != "A" {
		t.Fatalf("got %q", out)
	}
	if m.Memory[0] != 0 || m.Memory[1] != 65 {
		t.Fatalf("got %v", m.Memory[:2])
	}
	if m.Pointer != 1 {
		t.Fatalf("got %d", m.Pointer)
	}
	// 13 INC, the loop, 13 iterations of 8, RIGHT, PRINT
	if m.Steps != 13+1+13*8+2 {
		t.Fatalf("got %d", m.Steps)
	}
}

func TestIncrementSaturates(t *testing.T) {
	m := New(Config{MaxValue: 3}, nil)
	if err := m.Execute(t.Context(), ops(
		bfalang.OpInc, bfalang.OpInc, bfalang.OpInc, bfalang.OpInc, bfalang.OpInc,
	)); err != nil {
		t.Fatal(err)
	}
	if m.Cell() != 3 {
		t.Fatalf("got %d", m.Cell())
	}

	m = New(Config{}, nil)
	for range 300 {
		if err := m.Execute(t.Context(), ops(bfalang.OpInc)); err != nil {
			t.Fatal(err)
		}
	}
	if m.Cell() != 255 {
		t.Fatalf("should saturate, not wrap: got %d", m.Cell())
	}
}

func TestDecrementSaturates(t *testing.T) {
	m := New(Config{}, nil)
	if err := m.Execute(t.Context(), ops(
		bfalang.OpDec, bfalang.OpDec, bfalang.OpInc,
	)); err != nil {
		t.Fatal(err)
	}
	if m.Cell() != 1 {
		t.Fatalf("got %d", m.Cell())
	}
}

func TestCellArithmeticProperty(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		maxValue := 1 + rnd.IntN(20)
		m := New(Config{MaxValue: maxValue, Cells: 1}, nil)

		var program []bfalang.Instruction
		expected := 0
		incs := 0
		allIncFirst := rnd.IntN(2) == 0
		n := rnd.IntN(60)
		for i := range n {
			op := bfalang.OpDec
			if allIncFirst && i < n/2 || !allIncFirst && rnd.IntN(2) == 0 {
				op = bfalang.OpInc
			}
			program = append(program, bfalang.Instruction{Op: op})
			if op == bfalang.OpInc {
				incs++
				expected = min(expected+1, maxValue)
			} else {
				expected = max(expected-1, 0)
			}
		}

		if err := m.Execute(t.Context(), program); err != nil {
			t.Fatal(err)
		}
		if m.Cell() != expected {
			t.Fatalf("expected %d, got %d", expected, m.Cell())
		}
		if m.Cell() < 0 || m.Cell() > maxValue {
			t.Fatalf("out of bounds: %d", m.Cell())
		}
		if allIncFirst {
			// increments first: the result is the clamped net delta
			decs := n - incs
			if want := max(0, min(incs, maxValue)-decs); m.Cell() != want {
				t.Fatalf("expected %d, got %d", want, m.Cell())
			}
		}
	}
}

func TestPointerBounds(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, nil))

	m := New(Config{Cells: 3}, logger)
	if err := m.Execute(t.Context(), ops(bfalang.OpLeft)); err != nil {
		t.Fatal(err)
	}
	if m.Pointer != 0 {
		t.Fatalf("got %d", m.Pointer)
	}
	if !strings.Contains(buf.String(), "cannot move LEFT") {
		t.Fatalf("got %s", buf.String())
	}

	buf.Reset()
	if err := m.Execute(t.Context(), ops(
		bfalang.OpRight, bfalang.OpRight, bfalang.OpRight, bfalang.OpRight,
	)); err != nil {
		t.Fatal(err)
	}
	if m.Pointer != 2 {
		t.Fatalf("got %d", m.Pointer)
	}
	if strings.Count(buf.String(), "cannot move RIGHT") != 2 {
		t.Fatalf("got %s", buf.String())
	}
}

func TestPointerBoundsProperty(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 5))
	for range 100 {
		cells := 1 + rnd.IntN(8)
		m := New(Config{Cells: cells}, nil)
		expected := 0
		for range rnd.IntN(100) {
			op := bfalang.OpLeft
			if rnd.IntN(2) == 0 {
				op = bfalang.OpRight
			}
			if err := m.Execute(t.Context(), ops(op)); err != nil {
				t.Fatal(err)
			}
			if op == bfalang.OpLeft {
				expected = max(expected-1, 0)
			} else {
				expected = min(expected+1, cells-1)
			}
			if m.Pointer != expected {
				t.Fatalf("expected %d, got %d", expected, m.Pointer)
			}
		}
	}
}

func TestPrint(t *testing.T) {
	m := New(Config{}, nil)
	m.Memory[0] = 'h'
	m.Memory[1] = 'i'
	m.Memory[2] = 233
	if err := m.Execute(t.Context(), ops(
		bfalang.OpPrint, bfalang.OpRight, bfalang.OpPrint, bfalang.OpRight, bfalang.OpPrint,
	)); err != nil {
		t.Fatal(err)
	}
	if out := m.RenderOutput(); out != "hié" {
		t.Fatalf("got %q", out)
	}
}

func TestLoopSkippedOnZero(t *testing.T) {
	m := New(Config{}, nil)
	program := mustParse(t, `
    LOOP_START
      INC
      PRINT
    LOOP_END
  `)
	if err := m.Execute(t.Context(), program); err != nil {
		t.Fatal(err)
	}
	if len(m.Output) != 0 || m.Cell() != 0 {
		t.Fatalf("body should not run: %v %d", m.Output, m.Cell())
	}
	if m.Steps != 1 {
		t.Fatalf("got %d", m.Steps)
	}
}

func TestLoopRechecksCurrentCell(t *testing.T) {
	// the body moves right, so the condition is checked on a different cell each iteration
	m := New(Config{Cells: 10}, nil)
	copy(m.Memory, []int{1, 1, 1, 0})
	program := mustParse(t, `
    LOOP_START
      PRINT
      RIGHT
    LOOP_END
  `)
	if err := m.Execute(t.Context(), program); err != nil {
		t.Fatal(err)
	}
	if m.Pointer != 3 {
		t.Fatalf("got %d", m.Pointer)
	}
	if len(m.Output) != 3 {
		t.Fatalf("got %v", m.Output)
	}
}

func TestNestedLoops(t *testing.T) {
	// 3 * 4 * 5 = 60 in cell 2
	m := New(Config{}, nil)
	program := mustParse(t, `
    INC
    INC
    INC
    LOOP_START
      RIGHT
      INC
      INC
      INC
      INC
      LOOP_START
        RIGHT
        INC
        INC
        INC
        INC
        INC
        LEFT
        DEC
      LOOP_END
      LEFT
      DEC
    LOOP_END
  `)
	if err := m.Execute(t.Context(), program); err != nil {
		t.Fatal(err)
	}
	if mem := m.Memory[:3]; mem[0] != 0 || mem[1] != 0 || mem[2] != 60 {
		t.Fatalf("got %v", m.Memory[:3])
	}
}

func TestStepLimit(t *testing.T) {
	m := New(Config{MaxSteps: 1000}, nil)
	program := mustParse(t, `
    INC
    LOOP_START
      RIGHT
      INC
      LEFT
    LOOP_END
  `)
	err := m.Execute(t.Context(), program)
	if !errors.Is(err, ErrStepLimitExceeded) {
		t.Fatalf("got %v", err)
	}
	var stepErr *StepLimitExceededError
	if !errors.As(err, &stepErr) {
		t.Fatalf("got %T", err)
	}
	if stepErr.Step != 1001 {
		t.Fatalf("got %d", stepErr.Step)
	}
	if stepErr.Limit != 1000 {
		t.Fatalf("got %d", stepErr.Limit)
	}
	if stepErr.Op != bfalang.OpLeft {
		t.Fatalf("got %v", stepErr.Op)
	}
	if !strings.Contains(err.Error(), "step limit exceeded at step 1001, instruction: LEFT") {
		t.Fatalf("got %v", err)
	}
	// partial state is kept
	if m.Memory[1] != 255 {
		t.Fatalf("got %d", m.Memory[1])
	}
}

func TestStepLimitExact(t *testing.T) {
	m := New(Config{MaxSteps: 3}, nil)
	if err := m.Execute(t.Context(), ops(bfalang.OpInc, bfalang.OpInc, bfalang.OpInc)); err != nil {
		t.Fatal(err)
	}
	err := m.Execute(t.Context(), ops(bfalang.OpPrint))
	var stepErr *StepLimitExceededError
	if !errors.As(err, &stepErr) {
		t.Fatalf("got %v", err)
	}
	if stepErr.Step != 4 || stepErr.Op != bfalang.OpPrint {
		t.Fatalf("got %+v", stepErr)
	}
	if len(m.Output) != 0 {
		t.Fatal("failed step should not run")
	}
}

func TestEmptyLoopNeverTerminates(t *testing.T) {
	m := New(Config{MaxSteps: 50}, nil)
	err := m.Execute(context.Background(), mustParse(t, "INC\nLOOP_START\nLOOP_END\n"))
	var stepErr *StepLimitExceededError
	if !errors.As(err, &stepErr) {
		t.Fatalf("got %v", err)
	}
	if stepErr.Step != 51 || stepErr.Op != bfalang.OpLoop {
		t.Fatalf("got %+v", stepErr)
	}

	// with a zero cell the empty loop is skipped
	m = New(Config{MaxSteps: 50}, nil)
	if err := m.Execute(context.Background(), mustParse(t, "LOOP_START\nLOOP_END\n")); err != nil {
		t.Fatal(err)
	}
}

func TestDebugTrace(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	m := New(Config{Debug: true}, logger)
	if err := m.Execute(t.Context(), ops(bfalang.OpInc, bfalang.OpRight)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "msg=step") != 2 {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "op=RIGHT") {
		t.Fatalf("got %s", out)
	}

	// no trace without Debug
	buf.Reset()
	m = New(Config{}, logger)
	if err := m.Execute(t.Context(), ops(bfalang.OpInc)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("got %s", buf.String())
	}
}
