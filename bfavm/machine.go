package bfavm

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/reusee/bfa/logs"
)

// Machine is the state of one program run: the tape, the pointer, the output and the step counter.
// A Machine is owned by a single run and is not safe for concurrent use.
type Machine struct {
	Memory  []int
	Pointer int
	Output  []rune
	Steps   int
	Config  Config

	logger logs.Logger
}

// New allocates a zeroed tape of config.Cells cells. A nil logger discards warnings.
func New(config Config, logger logs.Logger) *Machine {
	config = config.withDefaults()
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Machine{
		Memory: make([]int, config.Cells),
		Config: config,
		logger: logger,
	}
}

// Cell returns the value under the pointer.
func (m *Machine) Cell() int {
	return m.Memory[m.Pointer]
}

// View renders the first size cells, with a marker under the pointer when it is in range.
func (m *Machine) View(size int) string {
	size = min(size, len(m.Memory))
	buf := new(strings.Builder)
	for i, v := range m.Memory[:size] {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%3d", v)
	}
	buf.WriteByte('\n')
	if m.Pointer < size {
		buf.WriteString(strings.Repeat(" ", m.Pointer*4+2))
		buf.WriteString("↑")
	}
	return buf.String()
}
