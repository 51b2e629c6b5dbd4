package bfavm

import (
	"log/slog"

	"github.com/reusee/bfa/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// NewMachine allocates a fresh Machine for each program run.
type NewMachine func() *Machine

func (Module) NewMachine(
	config Config,
	logger logs.Logger,
) NewMachine {
	return func() *Machine {
		if config.Debug {
			// the step trace is logged at debug level
			logs.SetLevel(slog.LevelDebug)
		}
		return New(config, logger)
	}
}
