package bfaconfigs

import (
	"slices"

	"github.com/reusee/bfa/bfavm"
	"github.com/reusee/bfa/cmds"
	"github.com/reusee/bfa/configs"
	"github.com/reusee/bfa/logs"
	"github.com/reusee/bfa/vars"
)

// Defaults are used for settings that neither a flag nor a config file sets.
// Zero fields fall through to the bfavm defaults.
type Defaults bfavm.Config

func (Module) Defaults() Defaults {
	return Defaults{}
}

type CellCount int

var cellsFlag = cmds.Var[int]("-cells")

func init() {
	cmds.Describe("-cells", "number of tape cells")
	cmds.Describe("-max-value", "maximum cell value")
	cmds.Describe("-max-steps", "step limit")
	cmds.Describe("-debug", "log every step with a memory view")
}

func (Module) CellCount(
	loader configs.Loader,
	defaults Defaults,
) CellCount {
	return CellCount(vars.FirstNonZero(
		*cellsFlag,
		configs.First[int](loader, "cells"),
		defaults.Cells,
	))
}

type MaxValue int

var maxValueFlag = cmds.Var[int]("-max-value")

func (Module) MaxValue(
	loader configs.Loader,
	defaults Defaults,
) MaxValue {
	return MaxValue(vars.FirstNonZero(
		*maxValueFlag,
		configs.First[int](loader, "max_value"),
		defaults.MaxValue,
	))
}

type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
	defaults Defaults,
	logger logs.Logger,
) MaxSteps {
	if values := slices.Compact(slices.Collect(configs.All[int](loader, "max_steps"))); len(values) > 1 {
		logger.Warn("max_steps differs between config files, the first one is used",
			"values", values,
		)
	}
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
		defaults.MaxSteps,
	))
}

type Debug bool

var debugFlag = cmds.Switch("-debug")

func (Module) Debug(
	loader configs.Loader,
	defaults Defaults,
) Debug {
	return Debug(*debugFlag ||
		configs.First[bool](loader, "debug") ||
		defaults.Debug)
}

func (Module) Config(
	cells CellCount,
	maxValue MaxValue,
	maxSteps MaxSteps,
	debug Debug,
) bfavm.Config {
	return bfavm.Config{
		Cells:    int(cells),
		MaxValue: int(maxValue),
		MaxSteps: int(maxSteps),
		Debug:    bool(debug),
	}
}
