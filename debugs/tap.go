package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bfa/bfavm"
	"github.com/reusee/bfa/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound. It returns when the input ends.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, &starlark.Thread{
			Name: what,
		}, toStringDict(globals))
	}
}

func toStringDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

// MachineGlobals exposes the state of m to a tap.
func MachineGlobals(m *bfavm.Machine) map[string]any {
	return map[string]any{
		"memory":  m.Memory,
		"pointer": m.Pointer,
		"output":  m.RenderOutput(),
		"steps":   m.Steps,
		"config":  m.Config,
		"cell": func(i int) int {
			if i < 0 || i >= len(m.Memory) {
				return 0
			}
			return m.Memory[i]
		},
		"view": func(size int) string {
			return m.View(size)
		},
	}
}
