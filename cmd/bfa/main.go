package main

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bfa/bfaconfigs"
	"github.com/reusee/bfa/bfavm"
	"github.com/reusee/bfa/cmds"
	"github.com/reusee/bfa/debugs"
	"github.com/reusee/bfa/logs"
	"github.com/reusee/bfa/modes"
	"github.com/reusee/dscope"
	"github.com/tebeka/atexit"
)

//go:embed sample.bfa
var sampleProgram string

var (
	programFile = cmds.Var[string]("-file")
	tapFlag     = cmds.Switch("-tap")
	reportFlag  = cmds.Switch("-report")
	noBanner    = cmds.Switch("-no-banner")
)

func init() {
	cmds.Describe("-file", "program file, the built-in sample when empty")
	cmds.Describe("-tap", "open a starlark REPL on the machine state after the run")
	cmds.Describe("-report", "write a YAML run report to stderr")
	cmds.Describe("-no-banner", "do not print the banner")
}

// the entry point runs programs with a lower step limit than the library default
const cliMaxSteps = 30_000

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		stdout.Flush()
	})

	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(2)
	}

	source := sampleProgram
	if *programFile != "" {
		content, err := os.ReadFile(*programFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}
		source = string(content)
	}

	scope := dscope.New(
		new(Module),
		new(bfaconfigs.Module),
		modes.ForProduction(),
	).Fork(
		func() bfaconfigs.Defaults {
			return bfaconfigs.Defaults{
				MaxSteps: cliMaxSteps,
			}
		},
	)

	var code int
	scope.Call(func(
		run Run,
	) {
		code = run(context.Background(), source, stdout, os.Stderr)
	})
	atexit.Exit(code)
}

// Run interprets one program and returns the process exit code.
type Run func(ctx context.Context, source string, stdout, stderr io.Writer) int

func (Module) Run(
	newMachine bfavm.NewMachine,
	newSpan logs.NewSpan,
	logger logs.Logger,
	tap debugs.Tap,
	mode modes.Mode,
) Run {
	return func(ctx context.Context, source string, stdout, stderr io.Writer) int {
		ctx, _ = newSpan(ctx, "")

		if !*noBanner {
			printBanner(stdout, mode == modes.ModeProduction && isTerminal(os.Stdout))
		}

		m := newMachine()
		run, err := m.Interpret(ctx, source)

		if *reportFlag {
			if err := debugs.NewReport(run, m, err).Write(stderr); err != nil {
				logger.ErrorContext(ctx, "write report", "error", err)
			}
		}
		if *tapFlag && mode.Interactive() {
			tap(ctx, "machine", debugs.MachineGlobals(m))
		}

		if err != nil {
			logger.DebugContext(ctx, "run failed", "error", err)
			fmt.Fprintln(stdout)
			if errors.Is(err, bfavm.ErrLexicalMismatch) {
				fmt.Fprintln(stderr, "🔴 Error: tokens are not valid.")
			}
			fmt.Fprintf(stderr, "Execution halted: %s\n", logs.WrapSpan(ctx, errors.New(bfavm.Message(err))))
			fmt.Fprintln(stdout)
			return 1
		}

		fmt.Fprintln(stdout, "Result")
		fmt.Fprintln(stdout, m.RenderOutput())
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Program executed.")
		fmt.Fprintln(stdout)
		return 0
	}
}
