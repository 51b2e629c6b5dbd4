package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func init() {
	GlobalExecutor.Define("-h", Func(func() {
		GlobalExecutor.PrintUsage(os.Stdout)
		os.Exit(0)
	}).Desc("print this usage").Alias("-help", "--help"))
}

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

// Describe sets the usage description of a defined command.
func Describe(name, desc string) {
	command, ok := GlobalExecutor.commands[name]
	if !ok {
		panic(fmt.Errorf("no such command: %s", name))
	}
	command.Desc(desc)
}

// Var defines name to set a value of type T. Defining name+"." resets it to zero.
func Var[T any](name string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}))
	return value
}

// Switch defines name to set the flag and "!"+name to clear it.
func Switch(name string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}))
	Define("!"+name, Func(func() {
		*value = false
	}))
	return value
}
