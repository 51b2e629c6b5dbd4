package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

func (e *Executor) PrintUsage(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range slices.Sorted(slices.Values(e.names)) {
		command := e.commands[name]
		names := append([]string{name}, command.Aliases...)
		var params []string
		fnType := command.Func.Type()
		for i := range fnType.NumIn() {
			params = append(params, "<"+strings.TrimPrefix(fnType.In(i).String(), "*")+">")
		}
		fmt.Fprintf(tw, "%s %s\t%s\n",
			strings.Join(names, ", "),
			strings.Join(params, " "),
			command.Description,
		)
	}
	tw.Flush()
}
