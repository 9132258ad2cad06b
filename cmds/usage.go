package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
)

func (p *Executor) SetUsageOutput(w io.Writer) {
	p.usageOut = w
}

func (p *Executor) PrintUsage() {
	fmt.Fprintf(p.usageOut, "usage:\n")
	printCommands(p.usageOut, p.commands, 1)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer
	primary := make(map[*Command]string)
	for name, cmd := range commands {
		if cmd == nil {
			continue
		}
		if slices.Contains(cmd.Aliases, name) {
			continue
		}
		primary[cmd] = name
	}

	names := lo.Values(primary)
	slices.Sort(names)
	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		cmd := commands[name]
		line := indent + name
		for _, arg := range cmd.ArgNames {
			line += " <" + arg + ">"
		}
		if len(cmd.Aliases) > 0 {
			line += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			printCommands(w, cmd.Subs, depth+1)
		}
	}
}
