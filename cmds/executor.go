package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"strings"
)

// Executor maps command names to commands. Arguments are consumed left to right;
// a command with Subs makes its sub commands visible to the rest of the arguments.
type Executor struct {
	commands map[string]*Command
	usageOut io.Writer
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
		usageOut: os.Stderr,
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		p.commands[n] = command
	}
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	visible := p.commands
	for len(args) > 0 {
		name, command, rest, err := lookup(visible, args)
		if err != nil {
			return err
		}
		args = rest

		if command.Func.IsValid() {
			args, err = call(command, args)
			if err != nil {
				return err
			}
		}

		if len(command.Subs) > 0 {
			visible = maps.Clone(visible)
			for subName, sub := range command.Subs {
				if _, ok := visible[subName]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subName)
				}
				visible[subName] = sub
			}
		}
	}
	return nil
}

// lookup resolves args[0], splitting "-name=value" into a name and a leading argument.
func lookup(commands map[string]*Command, args []string) (string, *Command, []string, error) {
	name := strings.TrimSpace(args[0])
	rest := args[1:]
	if command, ok := commands[name]; ok {
		return name, command, rest, nil
	}
	if key, value, found := strings.Cut(name, "="); found && strings.HasPrefix(key, "-") {
		if command, ok := commands[key]; ok {
			return key, command, append([]string{value}, rest...), nil
		}
	}
	return "", nil, nil, fmt.Errorf("unknown command: %s", name)
}

// call decodes one argument per parameter and returns the unconsumed arguments.
func call(command *Command, args []string) ([]string, error) {
	fnType := command.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, consumed, err := decodeArg(fnType.In(i), args)
		if err != nil {
			return nil, err
		}
		if consumed {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := command.Func.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}
