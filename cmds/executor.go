package cmds

import (
	"fmt"
	"maps"
	"os"
	"strings"
)

// Executor maps argument words to commands. A command with Subs brings its
// sub commands into scope for the words that follow it.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	ret.Define("-h", usage)

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

func (p *Executor) Execute(args []string) error {
	scope := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		command, ok := scope[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		var err error
		args, err = command.call(args[1:])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		if len(command.Subs) > 0 {
			scope, err = enterSubs(scope, name, command.Subs)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func enterSubs(scope map[string]*Command, name string, subs map[string]*Command) (map[string]*Command, error) {
	ret := maps.Clone(scope)
	for subname, command := range subs {
		if _, ok := ret[subname]; ok {
			return nil, fmt.Errorf("duplicated sub command: %s %s", name, subname)
		}
		ret[subname] = command
	}
	return ret, nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}
