package cmds

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"reflect"
	"strings"
)

// Executor maps command words to commands.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

var errorType = reflect.TypeFor[error]()

var ErrUnknownCommand = errors.New("unknown command")

// Execute consumes args word by word. A group command brings its sub
// commands into scope for the remaining words.
func (p *Executor) Execute(args []string) error {
	scope := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := scope[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		}

		if command.Func.IsValid() {
			var err error
			args, err = call(command.Func, args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}

		if len(command.Subs) > 0 {
			scope = maps.Clone(scope)
			for subname, sub := range command.Subs {
				if _, ok := scope[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				scope[subname] = sub
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

// call invokes fn with parameters parsed from args and returns the unconsumed words.
func call(fn reflect.Value, args []string) ([]string, error) {
	fnType := fn.Type()
	params := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		params = append(params, value)
	}
	rets := fn.Call(params)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}
