package cmds

import (
	"fmt"
	"reflect"
)

// Command is either a function taking its parameters from the following
// words, or a group of sub commands.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn, which may return nothing or an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if err := checkFunc(fnValue); err != nil {
		panic(err)
	}
	return &Command{
		Func: fnValue,
	}
}

func checkFunc(fn reflect.Value) error {
	if fn.Kind() != reflect.Func {
		return fmt.Errorf("command must be a function, got %v", fn.Type())
	}
	fnType := fn.Type()
	if fnType.IsVariadic() {
		return fmt.Errorf("variadic command %v", fnType)
	}
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			return fmt.Errorf("command may only return error, got %v", fnType.Out(0))
		}
	default:
		return fmt.Errorf("command returns %d values", fnType.NumOut())
	}
	return nil
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
