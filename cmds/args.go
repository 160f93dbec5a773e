package cmds

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/knot/vars"
)

var ErrMissingArgument = errors.New("missing argument")

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// parseArg converts the next word into a value of type t. Pointer parameters
// are optional and become a pointer to zero when args is exhausted.
func parseArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("%w: expecting %v", ErrMissingArgument, t)
	}
	str := args[0]
	ret := reflect.New(t)

	if t.Implements(textUnmarshalerType) || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		if err := ret.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(str)); err != nil {
			return reflect.Value{}, fmt.Errorf("convert %s to %v: %w", str, t, err)
		}
		return ret.Elem(), nil
	}

	value := ret.Elem()
	switch t.Kind() {

	case reflect.String:
		value.SetString(str)

	case reflect.Bool:
		value.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %s to %v: %w", str, t, err)
		}
		value.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %s to %v: %w", str, t, err)
		}
		value.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %s to %v: %w", str, t, err)
		}
		value.SetFloat(f)

	default:
		return reflect.Value{}, fmt.Errorf("unsupported argument type: %v", t)
	}

	return value, nil
}
