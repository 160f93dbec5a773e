package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/knot/fields"
	"github.com/reusee/knot/matrices"
	"github.com/reusee/knot/tangles"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)

	case fields.Element:
		return starlark.MakeUint(uint(v))
	case matrices.Handle:
		return starlark.MakeInt(int(v))

	case *matrices.Matrix:
		if v == nil {
			return starlark.None
		}
		return matrixValue(v)

	case *tangles.Registers:
		if v == nil {
			return starlark.None
		}
		variables := starlark.NewDict(tangles.NumVariables)
		for i, mat := range v.Variables {
			if mat == nil {
				continue
			}
			variables.SetKey(starlark.String(rune('a'+i)), matrixValue(mat))
		}
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("accumulator"), toStarlarkValue(v.Accumulator))
		d.SetKey(starlark.String("pending"), toStarlarkValue(v.Pending))
		d.SetKey(starlark.String("variables"), variables)
		return d

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

// matrixValue exposes a matrix as a dict: handles, dimensions and a list of rows.
func matrixValue(m *matrices.Matrix) *starlark.Dict {
	rows := make([]starlark.Value, 0, m.NumRows())
	for i := range m.NumRows() {
		row := make([]starlark.Value, m.NumCols())
		for j := range row {
			row[j] = starlark.MakeUint(uint(m.At(i, j)))
		}
		rows = append(rows, starlark.NewList(row))
	}
	d := starlark.NewDict(5)
	d.SetKey(starlark.String("row_handle"), starlark.MakeInt(int(m.Rows)))
	d.SetKey(starlark.String("col_handle"), starlark.MakeInt(int(m.Cols)))
	d.SetKey(starlark.String("num_rows"), starlark.MakeInt(m.NumRows()))
	d.SetKey(starlark.String("num_cols"), starlark.MakeInt(m.NumCols()))
	d.SetKey(starlark.String("data"), starlark.NewList(rows))
	return d
}
