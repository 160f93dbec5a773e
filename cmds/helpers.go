package cmds

// Var defines name to set the value and "name." to reset it to zero.
func Var[T any](name string, desc string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

func Switch(name string, desc string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(desc))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))

	return &value
}

// Optional records whether a value was given on the command line.
type Optional[T any] struct {
	Value T
	Set   bool
}

func (o Optional[T]) Or(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}

// Toggle is Switch for settings whose default lives elsewhere: the result
// reports whether name or "!name" was given at all.
func Toggle(name string, desc string) *Optional[bool] {
	var value Optional[bool]

	Define(name, Func(func() {
		value = Optional[bool]{Value: true, Set: true}
	}).Desc(desc))

	Define("!"+name, Func(func() {
		value = Optional[bool]{Value: false, Set: true}
	}).Desc("unset "+name))

	return &value
}

func Collect[T any](name string, desc string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc))
	return &value
}
