package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	var sb strings.Builder
	executor.WriteUsage(&sb)
	want := "-h (help, -help, --help)\tprint this usage\n" +
		"foo\tFOO\n" +
		"  bar\tBAR\n" +
		"  baz\tBAZ\n" +
		"    qux\tQUX\n"
	if sb.String() != want {
		t.Fatalf("got %q", sb.String())
	}
}
