package configs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var testSchema = `
terminators?: "comma" | "newline" | "both"
max_handle?: int
prelude?: string
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var str string
	err := loader.AssignFirst("terminators", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "comma" {
		t.Fatalf("got %q", str)
	}

	var n int
	err = loader.AssignFirst("max_handle", &n)
	if err != nil {
		t.Fatal(err)
	}
	if n != 12 {
		t.Fatalf("got %d", n)
	}

	err = loader.AssignFirst("not", &n)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	err = loader.AssignFirst("terminators", &n)
	if err == nil {
		t.Fatal("should error")
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(paths) != "[test.cue]" {
		t.Fatalf("got %v", paths)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("prelude") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[%,S,X |,Y]" {
		t.Fatalf("got %q", str)
	}

	strs = strs[:0]
	for str := range All[string](loader, "terminators") {
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[comma both]" {
		t.Fatalf("got %q", str)
	}

	// max_handle only in the first file
	n := 0
	for range All[int](loader, "max_handle") {
		n++
	}
	if n != 1 {
		t.Fatalf("got %d", n)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "bad.cue") {
		t.Fatalf("got %v", err)
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"nonexistent.cue"}, testSchema)
	if _, err := loader.Paths(); err == nil {
		t.Fatal("should error")
	}
}

func TestSourceLoader(t *testing.T) {
	loader := NewSourceLoader([]Source{
		{Name: "a.cue", Content: []byte(`max_handle: 9`)},
	}, testSchema)

	n, ok, err := Lookup[int](loader, "max_handle")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || n != 9 {
		t.Fatalf("got %v %v", n, ok)
	}

	_, ok, err = Lookup[string](loader, "prelude")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal()
	}

	if First[string](loader, "terminators") != "" {
		t.Fatal()
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		First[string](loader, "max_handle")
	}()
}

func TestInvalidSchemaValue(t *testing.T) {
	loader := NewSourceLoader([]Source{
		{Name: "a.cue", Content: []byte(`terminators: "semicolon"`)},
	}, testSchema)
	_, _, err := Lookup[string](loader, "terminators")
	if err == nil || !strings.Contains(err.Error(), "a.cue") {
		t.Fatalf("got %v", err)
	}
}
