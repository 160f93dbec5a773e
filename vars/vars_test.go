package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if FirstNonZero(0, 0, 3, 4) != 3 {
		t.Fatal()
	}
	if FirstNonZero("", "") != "" {
		t.Fatal()
	}
}

func TestStrToBool(t *testing.T) {
	for str, want := range map[string]bool{
		"true": true,
		"Y":    true,
		" on ": true,
		"1":    true,
		"no":   false,
		"0":    false,
		"foo":  false,
	} {
		if StrToBool(str) != want {
			t.Fatalf("%q", str)
		}
	}
}
