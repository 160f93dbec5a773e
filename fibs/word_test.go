package fibs

import (
	"errors"
	"fmt"
	"testing"
)

func TestWordPrefix(t *testing.T) {
	word := GetWord()
	if str := fmt.Sprint(word[:20]); str != "[0 1 0 0 1 0 1 0 0 1 0 0 1 0 1 0 0 1 0 1]" {
		t.Fatalf("got %s", str)
	}
	if len(word) != Len() {
		t.Fatalf("got %d", len(word))
	}
}

func TestWordNoAdjacentOnes(t *testing.T) {
	word := GetWord()
	for i := 0; i+1 < len(word); i++ {
		if word[i] == 1 && word[i+1] == 1 {
			t.Fatalf("adjacent ones at %d", i)
		}
	}
}

func TestWordOnesCount(t *testing.T) {
	// the first fib(k) basis vectors contain fib(k-2) ending in 1
	word := GetWord()
	for k := 2; k <= MaxIndex; k++ {
		ones := 0
		for _, b := range word[:MustFib(k)] {
			ones += int(b)
		}
		if ones != MustFib(k-2) {
			t.Fatalf("k=%d: got %d ones", k, ones)
		}
	}
}

func TestBit(t *testing.T) {
	b, err := Bit(4)
	if err != nil {
		t.Fatal(err)
	}
	if b != 1 {
		t.Fatalf("got %d", b)
	}
	_, err = Bit(Len())
	if !errors.Is(err, ErrResourceLimitExceeded) {
		t.Fatalf("got %v", err)
	}
	_, err = Bit(-1)
	if !errors.Is(err, ErrResourceLimitExceeded) {
		t.Fatalf("got %v", err)
	}
}

func TestBuildWordTooShort(t *testing.T) {
	_, err := buildWord(100)
	if !errors.Is(err, ErrResourceLimitExceeded) {
		t.Fatalf("got %v", err)
	}
	_, err = buildWord(1)
	if !errors.Is(err, ErrResourceLimitExceeded) {
		t.Fatalf("got %v", err)
	}
}
