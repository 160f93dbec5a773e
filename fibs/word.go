package fibs

import (
	"fmt"
	"sync"
)

// Word is a prefix of the infinite Fibonacci word (OEIS A003849).
// Basis vectors are enumerated by Fibbinary numbers and Word[i] is the
// last bit of the i-th one.
type Word []uint8

// buildWord grows the word by the self-similar rule: the first fib(i)
// bits are copied to offset fib(i+1).
func buildWord(length int) (Word, error) {
	if length < 2 {
		return nil, fmt.Errorf("word length %d: %w", length, ErrResourceLimitExceeded)
	}
	word := make(Word, length)
	word[1] = 1
	for i := 2; i < MaxIndex-1; i++ {
		for j := 0; j < table[i]; j++ {
			if table[i+1]+j >= length {
				return nil, fmt.Errorf("initializing fibonacci word at %d: %w", table[i+1]+j, ErrResourceLimitExceeded)
			}
			word[table[i+1]+j] = word[j]
		}
	}
	return word, nil
}

var getWord = sync.OnceValues(func() (Word, error) {
	return buildWord(Len())
})

// GetWord returns the process-wide word, built on first use.
func GetWord() Word {
	word, err := getWord()
	if err != nil {
		panic(err)
	}
	return word
}

// Bit returns the i-th bit of the Fibonacci word.
func Bit(i int) (uint8, error) {
	word := GetWord()
	if i < 0 || i >= len(word) {
		return 0, fmt.Errorf("fibonacci word index %d out of [0, %d): %w", i, len(word), ErrResourceLimitExceeded)
	}
	return word[i], nil
}
