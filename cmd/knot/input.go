package main

import (
	"errors"
	"io"
	"strings"
)

// readTangle reads lines up to and including the first one holding the
// sentinel, or to end of input. It reads one byte at a time so whatever
// follows the sentinel line stays in r for the tap REPL.
func readTangle(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	sentinel := false
	for {
		n, err := r.Read(buf)
		if n > 0 {
			sb.WriteByte(buf[0])
			switch buf[0] {
			case '.':
				sentinel = true
			case '\n':
				if sentinel {
					return sb.String(), nil
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	text := sb.String()
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}
