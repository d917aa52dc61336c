// Package dump loads a saved HTML page into memory as UTF-8 text.
package dump

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when the dump is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Read loads the whole file at path. The file handle is released on every
// return path.
func Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening dump: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// newlines folds CRLF and lone CR line endings into LF.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Decode reads r to completion, checks that it decodes as UTF-8 and
// folds line endings to "\n", so sizes count a CRLF as one character.
func Decode(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading dump: %w", err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("decoding dump at byte %d: %w", invalidOffset(data), ErrInvalidUTF8)
	}

	return newlines.Replace(string(data)), nil
}

// invalidOffset returns the byte offset of the first invalid sequence.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
