// internal/words/words.go
//
// Word rules shared by the client core, the local checker and the verdict
// service.
//
// Responsibilities:
//   - Normalize raw input into the canonical form (trimmed, uppercase).
//   - Validate that a word is exactly Length letters A–Z.
//   - Compare a guess against a target column by column.
//
// Constraints:
//   • Words are ASCII only; anything else is rejected rather than folded.
//   • Check does not do Wordle's "present" pass: a verdict only says whether
//     each column matches.

package words

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the number of letters in every guess and target.
const Length = 5

// ErrInvalid is returned by Parse for anything that is not a Length-letter word.
var ErrInvalid = errors.New("words: invalid word")

// Normalize trims whitespace and uppercases s. It does not validate.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Valid reports whether w is exactly Length uppercase letters A–Z.
func Valid(w string) bool {
	if len(w) != Length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if !IsUpper(w[i]) {
			return false
		}
	}
	return true
}

// Parse normalizes s and returns it if it is a valid word.
func Parse(s string) (string, error) {
	w := Normalize(s)
	if !Valid(w) {
		return "", fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return w, nil
}

// IsLetter reports whether c is an ASCII letter of either case.
func IsLetter(c byte) bool {
	return IsUpper(c) || (c >= 'a' && c <= 'z')
}

// IsUpper reports whether c is an uppercase ASCII letter.
func IsUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// Check compares guess against target position by position.
// Both must already be valid words; columns past a short input stay false.
func Check(target, guess string) [Length]bool {
	var out [Length]bool
	for i := 0; i < Length && i < len(target) && i < len(guess); i++ {
		out[i] = target[i] == guess[i]
	}
	return out
}

// AllCorrect reports whether every column in c is true.
func AllCorrect(c [Length]bool) bool {
	for _, ok := range c {
		if !ok {
			return false
		}
	}
	return true
}
