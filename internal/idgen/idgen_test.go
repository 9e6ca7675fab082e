package idgen

import (
	"strings"
	"testing"
)

func TestSession(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := Session()
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(id, SessionPrefix) || len(id) != len(SessionPrefix)+Length {
			t.Fatalf("malformed id %q", id)
		}
		for _, r := range strings.TrimPrefix(id, SessionPrefix) {
			if !strings.ContainsRune(Alphabet, r) {
				t.Fatalf("id %q has %q outside the alphabet", id, r)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
