package radix_test

import (
	"strings"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/milden6/radix"
)

func TestRemoveAt(t *testing.T) {
	alphabet := "abcdefghijklmnopqrstuvwxyz"

	for i := 0; i < len(alphabet); i++ {
		removed := alphabet[i : i+1]
		got := radix.RemoveAt(alphabet, i)

		if strings.Contains(got, removed) {
			t.Errorf("RemoveAt(%q, %d) = %q still contains %q", alphabet, i, got, removed)
		}
		if len(got) != len(alphabet)-1 {
			t.Errorf("RemoveAt(%q, %d) has length %d, want %d", alphabet, i, len(got), len(alphabet)-1)
		}
	}

	if got := radix.RemoveAt("héllo", 1); got != "hllo" {
		t.Errorf("RemoveAt(%q, 1) = %q, want %q", "héllo", got, "hllo")
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("RemoveAt() did not panic for an index out of range")
		}
	}()
	radix.RemoveAt("abc", 3)
}

func TestMultiset(t *testing.T) {
	m := radix.NewMultiset("mooore")

	if got := m.Len(); got != 6 {
		t.Errorf("Len() = %d, want 6", got)
	}
	if got := m.Count('o'); got != 3 {
		t.Errorf("Count('o') = %d, want 3", got)
	}
	if got := m.Count('x'); got != 0 {
		t.Errorf("Count('x') = %d, want 0", got)
	}
	if diff := gocmp.Diff([]rune{'e', 'm', 'o', 'r'}, m.Symbols()); diff != "" {
		t.Errorf("Symbols() diff (-want +got):\n%s", diff)
	}
	if got := m.String(); got != "emooor" {
		t.Errorf("String() = %q, want %q", got, "emooor")
	}
}

func TestMultisetRemove(t *testing.T) {
	m := radix.NewMultiset("noon")

	once := m.Remove('o')
	if got := once.String(); got != "nno" {
		t.Errorf("Remove('o') = %q, want %q", got, "nno")
	}
	if got := m.String(); got != "nnoo" {
		t.Errorf("Remove() modified its receiver: %q", got)
	}

	twice := once.Remove('o')
	if got := twice.Count('o'); got != 0 {
		t.Errorf("Count('o') after removing both = %d", got)
	}
	if diff := gocmp.Diff([]rune{'n'}, twice.Symbols()); diff != "" {
		t.Errorf("Symbols() diff (-want +got):\n%s", diff)
	}
	if got := twice.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestMultisetRemoveAbsentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Remove() of an absent symbol did not panic")
		}
	}()
	radix.NewMultiset("cat").Remove('z')
}

func TestMultisetIncludes(t *testing.T) {
	letters := radix.NewMultiset("abcdefghijklmnopqrstuvwxyz'")

	tests := map[string]bool{
		"don't":  true,
		"what":   true,
		"baby":   false,
		"mooore": false,
		"":       true,
	}

	for word, want := range tests {
		if got := letters.Includes(radix.NewMultiset(word)); got != want {
			t.Errorf("Includes(%q) = %v, want %v", word, got, want)
		}
	}
}
