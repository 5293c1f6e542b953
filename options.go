package radix

import (
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
)

// Folder maps a word to the key it is stored under. The same folder is applied to
// the letters of a query, so both sides agree on the alphabet.
type Folder func(word string) string

// CaseFolding returns a Folder that applies Unicode case folding, so that "Cat"
// and "cat" share a path and "CAT" can be spelled from "tac".
func CaseFolding() Folder {
	return func(word string) string {
		// cases.Caser keeps state between calls, so each call gets its own.
		return cases.Fold().String(word)
	}
}

// Option configures a Tree.
type Option func(t *Tree)

// WithFolding sets the key normalization used by insertion and lookups. By default
// keys are the words themselves.
func WithFolding(fold Folder) Option {
	return func(t *Tree) {
		t.fold = fold
	}
}

// WithLogger sets the logger used for debug output. By default nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Tree) {
		t.log = l
	}
}
