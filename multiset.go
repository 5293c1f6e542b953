package radix

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type symbolCount struct {
	ch    rune
	count int
}

// Multiset is a bag of runes. The zero value is empty. Multisets are values:
// Remove returns a new one and leaves the receiver untouched.
type Multiset struct {
	// sorted by ch, every count > 0
	symbols []symbolCount
	size    int
}

// NewMultiset counts the runes of s.
func NewMultiset(s string) Multiset {
	runes := []rune(s)
	slices.Sort(runes)

	var m Multiset
	for _, r := range runes {
		if n := len(m.symbols); n > 0 && m.symbols[n-1].ch == r {
			m.symbols[n-1].count++
		} else {
			m.symbols = append(m.symbols, symbolCount{ch: r, count: 1})
		}
	}
	m.size = len(runes)
	return m
}

// Len returns the number of runes in the multiset, counting repeats.
func (m Multiset) Len() int {
	return m.size
}

func (m Multiset) find(r rune) (int, bool) {
	return slices.BinarySearchFunc(m.symbols, r, func(s symbolCount, r rune) int {
		return cmp.Compare(s.ch, r)
	})
}

// Count returns how many times r occurs.
func (m Multiset) Count(r rune) int {
	i, ok := m.find(r)
	if !ok {
		return 0
	}
	return m.symbols[i].count
}

// Symbols returns the distinct runes in ascending order.
func (m Multiset) Symbols() []rune {
	out := make([]rune, len(m.symbols))
	for i, s := range m.symbols {
		out[i] = s.ch
	}
	return out
}

// Remove returns a copy of m with one occurrence of r taken out. It panics if r is
// not in m.
func (m Multiset) Remove(r rune) Multiset {
	i, ok := m.find(r)
	if !ok {
		panic(fmt.Errorf("radix: Multiset.Remove(%q): symbol not present in %q", r, m.String()))
	}

	symbols := slices.Clone(m.symbols)
	if symbols[i].count == 1 {
		symbols = slices.Delete(symbols, i, i+1)
	} else {
		symbols[i].count--
	}
	return Multiset{symbols: symbols, size: m.size - 1}
}

// Includes reports whether every rune of o occurs in m at least as often as in o.
func (m Multiset) Includes(o Multiset) bool {
	for _, s := range o.symbols {
		if m.Count(s.ch) < s.count {
			return false
		}
	}
	return true
}

// String returns the runes of m in sorted order.
func (m Multiset) String() string {
	var b strings.Builder
	for _, s := range m.symbols {
		for i := 0; i < s.count; i++ {
			b.WriteRune(s.ch)
		}
	}
	return b.String()
}

// RemoveAt returns s without the rune at index i. It panics if i is out of range.
func RemoveAt(s string, i int) string {
	runes := []rune(s)
	if i < 0 || i >= len(runes) {
		panic(fmt.Errorf("radix: RemoveAt(%q, %d): index out of range", s, i))
	}
	return string(slices.Delete(runes, i, i+1))
}
