package radix

import (
	"container/heap"
)

// Query describes an anagram search.
type Query struct {
	// Letters available to spell words with. Each rune may be used as many times as
	// it occurs.
	Letters string

	// MinLen and MaxLen bound the key length of the words found, inclusive.
	MinLen int
	MaxLen int

	// Limit stops the search after that many matches. Zero means no limit.
	Limit int
}

// Result holds the words found by Search, shortest first and then ordered by key.
type Result struct {
	Matches []FindResult

	// Expanded is the number of partial matches taken from the frontier.
	Expanded int
}

// Words returns the matched words.
func (r Result) Words() []string {
	words := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		words[i] = m.Word
	}
	return words
}

// partialMatch is a node reached by spelling key with letters from the query.
type partialMatch struct {
	node      int
	remaining Multiset
	key       string
	depth     int
}

// frontier is a min-heap of partial matches, shallowest first, then by key.
type frontier []*partialMatch

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].depth != f[j].depth {
		return f[i].depth < f[j].depth
	}
	return f[i].key < f[j].key
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*partialMatch))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	pm := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return pm
}

// Anagrams returns every word whose key can be spelled with a subset of letters
// and whose length is within [minLen, maxLen], shortest first and then by key.
// It returns nothing when maxLen < minLen.
func (t *Tree) Anagrams(letters string, maxLen, minLen int) []string {
	return t.Search(Query{Letters: letters, MinLen: minLen, MaxLen: maxLen}).Words()
}

// Search runs an anagram query against the tree.
func (t *Tree) Search(q Query) Result {
	var res Result

	if q.MaxLen < q.MinLen {
		t.log.Debug().Int("min", q.MinLen).Int("max", q.MaxLen).Msg("Empty length range, skipping search")
		return res
	}

	pq := &frontier{{
		node:      rootNode,
		remaining: NewMultiset(t.key(q.Letters)),
	}}

	for pq.Len() > 0 {
		pm := heap.Pop(pq).(*partialMatch)
		res.Expanded++
		node := &t.nodes[pm.node]

		// 1) have we reached a word that is long enough?
		if pm.depth >= q.MinLen && pm.depth <= q.MaxLen && node.final {
			res.Matches = append(res.Matches, node.result)
			if q.Limit > 0 && len(res.Matches) >= q.Limit {
				break
			}
		}

		// 2) no room for another letter
		if pm.depth >= q.MaxLen {
			continue
		}

		// 3) step into every child we have a letter for, once per distinct letter
		depth := pm.depth + 1
		for _, s := range pm.remaining.symbols {
			next, ok := t.child(pm.node, s.ch)
			if !ok {
				continue
			}

			child := &t.nodes[next]
			if child.maxDepth < q.MinLen-depth || child.minDepth > q.MaxLen-depth {
				// every word below is too short or too long
				continue
			}

			heap.Push(pq, &partialMatch{
				node:      next,
				remaining: pm.remaining.Remove(s.ch),
				key:       pm.key + string(s.ch),
				depth:     depth,
			})
		}
	}

	t.log.Debug().
		Str("letters", q.Letters).
		Int("min", q.MinLen).
		Int("max", q.MaxLen).
		Int("matches", len(res.Matches)).
		Int("expanded", res.Expanded).
		Msg("Anagram search finished")

	return res
}
