package radix

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/rs/zerolog"
)

// FindResult is a word stored in the tree together with its optional value.
type FindResult struct {
	Word     string
	Value    int
	HasValue bool
}

type edge struct {
	ch   rune
	node int
}

type node struct {
	// sorted by ch
	edges  []edge
	final  bool
	result FindResult

	// distance to the nearest and farthest final node at or below this one
	minDepth int
	maxDepth int
}

// EnumFn is a method to enumerate. It receives the key leading to each node,
// whether a word ends there, and if so the stored word.
type EnumFn = func(key []rune, final bool, result FindResult) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// enumeration should continue below this depth or to stop altogether
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

const rootNode = 0

// noFinal is the minDepth of a node that has no final node below it.
const noFinal = math.MaxInt

// Tree is a prefix tree of words annotated with subtree depth bounds.
type Tree struct {
	nodes    []node
	numAdded int
	fold     Folder
	log      zerolog.Logger
}

// New creates an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.newNode()
	return t
}

func (t *Tree) key(word string) string {
	if t.fold == nil {
		return word
	}
	return t.fold(word)
}

// Add adds a word without a value.
func (t *Tree) Add(word string) {
	t.insert(word, FindResult{Word: word})
}

// Insert adds a word with an associated value. Inserting a word that is already
// present replaces its value.
func (t *Tree) Insert(word string, value int) {
	t.insert(word, FindResult{Word: word, Value: value, HasValue: true})
}

func (t *Tree) insert(word string, result FindResult) {
	key := t.key(word)

	// remember every node on the way down so the bounds can be fixed on the way up
	path := make([]int, 1, len(key)+1)
	path[0] = rootNode

	node := rootNode
	for _, letter := range key {
		next, ok := t.child(node, letter)
		if !ok {
			next = t.newNode()
			t.addChild(node, letter, next)
		}
		node = next
		path = append(path, node)
	}

	final := &t.nodes[node]
	if !final.final {
		t.numAdded++
	}
	final.final = true
	final.result = result

	for depth := 0; depth < len(path); depth++ {
		n := &t.nodes[path[len(path)-1-depth]]
		n.minDepth = min(n.minDepth, depth)
		n.maxDepth = max(n.maxDepth, depth)
	}
}

func (t *Tree) newNode() int {
	t.nodes = append(t.nodes, node{minDepth: noFinal})
	return len(t.nodes) - 1
}

func compareEdge(e edge, ch rune) int {
	return cmp.Compare(e.ch, ch)
}

func (t *Tree) child(parent int, ch rune) (int, bool) {
	edges := t.nodes[parent].edges
	i, ok := slices.BinarySearchFunc(edges, ch, compareEdge)
	if !ok {
		return 0, false
	}
	return edges[i].node, true
}

func (t *Tree) addChild(parent int, ch rune, child int) {
	n := &t.nodes[parent]
	i, ok := slices.BinarySearchFunc(n.edges, ch, compareEdge)
	if ok {
		panic(fmt.Errorf("radix: node %d already has an edge for %q", parent, ch))
	}
	n.edges = slices.Insert(n.edges, i, edge{ch: ch, node: child})
}

// walk follows key from the root. It returns the last node reached and how many
// bytes of key were consumed to get there.
func (t *Tree) walk(key string) (node int, consumed int, ok bool) {
	node = rootNode
	for pos, letter := range key {
		next, found := t.child(node, letter)
		if !found {
			return node, pos, false
		}
		node = next
	}
	return node, len(key), true
}

// Exists returns true if the word was added. A prefix of an added word only
// exists if it was added itself.
func (t *Tree) Exists(word string) bool {
	node, _, ok := t.walk(t.key(word))
	return ok && t.nodes[node].final
}

// Lookup returns the word stored under the same key as word, along with its value.
// The stored word is the text that was added, which may differ from word when the
// tree folds keys.
func (t *Tree) Lookup(word string) (FindResult, bool) {
	node, _, ok := t.walk(t.key(word))
	if !ok || !t.nodes[node].final {
		return FindResult{}, false
	}
	return t.nodes[node].result, true
}

// Value returns the value inserted with word. The second result is false when the
// word is absent or was added without a value.
func (t *Tree) Value(word string) (int, bool) {
	result, ok := t.Lookup(word)
	if !ok || !result.HasValue {
		return 0, false
	}
	return result.Value, true
}

// LongestPrefixMatch returns the longest prefix of the word's key that is a path in
// the tree, whether or not a word ends there.
func (t *Tree) LongestPrefixMatch(word string) string {
	key := t.key(word)
	_, consumed, _ := t.walk(key)
	return key[:consumed]
}

// FindAllPrefixesOf returns all words in the tree whose key is a prefix of the
// input's key, shortest first.
func (t *Tree) FindAllPrefixesOf(input string) []FindResult {
	var results []FindResult
	node := rootNode

	for _, letter := range t.key(input) {
		if t.nodes[node].final {
			results = append(results, t.nodes[node].result)
		}

		next, ok := t.child(node, letter)
		if !ok {
			return results
		}
		node = next
	}

	if t.nodes[node].final {
		results = append(results, t.nodes[node].result)
	}

	return results
}

// NumAdded returns the number of distinct words added
func (t *Tree) NumAdded() int {
	return t.numAdded
}

// NumNodes returns the number of nodes in the tree, including the root.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// NumEdges returns the number of edges in the tree.
func (t *Tree) NumEdges() int {
	return len(t.nodes) - 1
}

// Enumerate will call the given method for every node in the tree, in key order.
// Return Continue to continue enumeration, Skip to skip this branch, or Stop to stop enumeration.
func (t *Tree) Enumerate(fn EnumFn) {
	t.enumerate(rootNode, nil, fn)
}

func (t *Tree) enumerate(address int, runes []rune, fn EnumFn) EnumerationResult {
	node := &t.nodes[address]

	result := fn(runes, node.final, node.result)
	if result != Continue {
		return result
	}

	l := len(runes)
	runes = append(runes, 0)

	for _, edge := range node.edges {
		runes[l] = edge.ch
		result = t.enumerate(edge.node, runes, fn)
		if result == Stop {
			break
		}
	}

	return result
}

// Print writes every node with its bounds and outgoing edges to w.
func (t *Tree) Print(w io.Writer) error {
	for id, node := range t.nodes {
		minDepth := "-"
		if node.minDepth != noFinal {
			minDepth = fmt.Sprint(node.minDepth)
		}

		word := ""
		if node.final {
			word = fmt.Sprintf(" %q", node.result.Word)
		}

		if _, err := fmt.Fprintf(w, "%d [%s,%d]%s\n", id, minDepth, node.maxDepth, word); err != nil {
			return err
		}
		for _, edge := range node.edges {
			if _, err := fmt.Fprintf(w, "  '%c' -> %d\n", edge.ch, edge.node); err != nil {
				return err
			}
		}
	}
	return nil
}
