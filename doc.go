/*
Package radix is a prefix tree of words that can answer anagram queries: given a
bag of letters and a length window, it finds every stored word that can be spelled
using some of those letters, each letter used at most as many times as it appears.

Every node in the tree records the shortest and the longest distance from itself
to a word ending below it. The anagram search uses these bounds to avoid walking
into branches that cannot produce a word of an acceptable length, which is what
keeps queries such as "optimizationmatters" over a full English dictionary fast.

In general, to use it you first create a tree using radix.New(). You then add words
to it with Add, or with Insert when each word carries an integer value. Unlike a
DAWG, words may be added in any order, and adding a word twice just replaces its
value.

After all the words are added you can run queries:

	tree := radix.New(radix.WithFolding(radix.CaseFolding()))
	tree.Add("Hurt")
	tree.Add("what")
	words := tree.Anagrams("tahwrtuh", 20, 1) // [Hurt what]

Anagrams returns words ordered by length and then alphabetically by key. Search
exposes the same traversal with a result limit and the stored values.

The tree is not safe for concurrent mutation. Once built, any number of goroutines
may query it at the same time, since queries never modify it.

The wordlist subpackage loads dictionaries in the one word per line format used by
the anagrams command.
*/
package radix
