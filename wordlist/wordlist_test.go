package wordlist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milden6/radix"
	"github.com/milden6/radix/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

type entry struct {
	word     string
	value    int
	hasValue bool
}

type recorder struct {
	entries []entry
}

func (r *recorder) Add(word string) {
	r.entries = append(r.entries, entry{word: word})
}

func (r *recorder) Insert(word string, value int) {
	r.entries = append(r.entries, entry{word: word, value: value, hasValue: true})
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRead(t *testing.T) {
	input := "\ufeffcat\r\n\n  dog 12\r\nDon't\t-3\n   \nzebra"

	var rec recorder
	stats, err := wordlist.Read(strings.NewReader(input), &rec)
	require.NoError(t, err)

	assert.Equal(t, []entry{
		{word: "cat"},
		{word: "dog", value: 12, hasValue: true},
		{word: "Don't", value: -3, hasValue: true},
		{word: "zebra"},
	}, rec.entries)
	assert.Equal(t, 4, stats.Words)
	assert.Equal(t, 6, stats.Lines)
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"too many fields", "cat\nice cream 3\n", "line 2"},
		{"bad value", "cat 1\ndog many\n", "line 2"},
		{"value overflow", "cat 99999999999999999999999\n", "line 1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var rec recorder
			_, err := wordlist.Read(strings.NewReader(test.input), &rec)
			require.ErrorIs(t, err, wordlist.ErrMalformedLine)
			assert.Contains(t, err.Error(), test.line)
		})
	}
}

func TestLoadIntoTree(t *testing.T) {
	path := writeFile(t, "en.txt", []byte("what\nis\nlove\nbaby 2\n"))

	tree := radix.New()
	stats, err := wordlist.Load(path, tree)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Words)
	assert.Equal(t, int64(20), stats.Bytes)
	assert.NotEmpty(t, stats.Encoding)
	assert.True(t, tree.Exists("love"))

	value, ok := tree.Value("baby")
	assert.True(t, ok)
	assert.Equal(t, 2, value)
}

func TestLoadDetectsUTF16(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("café\nnaïve 7\n")
	require.NoError(t, err)
	path := writeFile(t, "utf16.txt", []byte(encoded))

	var rec recorder
	stats, err := wordlist.Load(path, &rec)
	require.NoError(t, err)

	assert.Equal(t, "utf-16le", stats.Encoding)
	assert.Equal(t, []entry{
		{word: "café"},
		{word: "naïve", value: 7, hasValue: true},
	}, rec.entries)
}

func TestLoadWithEncoding(t *testing.T) {
	path := writeFile(t, "latin1.txt", []byte("caf\xe9\nd\xe9j\xe0 2\n"))

	var rec recorder
	_, err := wordlist.Load(path, &rec, wordlist.WithEncoding("iso-8859-1"))
	require.NoError(t, err)

	assert.Equal(t, []entry{
		{word: "café"},
		{word: "déjà", value: 2, hasValue: true},
	}, rec.entries)
}

func TestLoadErrors(t *testing.T) {
	_, err := wordlist.Load(filepath.Join(t.TempDir(), "missing.txt"), &recorder{})
	assert.Error(t, err)

	path := writeFile(t, "en.txt", []byte("cat\n"))
	_, err = wordlist.Load(path, &recorder{}, wordlist.WithEncoding("klingon"))
	assert.ErrorContains(t, err, "unsupported encoding")

	bad := writeFile(t, "bad.txt", []byte("cat\ndog x\n"))
	_, err = wordlist.Load(bad, &recorder{}, wordlist.WithEncoding("utf-8"))
	assert.ErrorIs(t, err, wordlist.ErrMalformedLine)
	assert.ErrorContains(t, err, bad)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	var rec recorder
	stats, err := wordlist.Load(path, &rec)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Words)
	assert.Empty(t, rec.entries)
}
