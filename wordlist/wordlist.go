// Package wordlist loads dictionaries of one word per line into a word index.
//
// A line holds a word, optionally followed by whitespace and an integer value:
//
//	cat
//	dog 12
//
// Blank lines are ignored. Files can be in any encoding the detector recognizes,
// and are decoded to UTF-8 before parsing.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/saintfish/chardet"
	"golang.org/x/exp/mmap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrMalformedLine is returned for a line that is not "word" or "word value".
var ErrMalformedLine = errors.New("malformed dictionary line")

// sniffLen is how much of a file the charset detector looks at.
const sniffLen = 64 * 1024

const bom = "\ufeff"

// Inserter receives the entries of a word list. *radix.Tree implements it.
type Inserter interface {
	Add(word string)
	Insert(word string, value int)
}

// Stats describes a loaded word list.
type Stats struct {
	Words    int
	Lines    int
	Bytes    int64
	Encoding string
}

type options struct {
	encoding string
	log      zerolog.Logger
}

// Option configures Load.
type Option func(o *options)

// WithEncoding skips detection and decodes the file with the named encoding, using
// the WHATWG encoding names ("utf-8", "utf-16le", "iso-8859-1", ...).
func WithEncoding(name string) Option {
	return func(o *options) {
		o.encoding = name
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Load reads the word list at path into the inserter.
func Load(path string, into Inserter, opts ...Option) (Stats, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	r, err := mmap.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("opening word list: %w", err)
	}
	defer r.Close()

	name := o.encoding
	if name == "" {
		name = detect(r, o.log)
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return Stats{}, fmt.Errorf("word list %s: unsupported encoding %q: %w", path, name, err)
	}
	canonical, _ := htmlindex.Name(enc)

	o.log.Debug().
		Str("path", path).
		Str("encoding", canonical).
		Int("bytes", r.Len()).
		Msg("Loading word list")

	stats, err := Read(decoder(enc, io.NewSectionReader(r, 0, int64(r.Len()))), into)
	stats.Bytes = int64(r.Len())
	stats.Encoding = canonical
	if err != nil {
		return stats, fmt.Errorf("word list %s: %w", path, err)
	}
	return stats, nil
}

func decoder(enc encoding.Encoding, r io.Reader) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}

// detect guesses the charset from the start of the file, falling back to UTF-8.
func detect(r io.ReaderAt, log zerolog.Logger) string {
	sample := make([]byte, sniffLen)
	n, err := r.ReadAt(sample, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Err(err).Msg("Could not read word list sample, assuming UTF-8")
		return "utf-8"
	}
	if n == 0 {
		return "utf-8"
	}

	result, err := chardet.NewTextDetector().DetectBest(sample[:n])
	if err != nil {
		log.Warn().Err(err).Msg("Charset detection failed, assuming UTF-8")
		return "utf-8"
	}

	log.Debug().
		Str("charset", result.Charset).
		Int("confidence", result.Confidence).
		Msg("Detected word list charset")

	if _, err := htmlindex.Get(result.Charset); err != nil {
		log.Warn().Str("charset", result.Charset).Msg("Unsupported charset, assuming UTF-8")
		return "utf-8"
	}
	return result.Charset
}

// Read parses UTF-8 word list lines from r into the inserter.
func Read(r io.Reader, into Inserter) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if stats.Lines == 1 {
			line = strings.TrimPrefix(line, bom)
		}

		fields := strings.Fields(line)
		switch len(fields) {
		case 0:
			continue
		case 1:
			into.Add(fields[0])
		case 2:
			value, err := strconv.Atoi(fields[1])
			if err != nil {
				return stats, fmt.Errorf("line %d: %w: invalid value %q", stats.Lines, ErrMalformedLine, fields[1])
			}
			into.Insert(fields[0], value)
		default:
			return stats, fmt.Errorf("line %d: %w: %q", stats.Lines, ErrMalformedLine, line)
		}
		stats.Words++
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading word list: %w", err)
	}
	return stats, nil
}
