// Command anagrams prints the dictionary words that can be spelled with some of
// the letters of its first argument.
//
//	anagrams optimizationmatters 3 3
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/milden6/radix"
	"github.com/milden6/radix/internal/config"
	"github.com/milden6/radix/wordlist"
	"github.com/rs/zerolog"
	"github.com/urfave/cli"
)

const version = "0.1.0"

var errUsage = errors.New("invalid arguments")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "anagrams: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "anagrams"
	app.Usage = "Find the dictionary words that can be spelled with some of the given letters"
	app.ArgsUsage = "<letters> [max length] [min length]"
	app.Version = version
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Usage:  "Path to a YAML config file",
			EnvVar: "RADIX_CONFIG",
		},
		cli.StringFlag{
			Name:  "dictionary, d",
			Usage: "Word list with one word per line (default: res/en.txt)",
		},
		cli.StringFlag{
			Name:  "encoding",
			Usage: "Encoding of the word list, detected when not set",
		},
		cli.IntFlag{
			Name:  "limit",
			Usage: "Stop after this many words, 0 for no limit",
		},
		cli.BoolFlag{
			Name:  "no-fold",
			Usage: "Match letters case sensitively",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "One of trace, debug, info, warn, error (default: info)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = run
	return app
}

func printUsageHint(w io.Writer) {
	fmt.Fprintln(w, "Usage:   anagrams [options] <input word> [max length (default: 20)] [min length (default: 1)]")
	fmt.Fprintln(w, `Example: anagrams "optimizationmatters" 3 3`)
	fmt.Fprintln(w, `Example: anagrams "optimizationmatters" 19 1`)
	fmt.Fprintln(w, `Example: anagrams "optimizationmatters" 3`)
}

// applyArgs layers the flags and positional arguments over the loaded config and
// returns the letters to search with.
func applyArgs(c *cli.Context, cfg *config.Config) (string, error) {
	args := c.Args()
	if len(args) == 0 || len(args) > 3 {
		return "", errUsage
	}

	if len(args) > 1 {
		maxLen, err := strconv.Atoi(args[1])
		if err != nil {
			return "", fmt.Errorf("%w: max length %q is not a number", errUsage, args[1])
		}
		cfg.Search.MaxLength = maxLen
	}
	if len(args) > 2 {
		minLen, err := strconv.Atoi(args[2])
		if err != nil {
			return "", fmt.Errorf("%w: min length %q is not a number", errUsage, args[2])
		}
		cfg.Search.MinLength = minLen
	}

	if path := c.String("dictionary"); path != "" {
		cfg.Dictionary.Path = path
	}
	if encoding := c.String("encoding"); encoding != "" {
		cfg.Dictionary.Encoding = encoding
	}
	if c.IsSet("limit") {
		cfg.Search.Limit = c.Int("limit")
	}
	if c.Bool("no-fold") {
		cfg.Search.FoldCase = false
	}
	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if c.Bool("debug") {
		cfg.Log.Level = zerolog.LevelDebugValue
	}

	return args[0], nil
}

func run(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	letters, err := applyArgs(c, cfg)
	if err != nil {
		printUsageHint(c.App.ErrWriter)
		return err
	}

	if err := cfg.Validate(); err != nil {
		printUsageHint(c.App.ErrWriter)
		if cfg.Search.MaxLength < cfg.Search.MinLength {
			fmt.Fprintln(c.App.ErrWriter, "WARNING: the max value needs to be bigger than the min value!")
		}
		return err
	}

	level, _ := cfg.Log.ParseLevel()
	l := zerolog.New(zerolog.ConsoleWriter{Out: c.App.ErrWriter}).
		Level(level).
		With().Timestamp().
		Logger()

	treeOpts := []radix.Option{radix.WithLogger(l)}
	if cfg.Search.FoldCase {
		treeOpts = append(treeOpts, radix.WithFolding(radix.CaseFolding()))
	}
	tree := radix.New(treeOpts...)

	loadOpts := []wordlist.Option{wordlist.WithLogger(l)}
	if cfg.Dictionary.Encoding != "" {
		loadOpts = append(loadOpts, wordlist.WithEncoding(cfg.Dictionary.Encoding))
	}

	loadStart := time.Now()
	stats, err := wordlist.Load(cfg.Dictionary.Path, tree, loadOpts...)
	if err != nil {
		return fmt.Errorf("could not load dictionary: %w", err)
	}
	loadDuration := time.Since(loadStart)

	l.Info().
		Str("path", cfg.Dictionary.Path).
		Str("encoding", stats.Encoding).
		Str("words", humanize.Comma(int64(stats.Words))).
		Str("size", humanize.Bytes(uint64(stats.Bytes))).
		Int("nodes", tree.NumNodes()).
		Dur("took", loadDuration).
		Msg("Loaded dictionary")

	queryStart := time.Now()
	res := tree.Search(radix.Query{
		Letters: letters,
		MinLen:  cfg.Search.MinLength,
		MaxLen:  cfg.Search.MaxLength,
		Limit:   cfg.Search.Limit,
	})
	queryDuration := time.Since(queryStart)

	w := c.App.Writer
	for _, match := range res.Matches {
		fmt.Fprintln(w, match.Word)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Done!")
	fmt.Fprintf(w, "Found %s words from %s candidates\n",
		humanize.Comma(int64(len(res.Matches))), humanize.Comma(int64(res.Expanded)))
	fmt.Fprintf(w, "Reading   the file  took %s\n", loadDuration)
	fmt.Fprintf(w, "Executing the query took %s\n", queryDuration)

	return nil
}
