// Copyright 2025 The WordRank Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordrank CLI.

wordrank ranks dictionary words as opening guesses for Wordle-style games.
Each word of the requested length is scored by summing the English letter
frequency weights of its distinct letters, so a word covering many common
letters ranks high while a repeated letter earns nothing extra.

# Usage

Rank five letter words from the system dictionary:

	wordrank

Use another word list and length:

	wordrank -w ./words.txt -l 6

Output goes to stdout, best first, one word per line:

	206.51: arise
	206.51: raise
	...

Piping into head is fine; wordrank stops quietly once the reader exits.

	wordrank | head -20

# Configuration

Defaults can be kept in a TOML file and passed with -config. Flags given on
the command line override the file:

	[rank]
	word_list = "/usr/share/dict/words"
	length = 5
	strict = false

	[log]
	debug = false

-write-config dumps the effective configuration to a file and exits.

# Command Line Flags

	-w, -word-list string
	    Word list, one word per line (default "/usr/share/dict/words")
	-l, -length int
	    Exact word length to rank (default 5)
	-strict
	    Abort when an eligible word has a letter outside a-z
	-config string
	    TOML config file
	-write-config string
	    Write the effective config to this path and exit
	-d  Toggle debug logging on stderr
	-version
	    Show current version
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/bastiangx/wordrank/pkg/dictionary"
	"github.com/bastiangx/wordrank/pkg/frequency"
	"github.com/bastiangx/wordrank/pkg/rank"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordrank"
	gh      = "https://github.com/bastiangx/wordrank"
)

// sigHandler is a simple handler for OS signals to exit normally.
// SIGPIPE is ignored so a closed stdout shows up as a write error.
func sigHandler() {
	signal.Ignore(syscall.SIGPIPE)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		os.Exit(0)
	}()
}

// cliFlags holds the parsed command line.
type cliFlags struct {
	set         *flag.FlagSet
	configPath  string
	writeConfig string
	showVersion bool
}

// newFlags declares every flag on a fresh FlagSet, with defaults taken from
// defaults. Rank and log flags only reach a config through applyFlags.
func newFlags(name string, defaults *config.Config) *cliFlags {
	f := &cliFlags{set: flag.NewFlagSet(name, flag.ExitOnError)}
	fs := f.set

	var wordList string
	var length int
	fs.StringVar(&wordList, "word-list", defaults.Rank.WordList, "Word list, one word per line")
	fs.StringVar(&wordList, "w", defaults.Rank.WordList, "Shorthand for -word-list")
	fs.IntVar(&length, "length", defaults.Rank.Length, "Exact word length to rank")
	fs.IntVar(&length, "l", defaults.Rank.Length, "Shorthand for -length")
	fs.Bool("strict", defaults.Rank.Strict, "Abort when an eligible word has a letter outside a-z")
	fs.Bool("d", defaults.Log.Debug, "Toggle debug mode")
	fs.StringVar(&f.configPath, "config", "", "TOML config file")
	fs.StringVar(&f.writeConfig, "write-config", "", "Write the effective config to this path and exit")
	fs.BoolVar(&f.showVersion, "version", false, "Show current version")
	return f
}

// applyFlags copies every flag set explicitly on fs into cfg, so the command
// line wins over the config file and the file wins over defaults.
func applyFlags(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		value := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "word-list", "w":
			cfg.Rank.WordList = value.(string)
		case "length", "l":
			cfg.Rank.Length = value.(int)
		case "strict":
			cfg.Rank.Strict = value.(bool)
		case "d":
			cfg.Log.Debug = value.(bool)
		}
	})
}

func main() {
	sigHandler()

	flags := newFlags(AppName, config.DefaultConfig())
	flags.set.Parse(os.Args[1:])

	if flags.showVersion {
		printVersion()
		os.Exit(0)
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadConfig(flags.configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	applyFlags(cfg, flags.set)

	if cfg.Log.Debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if flags.writeConfig != "" {
		if err := config.SaveConfig(cfg, flags.writeConfig); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Infof("Wrote config to %s", flags.writeConfig)
		return
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// run opens the word list and streams the ranking to stdout.
func run(cfg *config.Config) error {
	log.Debug("Ranking",
		"wordList", cfg.Rank.WordList,
		"length", cfg.Rank.Length,
		"strict", cfg.Rank.Strict)

	src, err := dictionary.Open(cfg.Rank.WordList)
	if err != nil {
		return err
	}
	defer src.Close()

	ranker := rank.NewRanker(frequency.English(), cfg.Rank.Length, cfg.Rank.Strict)
	ranker.SetLogger(logger.New(AppName))

	summary, err := ranker.Run(src, os.Stdout)
	if err != nil {
		if errors.Is(err, frequency.ErrNoWeight) {
			return fmt.Errorf("strict mode: %w", err)
		}
		return err
	}

	stats := src.Stats()
	log.Debug("Done",
		"lines", stats.Lines,
		"undecodable", stats.Undecodable,
		"readErrors", stats.ReadErrors,
		"eligible", summary.Eligible,
		"rejected", summary.Rejected,
		"written", summary.Written,
		"outputClosed", summary.SinkClosed)
	return nil
}

// printVersion shows a short styled banner on stderr.
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordRank ] Ranks opening guesses by letter coverage")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
