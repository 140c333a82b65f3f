/*
Package config manages the optional TOML config for wordrank.

Nothing is read unless a path is given explicitly, so a plain run depends
only on its flags and the word list.
*/
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/bastiangx/wordrank/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Rank RankConfig `toml:"rank"`
	Log  LogConfig  `toml:"log"`
}

// RankConfig has word list and ranking options.
type RankConfig struct {
	WordList string `toml:"word_list"`
	Length   int    `toml:"length"`
	Strict   bool   `toml:"strict"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Debug bool `toml:"debug"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Rank: RankConfig{
			WordList: dictionary.DefaultPath,
			Length:   dictionary.DefaultLength,
			Strict:   false,
		},
		Log: LogConfig{
			Debug: false,
		},
	}
}

// Validate rejects values that cannot produce a meaningful run.
func (c *Config) Validate() error {
	if c.Rank.WordList == "" {
		return fmt.Errorf("rank.word_list must not be empty")
	}
	if c.Rank.Length < 1 {
		return fmt.Errorf("rank.length must be at least 1, got %d", c.Rank.Length)
	}
	return nil
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults. A file that fails to decode is salvaged key by key, and a single
// warning lists what could not be used.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	config := DefaultConfig()

	if err := utils.DecodeTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath, err), nil
	}
	log.Debugf("Loaded config from: %s", utils.DisplayPath(configPath))
	return config, nil
}

// tryPartialParse keeps every well-typed, valid key and falls back to
// defaults for the rest.
func tryPartialParse(configPath string, decodeErr error) *Config {
	config := DefaultConfig()

	table, err := utils.DecodeTOMLTable(configPath)
	if err != nil {
		log.Warn("Config unreadable, using defaults", "path", configPath, "err", err)
		return config
	}

	var skipped []string
	if rank, ok := table.Table("rank"); ok {
		skipped = append(skipped, extractRankConfig(rank, &config.Rank)...)
	}
	if logSection, ok := table.Table("log"); ok {
		skipped = append(skipped, extractLogConfig(logSection, &config.Log)...)
	}
	log.Warn("Config partially applied",
		"path", configPath,
		"err", decodeErr,
		"skipped", strings.Join(skipped, ", "))
	return config
}

// extractRankConfig copies usable [rank] keys and returns the ones it skipped.
func extractRankConfig(data utils.TOMLTable, rank *RankConfig) (skipped []string) {
	if val, ok := data.String("word_list"); ok && val != "" {
		rank.WordList = val
	} else if data.Has("word_list") {
		skipped = append(skipped, "rank.word_list")
	}
	if val, ok := data.Int("length"); ok && val >= 1 {
		rank.Length = val
	} else if data.Has("length") {
		skipped = append(skipped, "rank.length")
	}
	if val, ok := data.Bool("strict"); ok {
		rank.Strict = val
	} else if data.Has("strict") {
		skipped = append(skipped, "rank.strict")
	}
	return skipped
}

func extractLogConfig(data utils.TOMLTable, l *LogConfig) (skipped []string) {
	if val, ok := data.Bool("debug"); ok {
		l.Debug = val
	} else if data.Has("debug") {
		skipped = append(skipped, "log.debug")
	}
	return skipped
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.EncodeTOMLFile(configPath, config)
}
