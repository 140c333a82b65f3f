package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.FatalLevel)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordrank.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "/usr/share/dict/words", cfg.Rank.WordList)
	assert.Equal(t, 5, cfg.Rank.Length)
	assert.False(t, cfg.Rank.Strict)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[rank]
word_list = "/tmp/words.txt"
length = 6
strict = true

[log]
debug = true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.txt", cfg.Rank.WordList)
	assert.Equal(t, 6, cfg.Rank.Length)
	assert.True(t, cfg.Rank.Strict)
	assert.True(t, cfg.Log.Debug)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, "[rank]\nlength = 7\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Rank.Length)
	assert.Equal(t, "/usr/share/dict/words", cfg.Rank.WordList)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// length has the wrong type, so the typed decode fails; the rest survives.
	path := writeConfig(t, `
[rank]
word_list = "/tmp/words.txt"
length = "six"

[log]
debug = true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.txt", cfg.Rank.WordList)
	assert.Equal(t, 5, cfg.Rank.Length)
	assert.True(t, cfg.Log.Debug)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigSkipsInvalidLength(t *testing.T) {
	// strict has the wrong type, forcing recovery; length 0 is out of range.
	path := writeConfig(t, `
[rank]
word_list = "/tmp/words.txt"
length = 0
strict = "yes"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.txt", cfg.Rank.WordList)
	assert.Equal(t, 5, cfg.Rank.Length)
	assert.False(t, cfg.Rank.Strict)
}

func TestLoadConfigUnknownKeyKeepsKnownOnes(t *testing.T) {
	path := writeConfig(t, "[rank]\nlenght = 6\nlength = 7\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Rank.Length)
}

func TestLoadConfigWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	prev := log.GetLevel()
	log.SetOutput(&buf)
	log.SetLevel(log.WarnLevel)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(prev)
	}()

	path := writeConfig(t, "[rank]\nlength = \"six\"\nstrict = 3\n")
	_, err := LoadConfig(path)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "WARN"), out)
	assert.Contains(t, out, "rank.length")
	assert.Contains(t, out, "rank.strict")
}

func TestLoadConfigSyntaxError(t *testing.T) {
	path := writeConfig(t, "[rank\nlength = 6\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rank.Length = 0
	assert.ErrorContains(t, cfg.Validate(), "rank.length")

	cfg = DefaultConfig()
	cfg.Rank.WordList = ""
	assert.ErrorContains(t, cfg.Validate(), "rank.word_list")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := DefaultConfig()
	cfg.Rank.Length = 4
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
