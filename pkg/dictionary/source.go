// Package dictionary streams candidate words out of newline-delimited word lists.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/charmbracelet/log"
)

// DefaultPath is the word list shipped with most Unix systems.
const DefaultPath = "/usr/share/dict/words"

// maxConsecutiveReadErrors bounds how many failed reads in a row are skipped
// before the source is considered dead.
const maxConsecutiveReadErrors = 8

// ErrOpenSource wraps any failure to open a word list.
var ErrOpenSource = errors.New("unable to open word list")

// Source reads a word list one line at a time.
type Source struct {
	name   string
	reader *bufio.Reader
	closer io.Closer
	stats  SourceStats
}

// SourceStats counts what happened to each line read from a Source.
type SourceStats struct {
	Lines       int
	Undecodable int
	ReadErrors  int
	Eligible    int
}

// Open opens the word list at path. The returned error names the path.
func Open(path string) (*Source, error) {
	if err := validateTextSource(path); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpenSource, path, err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpenSource, path, err)
	}
	src := NewSource(file)
	src.name = path
	src.closer = file
	log.Debugf("Opened word list: %s", utils.DisplayPath(path))
	return src, nil
}

// NewSource wraps an arbitrary reader. Closing the Source does not close r.
func NewSource(r io.Reader) *Source {
	return &Source{
		name:   "reader",
		reader: bufio.NewReader(r),
	}
}

// Name returns the path the source was opened from, or "reader".
func (s *Source) Name() string {
	return s.name
}

// Lines yields every decodable line in order, without its line ending.
// Lines that are not valid UTF-8, or that fail to read, are skipped. When a
// read fails partway through a line, the rest of that line is discarded too.
func (s *Source) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		failures := 0
		// resync is set while the remainder of a failed line is still unread
		resync := false
		for {
			line, err := s.reader.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				s.stats.ReadErrors++
				failures++
				resync = resync || line != ""
				log.Debugf("Skipping unreadable line %d in %s: %v", s.stats.Lines+s.stats.ReadErrors, s.name, err)
				if failures >= maxConsecutiveReadErrors {
					log.Warnf("Giving up on %s after %d consecutive read errors", s.name, failures)
					return
				}
				continue
			}
			failures = 0

			if line == "" {
				return
			}

			if resync {
				resync = false
				log.Debugf("Discarding tail of unreadable line in %s", s.name)
				if err != nil {
					return
				}
				continue
			}
			s.stats.Lines++

			text := utils.TrimLineEnding(line)
			if !utils.IsValidText(text) {
				s.stats.Undecodable++
				log.Debugf("Skipping undecodable line %d in %s", s.stats.Lines, s.name)
			} else if !yield(text) {
				return
			}

			if err != nil {
				return
			}
		}
	}
}

// Words yields the lines that pass Eligible for length, in source order.
func (s *Source) Words(length int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range s.Lines() {
			if !Eligible(line, length) {
				continue
			}
			s.stats.Eligible++
			if !yield(line) {
				return
			}
		}
	}
}

// Stats returns counters for everything read so far.
func (s *Source) Stats() SourceStats {
	return s.stats
}

// Close releases the underlying file, if the Source opened one.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
