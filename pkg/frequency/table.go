/*
Package frequency holds the static letter weights used to score words.

A Table maps each lowercase letter a-z to a positive decimal weight. Tables
are built once and never mutated, so any number of goroutines may read from
the same Table without locking.
*/
package frequency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Alphabet is the ordered set of letters every Table must define.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// ErrNoWeight is returned when a rune has no weight in the table.
var ErrNoWeight = errors.New("no frequency weight for letter")

// Table is an immutable letter -> weight lookup.
type Table struct {
	weights [len(Alphabet)]decimal.Decimal
}

// english holds relative English letter frequencies scaled so the rarest
// letters sit at 1.00. Source:
// https://www3.nd.edu/~busiforc/handouts/cryptography/letterfrequencies.html
var english = map[rune]string{
	'e': "56.88",
	'a': "43.31",
	'r': "38.64",
	'i': "38.45",
	'o': "36.51",
	't': "35.43",
	'n': "33.92",
	's': "29.23",
	'l': "27.98",
	'c': "23.13",
	'u': "18.51",
	'd': "17.25",
	'p': "16.14",
	'm': "15.36",
	'h': "15.31",
	'g': "12.59",
	'b': "10.56",
	'f': "9.24",
	'y': "9.06",
	'w': "6.57",
	'k': "5.61",
	'v': "5.13",
	'x': "1.48",
	'z': "1.39",
	'j': "1.00",
	'q': "1.00",
}

var englishTable = mustNew(english)

// English returns the built-in English letter-frequency table.
func English() *Table {
	return englishTable
}

// New builds a Table from decimal strings. Every letter of Alphabet must be
// present with a positive weight, and no other keys are allowed.
func New(weights map[rune]string) (*Table, error) {
	t := &Table{}
	for r, raw := range weights {
		idx, ok := index(r)
		if !ok {
			return nil, fmt.Errorf("letter %q is outside a-z", r)
		}
		w, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("weight for %q: %w", r, err)
		}
		if !w.IsPositive() {
			return nil, fmt.Errorf("weight for %q must be positive, got %s", r, raw)
		}
		t.weights[idx] = w
	}
	for i, r := range Alphabet {
		if _, ok := weights[r]; !ok {
			return nil, fmt.Errorf("missing weight for %q (letter %d of %d)", r, i+1, len(Alphabet))
		}
	}
	return t, nil
}

func mustNew(weights map[rune]string) *Table {
	t, err := New(weights)
	if err != nil {
		panic(err)
	}
	return t
}

// Weight returns the weight for r. Anything outside a-z yields ErrNoWeight.
func (t *Table) Weight(r rune) (decimal.Decimal, error) {
	idx, ok := index(r)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrNoWeight, r)
	}
	return t.weights[idx], nil
}

// Min returns the smallest weight in the table.
func (t *Table) Min() decimal.Decimal {
	return decimal.Min(t.weights[0], t.weights[1:]...)
}

func index(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}
