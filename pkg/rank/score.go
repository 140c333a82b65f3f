/*
Package rank scores eligible words by letter coverage and orders them as
opening guesses.

A word's score is the sum of the frequency weights of its distinct letters.
Repeated letters count once, since a guess learns nothing new from the
second copy of a letter. Scores use exact decimal arithmetic so that equal
letter sets always produce equal scores and ties sort the same way on every
platform.
*/
package rank

import (
	"fmt"

	"github.com/bastiangx/wordrank/pkg/frequency"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Candidate is an eligible word paired with its score.
type Candidate struct {
	Word  string
	Score decimal.Decimal
}

// Score sums the weights of the distinct letters in word. A letter without a
// weight is an error wrapping frequency.ErrNoWeight; no default is substituted.
func Score(word string, table *frequency.Table) (decimal.Decimal, error) {
	letters := lo.Uniq([]rune(word))
	weights := make([]decimal.Decimal, 0, len(letters))
	for _, r := range letters {
		w, err := table.Weight(r)
		if err != nil {
			return decimal.Zero, fmt.Errorf("score %q: %w", word, err)
		}
		weights = append(weights, w)
	}
	return lo.Reduce(weights, func(sum decimal.Decimal, w decimal.Decimal, _ int) decimal.Decimal {
		return sum.Add(w)
	}, decimal.Zero), nil
}
