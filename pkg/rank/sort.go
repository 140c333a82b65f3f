package rank

import "slices"

// ScoredList is a set of candidates, highest score first once sorted.
type ScoredList []Candidate

// Sort orders list by descending score. Equal scores keep their input order.
func Sort(list ScoredList) {
	slices.SortStableFunc(list, func(a, b Candidate) int {
		return b.Score.Cmp(a.Score)
	})
}

// Words returns the words of list in order.
func (l ScoredList) Words() []string {
	words := make([]string, len(l))
	for i, c := range l {
		words[i] = c.Word
	}
	return words
}
