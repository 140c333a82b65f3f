package dictionary

import "github.com/bastiangx/wordrank/internal/utils"

// DefaultLength is the word length of a standard Wordle puzzle.
const DefaultLength = 5

// Eligible reports whether word may be ranked: it must be exactly length
// characters long and already entirely lowercase. The lowercase rule keeps
// proper nouns and abbreviations out of the results.
func Eligible(word string, length int) bool {
	return utils.RuneLength(word) == length && utils.IsLowercase(word)
}
