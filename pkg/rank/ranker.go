package rank

import (
	"errors"
	"io"
	"iter"

	"github.com/bastiangx/wordrank/internal/logger"
	"github.com/bastiangx/wordrank/pkg/frequency"
	"github.com/charmbracelet/log"
)

// WordSource yields eligible words of the requested length in input order.
type WordSource interface {
	Words(length int) iter.Seq[string]
}

// Ranker runs the filter, score, sort and report steps over a word source.
type Ranker struct {
	table  *frequency.Table
	length int
	strict bool
	log    *log.Logger
}

// Summary describes a finished run.
type Summary struct {
	Eligible   int
	Rejected   int
	Written    int
	SinkClosed bool
}

// NewRanker creates a Ranker for words of exactly length characters.
// With strict set, a word containing a letter the table cannot weigh aborts
// the run; otherwise that word is logged as an error and left out.
func NewRanker(table *frequency.Table, length int, strict bool) *Ranker {
	return &Ranker{
		table:  table,
		length: length,
		strict: strict,
		log:    logger.New("rank"),
	}
}

// SetLogger replaces the logger used to report rejected words.
func (r *Ranker) SetLogger(l *log.Logger) {
	r.log = l
}

// Rank scores every eligible word from src and returns them sorted.
func (r *Ranker) Rank(src WordSource) (ScoredList, Summary, error) {
	var summary Summary
	var list ScoredList

	for word := range src.Words(r.length) {
		summary.Eligible++
		score, err := Score(word, r.table)
		if err != nil {
			if r.strict {
				return nil, summary, err
			}
			summary.Rejected++
			r.log.Error("Rejected word", "word", word, "err", err)
			continue
		}
		list = append(list, Candidate{Word: word, Score: score})
	}

	Sort(list)
	r.log.Debug("Ranked words", "eligible", summary.Eligible, "rejected", summary.Rejected)
	return list, summary, nil
}

// Run ranks src and writes the result to w. A closed output ends the run
// normally with Summary.SinkClosed set.
func (r *Ranker) Run(src WordSource, w io.Writer) (Summary, error) {
	list, summary, err := r.Rank(src)
	if err != nil {
		return summary, err
	}

	summary.Written, err = Write(w, list)
	if errors.Is(err, ErrSinkClosed) {
		r.log.Debug("Output closed early", "written", summary.Written, "total", len(list))
		summary.SinkClosed = true
		return summary, nil
	}
	return summary, err
}
