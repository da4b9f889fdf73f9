// Package match resolves free-text queries against a candidate set using
// fuzzy string similarity.
//
// The policy, in order: a case-sensitive exact match on the display string
// always wins; otherwise candidates are scored case-insensitively and the
// best score wins. Ties break toward the shorter display string, then
// toward enumeration order, so resolution is fully deterministic.
package match

import (
	"sort"
	"strings"

	"github.com/performer-tools/cli/internal/domain"
)

// Score bands. Within the substring and subsequence bands the score
// shrinks as the candidate gets longer than the query, so tighter
// matches rank higher.
const (
	scoreExact       = 100
	scoreEqualFold   = 90
	scoreSubstring   = 80
	scoreSubsequence = 50
)

// Result pairs a candidate with its similarity score for a query.
type Result struct {
	Candidate domain.Candidate
	Display   string
	Score     int
	index     int
}

// Selector implements domain.Selector.
type Selector struct{}

// New creates a Selector.
func New() *Selector {
	return &Selector{}
}

// Choose resolves query to at most one candidate. Returns false when the
// set is empty, the query is blank, or no candidate reaches minScore.
func (*Selector) Choose(set domain.CandidateSet, query string, minScore int) (domain.Candidate, bool) {
	ranked := Rank(set, query)
	if len(ranked) == 0 {
		return domain.Candidate{}, false
	}

	best := ranked[0]
	if best.Score < minScore {
		return domain.Candidate{}, false
	}
	return best.Candidate, true
}

// Rank scores every candidate against query and returns the hits ordered
// by score (descending), display length (ascending), then enumeration
// order. Candidates scoring zero are omitted.
func Rank(set domain.CandidateSet, query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" || set.IsEmpty() {
		return nil
	}

	var results []Result
	for i := 0; i < set.Len(); i++ {
		c := set.At(i)
		display := c.Display(set.FullPath())
		score := Score(query, display)
		if score <= 0 {
			continue
		}
		results = append(results, Result{
			Candidate: c,
			Display:   display,
			Score:     score,
			index:     i,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if len(results[i].Display) != len(results[j].Display) {
			return len(results[i].Display) < len(results[j].Display)
		}
		return results[i].index < results[j].index
	})

	return results
}

// Score computes the similarity between query and display. Zero means no
// match at all.
func Score(query, display string) int {
	if query == "" || display == "" {
		return 0
	}

	// Exact input resolves deterministically, regardless of what a
	// fuzzier comparison would prefer.
	if query == display {
		return scoreExact
	}

	q := strings.ToLower(query)
	d := strings.ToLower(display)

	if q == d {
		return scoreEqualFold
	}
	if strings.Contains(d, q) {
		return clampBand(scoreSubstring - (len(d) - len(q)))
	}
	if isSubsequence(q, d) {
		return clampBand(scoreSubsequence - (len(d) - len(q)))
	}
	return 0
}

// clampBand keeps long candidates from dropping out of their band
// entirely; any hit is worth at least 1.
func clampBand(score int) int {
	if score < 1 {
		return 1
	}
	return score
}

// isSubsequence reports whether every rune of q appears in d in order
// (not necessarily adjacent).
func isSubsequence(q, d string) bool {
	qr := []rune(q)
	i := 0
	for _, ch := range d {
		if i < len(qr) && qr[i] == ch {
			i++
			if i == len(qr) {
				return true
			}
		}
	}
	return i == len(qr)
}

// Verify Selector implements domain.Selector
var _ domain.Selector = (*Selector)(nil)
