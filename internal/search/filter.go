package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"
)

// Local fuzzy filtering of lists that are already loaded in a view. Live
// search against the API's /search endpoints is a separate path; this is
// the as-you-type narrowing inside a list.

// Filter returns the indexes of labels fuzzily matching query, in their
// original order. An empty query matches everything.
func Filter(query string, labels []string) []int {
	if strings.TrimSpace(query) == "" {
		idx := make([]int, len(labels))
		for i := range labels {
			idx[i] = i
		}
		return idx
	}

	idx := make([]int, 0, len(labels))
	for i, l := range labels {
		if fuzzy.MatchFold(query, l) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Match is one ranked filter result.
type Match struct {
	Index          int   // Index in the source slice
	Score          int   // Higher is better
	MatchedIndexes []int // Character positions that matched, for highlighting
}

// labelSource adapts a label slice to sahilm/fuzzy.Source.
type labelSource []string

func (s labelSource) String(i int) string { return s[i] }
func (s labelSource) Len() int            { return len(s) }

// Rank returns labels matching query ordered best-first, with matched
// character positions for highlighting.
func Rank(query string, labels []string) []Match {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	results := sahilm.FindFrom(query, labelSource(labels))
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Index:          r.Index,
			Score:          r.Score,
			MatchedIndexes: r.MatchedIndexes,
		}
	}
	return matches
}
