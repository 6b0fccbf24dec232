package service

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"

	"github.com/mmcdole/clickrank/internal/domain"
)

// rankIndex implements sahilm/fuzzy.Source over lowercase rank names
type rankIndex struct {
	lowerNames []string
}

func (idx rankIndex) String(i int) string { return idx.lowerNames[i] }
func (idx rankIndex) Len() int            { return len(idx.lowerNames) }

// FindRank returns the rank whose name best matches query.
// Exact (case-insensitive) names win, then ranked subsequence matches, then
// the closest name by edit distance when it is within typo tolerance.
func FindRank(ladder domain.Ladder, query string) (domain.Rank, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return domain.Rank{}, fmt.Errorf("%w: empty query", domain.ErrRankNotFound)
	}

	ranks := ladder.Ranks()
	idx := rankIndex{lowerNames: make([]string, len(ranks))}
	for i, r := range ranks {
		idx.lowerNames[i] = strings.ToLower(r.Name)
		if idx.lowerNames[i] == query {
			return r, nil
		}
	}

	if matches := sfuzzy.FindFrom(query, idx); len(matches) > 0 {
		// matches are sorted by score, best first
		return ranks[matches[0].Index], nil
	}

	best, bestDist := -1, 0
	for i, name := range idx.lowerNames {
		d := fuzzy.LevenshteinDistance(query, name)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist > typoTolerance(query) {
		return domain.Rank{}, fmt.Errorf("%w: %q", domain.ErrRankNotFound, query)
	}
	return ranks[best], nil
}

// typoTolerance is the edit distance allowed for a query of this length
func typoTolerance(query string) int {
	n := len([]rune(query))
	switch {
	case n <= 3:
		return 0
	case n <= 6:
		return 1
	default:
		return n / 4
	}
}
