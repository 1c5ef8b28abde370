package search

import (
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sahilm/fuzzy"

	"github.com/LFroesch/burrow/internal/logger"
)

// MatchResult contains fuzzy match information
type MatchResult struct {
	Index          int
	MatchedIndexes []int
}

const globMeta = "*?["

// IsPattern reports whether query may be retried as a wildcard pattern.
func IsPattern(query string) bool {
	return strings.ContainsAny(query, globMeta)
}

// Match returns every name matching query, in the order of names. Names are
// fuzzy subsequence matches; when nothing matches and the query holds *, ?
// or [ it is tried as a shell-style wildcard against the whole name.
func Match(query string, names []string) []MatchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 && IsPattern(query) {
		results, _ := matchPattern(query, names)
		return results
	}

	results := make([]MatchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, MatchResult{Index: m.Index, MatchedIndexes: m.MatchedIndexes})
	}
	// fuzzy.Find ranks by score; listing order is what callers want
	sortByIndex(results)
	return results
}

// First returns the index of the first name (in the given order) that
// matches query. Score magnitude plays no part.
func First(query string, names []string) (int, bool) {
	results := Match(query, names)
	if len(results) == 0 {
		return 0, false
	}
	return results[0].Index, true
}

func matchPattern(query string, names []string) ([]MatchResult, bool) {
	g, err := glob.Compile(query)
	if err != nil {
		logger.Debug("Invalid search pattern %q: %v", query, err)
		return nil, false
	}

	var results []MatchResult
	for i, name := range names {
		if g.Match(name) {
			results = append(results, MatchResult{Index: i})
		}
	}
	return results, true
}

func sortByIndex(results []MatchResult) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
}
