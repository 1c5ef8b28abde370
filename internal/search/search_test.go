package search

import (
	"testing"
)

func TestMatch(t *testing.T) {
	names := []string{
		"file1.txt",
		"file2.txt",
		"document.pdf",
		"readme.md",
		"config.json",
		"notes[1].txt",
	}

	tests := []struct {
		name          string
		query         string
		expectedCount int
	}{
		{"exact match", "file1.txt", 1},
		{"substring match", "file", 2},
		{"subsequence match", "dcpdf", 1},
		{"case insensitive", "FILE", 2},
		{"no match", "xyz", 0},
		{"empty query", "", 0},
		{"blank query", "   ", 0},
		{"wildcard", "*.txt", 3},
		{"single char wildcard", "file?.txt", 2},
		{"class", "[rc]*", 2},
		{"wildcard no match", "*.go", 0},
		{"wildcard characters in name", "notes[1]", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Match(tt.query, names)
			if len(results) != tt.expectedCount {
				t.Errorf("Match(%s) returned %d results, expected %d", tt.query, len(results), tt.expectedCount)
			}
		})
	}
}

func TestMatchKeepsListingOrder(t *testing.T) {
	// "main.go" scores better for "main" than "a_main_thing" but comes later
	names := []string{"a_main_thing", "domain.txt", "main.go"}

	results := Match("main", names)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d, want listing order", i, r.Index)
		}
	}
}

func TestFirst(t *testing.T) {
	names := []string{"alpha.txt", "beta.txt", "gamma"}

	tests := []struct {
		query string
		want  int
		found bool
	}{
		{"beta", 1, true},
		{"gm", 2, true},
		{"txt", 0, true},
		{"  gamma  ", 2, true},
		{"zzz", 0, false},
		{"", 0, false},
		{"*.txt", 0, true},
		{"g*", 2, true},
	}

	for _, tt := range tests {
		got, ok := First(tt.query, names)
		if ok != tt.found || got != tt.want {
			t.Errorf("First(%q) = %d, %v; want %d, %v", tt.query, got, ok, tt.want, tt.found)
		}
	}
}

func TestIsPattern(t *testing.T) {
	if IsPattern("readme") {
		t.Error("plain query is not a pattern")
	}
	for _, q := range []string{"*.go", "a?c", "[ab]"} {
		if !IsPattern(q) {
			t.Errorf("%q should be a pattern", q)
		}
	}
}

func TestMatchPrefersFuzzyOverWildcard(t *testing.T) {
	names := []string{"a.txt", "notes[1].txt", "what?.md"}

	for query, want := range map[string]int{"notes[1]": 1, "what?": 2} {
		results := Match(query, names)
		if len(results) != 1 || results[0].Index != want {
			t.Errorf("Match(%q) = %+v, want only index %d", query, results, want)
		}
		if len(results) == 1 && len(results[0].MatchedIndexes) == 0 {
			t.Errorf("Match(%q) should be a fuzzy match with highlight indexes", query)
		}
	}
}
