package attendance

import (
	"github.com/pmezard/go-difflib/difflib"
)

// MatchThreshold is the minimum similarity a fuzzy candidate must reach.
// A score exactly at the threshold is accepted.
const MatchThreshold = 0.7

// Match describes how one entry was resolved against a roster.
type Match struct {
	// Entry is the raw input line.
	Entry string
	// Name is the canonical roster name the entry resolved to.
	Name string
	// Score is the similarity of the normalized entry to the normalized name,
	// 1.0 for exact matches.
	Score float64
	// Exact is true when the normalized forms were equal.
	Exact bool
}

// Index is the normalized lookup of one roster. Build it once per run and
// resolve every entry against it.
type Index struct {
	keys   []string          // normalized forms, roster order
	lookup map[string]string // normalized form -> canonical name
	chars  map[string][]string
}

// NewIndex builds the lookup for members. When two members share a
// normalized form the first one wins.
func NewIndex(members []string) *Index {
	idx := &Index{
		keys:   make([]string, 0, len(members)),
		lookup: make(map[string]string, len(members)),
		chars:  make(map[string][]string, len(members)),
	}
	for _, m := range members {
		key := Normalize(m)
		if _, dup := idx.lookup[key]; dup {
			continue
		}
		idx.keys = append(idx.keys, key)
		idx.lookup[key] = m
		idx.chars[key] = splitChars(key)
	}
	return idx
}

// Len returns the number of distinct identities in the roster.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Resolve returns the roster member the entry designates.
//
// An exact match on normalized forms always wins. Otherwise the candidate
// with the highest Ratcliff/Obershelp ratio (2*M/T over code points, M matched
// characters, T total characters) at or above MatchThreshold is returned;
// equal scores go to the lexicographically greatest normalized key.
func (idx *Index) Resolve(entry string) (Match, bool) {
	e := Normalize(entry)
	if name, ok := idx.lookup[e]; ok {
		return Match{Entry: entry, Name: name, Score: 1, Exact: true}, true
	}

	best, score, ok := idx.closest(e)
	if !ok {
		return Match{}, false
	}
	return Match{Entry: entry, Name: idx.lookup[best], Score: score}, true
}

// closest mirrors a cutoff-filtered "get close matches" search returning the
// single best candidate.
func (idx *Index) closest(e string) (string, float64, bool) {
	if len(idx.keys) == 0 {
		return "", 0, false
	}

	// The entry is the second sequence so its character index is built once.
	matcher := difflib.NewMatcher(nil, splitChars(e))

	var (
		best      string
		bestScore float64
		found     bool
	)
	for _, key := range idx.keys {
		matcher.SetSeq1(idx.chars[key])
		if matcher.RealQuickRatio() < MatchThreshold || matcher.QuickRatio() < MatchThreshold {
			continue
		}
		score := matcher.Ratio()
		if score < MatchThreshold {
			continue
		}
		if !found || score > bestScore || (score == bestScore && key > best) {
			best, bestScore, found = key, score, true
		}
	}
	return best, bestScore, found
}

// Similarity returns the ratio used by Resolve between the normalized forms
// of a and b.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(splitChars(Normalize(a)), splitChars(Normalize(b))).Ratio()
}

// Resolve looks entry up in members without keeping the index around.
func Resolve(entry string, members []string) (string, bool) {
	m, ok := NewIndex(members).Resolve(entry)
	return m.Name, ok
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
