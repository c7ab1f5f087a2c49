// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match ranks image filenames against a tile label using an
// ordered-subsequence score. Every character of the query must appear in the
// candidate name in order; consecutive characters and characters that start
// a word score higher. Matching is case- and accent-insensitive.
package match

import (
	"sort"
	"unicode"

	"github.com/pdiddy/cboard-builder/internal/slug"
	"github.com/pdiddy/cboard-builder/pkg/types"
)

// DefaultLimit caps the number of ranked results when no limit is given.
const DefaultLimit = 100

// Score weights. A matched character earns matchPoints, plus
// consecutiveBonus when it directly follows the previous match and
// boundaryBonus when it starts a word.
const (
	matchPoints      = 1
	consecutiveBonus = 2
	boundaryBonus    = 3

	// lengthPenalty scales the share of candidate runes left unmatched.
	lengthPenalty = 0.1
)

// Result is a scored candidate.
type Result struct {
	Candidate types.ImageCandidate

	// Index is the candidate's position in the corpus.
	Index int

	// Score is in (0, 1]; 1 is a name equal to the query.
	Score float64
}

// Corpus holds candidates with their names pre-folded for matching.
type Corpus struct {
	candidates []types.ImageCandidate
	folded     [][]rune
}

// Prepare folds every candidate name once so repeated queries skip the work.
func Prepare(candidates []types.ImageCandidate) *Corpus {
	c := &Corpus{
		candidates: candidates,
		folded:     make([][]rune, len(candidates)),
	}
	for i, cand := range candidates {
		c.folded[i] = []rune(slug.Fold(cand.Name))
	}
	return c
}

// Len returns the number of candidates.
func (c *Corpus) Len() int {
	return len(c.candidates)
}

// Matcher ranks a corpus against queries.
type Matcher struct {
	// Limit caps the ranked results. Zero or negative means DefaultLimit.
	Limit int

	// MinScore discards results scoring at or below it.
	MinScore float64
}

// Rank scores every candidate against query and returns the matches in
// descending score order. Equal scores keep corpus order.
func (m Matcher) Rank(query string, corpus *Corpus) []Result {
	q := queryRunes(query)
	if len(q) == 0 || corpus == nil {
		return nil
	}
	self, ok := bestAlignment(q, []rune(slug.Fold(query)))
	if !ok || self == 0 {
		return nil
	}

	var results []Result
	for i, name := range corpus.folded {
		raw, ok := bestAlignment(q, name)
		if !ok {
			continue
		}
		score := float64(raw) / float64(self)
		if score > 1 {
			score = 1
		}
		score -= lengthPenalty * float64(len(name)-len(q)) / float64(len(name))
		if score <= m.MinScore {
			continue
		}
		results = append(results, Result{
			Candidate: corpus.candidates[i],
			Index:     i,
			Score:     score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	limit := m.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Best returns the top-ranked result, or false when nothing matches.
func (m Matcher) Best(query string, corpus *Corpus) (Result, bool) {
	results := m.Rank(query, corpus)
	if len(results) == 0 {
		return Result{}, false
	}
	return results[0], true
}

// Match ranks candidates against query with the default threshold.
func Match(query string, candidates []types.ImageCandidate, limit int) []Result {
	return Matcher{Limit: limit}.Rank(query, Prepare(candidates))
}

// Best returns the best candidate for query, or false when none matches.
func Best(query string, candidates []types.ImageCandidate, limit int) (Result, bool) {
	return Matcher{Limit: limit}.Best(query, Prepare(candidates))
}

// queryRunes folds query and drops whitespace: spaces separate words in the
// query but need not be matched themselves.
func queryRunes(query string) []rune {
	var out []rune
	for _, r := range slug.Fold(query) {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// bestAlignment tries every occurrence of the first query rune as a start
// and greedily matches the rest, keeping the highest raw score.
func bestAlignment(q, target []rune) (int, bool) {
	best := -1
	for start, r := range target {
		if r != q[0] {
			continue
		}
		if raw, ok := align(q, target, start); ok && raw > best {
			best = raw
		}
	}
	return best, best >= 0
}

func align(q, target []rune, start int) (int, bool) {
	raw := 0
	prev := -2
	pos := start
	for _, qr := range q {
		p := -1
		for i := pos; i < len(target); i++ {
			if target[i] == qr {
				p = i
				break
			}
		}
		if p < 0 {
			return 0, false
		}
		raw += matchPoints
		if p == prev+1 {
			raw += consecutiveBonus
		}
		if isBoundary(target, p) {
			raw += boundaryBonus
		}
		prev = p
		pos = p + 1
	}
	return raw, true
}

func isBoundary(target []rune, p int) bool {
	if p == 0 {
		return true
	}
	prev := target[p-1]
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
}
