package services

import (
	"sort"
	"strings"

	"rootline-backend/domain/herbs"
)

// MatchQuery is the transient input to the matcher. Free-text fields may be
// empty; an empty tradition selection means all traditions.
type MatchQuery struct {
	Symptoms     string
	Goals        string
	Restrictions string
	Traditions   []herbs.Tradition
}

// HerbMatch pairs a herb with the relevance evidence for one query.
type HerbMatch struct {
	Herb            *herbs.HerbRecord
	Score           int
	MatchedKeywords []string
	Contraindicated bool
}

const (
	// MaxMatches caps the ranked result. Anything past the eighth match is
	// noise for both the UI and the prompt context block.
	MaxMatches = 8

	// tokenMatchScore rewards an exact token hit; substringMatchScore is the
	// weaker secondary signal for partial overlap.
	tokenMatchScore     = 3
	substringMatchScore = 1

	// substringMinLen keeps short tokens from substring-matching everywhere.
	substringMinLen = 4
)

// Matcher ranks herbs by keyword relevance to a query and derives the graph
// edges connecting the matched herbs. All operations are pure functions over
// the immutable store: deterministic, side-effect free, never failing.
type Matcher struct {
	store    *herbs.Store
	analyzer TextAnalyzer
}

// NewMatcher creates a matcher over the given store.
func NewMatcher(store *herbs.Store, analyzer TextAnalyzer) *Matcher {
	if analyzer == nil {
		analyzer = NewDefaultTextAnalyzer()
	}
	return &Matcher{store: store, analyzer: analyzer}
}

// MatchHerbs scores every herb in the selected traditions against the query
// keywords and returns the ranked matches.
//
// Tradition filtering is exclusionary: a herb outside the selection is
// skipped entirely and tradition membership never adds score. Herbs that
// score zero are discarded even when their tradition matches, so a query
// with no usable keywords returns an empty result. Ties keep the herb
// table's declaration order, and the result is capped at MaxMatches.
func (m *Matcher) MatchHerbs(query MatchQuery) []HerbMatch {
	queryTokens := m.analyzer.KeywordSet(query.Symptoms + " " + query.Goals)
	restrictionTokens := m.analyzer.KeywordSet(query.Restrictions)

	var matches []HerbMatch
	all := m.store.AllHerbs()
	for i := range all {
		herb := &all[i]
		if !herb.InAnyTradition(query.Traditions) {
			continue
		}

		score, matched := m.scoreHerb(herb, queryTokens)
		if score == 0 {
			continue
		}

		matches = append(matches, HerbMatch{
			Herb:            herb,
			Score:           score,
			MatchedKeywords: matched,
			Contraindicated: m.hitsCautions(herb, restrictionTokens),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}

	return matches
}

// GraphConnectionsFor returns every edge whose both endpoints are among the
// matched herbs, preserving the edge table's declaration order. Empty input
// yields empty output.
func (m *Matcher) GraphConnectionsFor(matches []HerbMatch) []herbs.HerbEdge {
	if len(matches) == 0 {
		return nil
	}

	matched := make(map[string]bool, len(matches))
	for _, match := range matches {
		matched[match.Herb.ID] = true
	}

	var edges []herbs.HerbEdge
	for _, edge := range m.store.Edges() {
		if matched[edge.From] && matched[edge.To] {
			edges = append(edges, edge)
		}
	}
	return edges
}

// scoreHerb scores one herb against the query token set. Each herb keyword
// from Actions and Uses contributes at most once: tokenMatchScore for an
// exact token hit, substringMatchScore for a partial overlap. Matched herb
// keywords are returned in the herb's declaration order.
func (m *Matcher) scoreHerb(herb *herbs.HerbRecord, queryTokens map[string]bool) (int, []string) {
	if len(queryTokens) == 0 {
		return 0, nil
	}

	score := 0
	var matched []string
	seen := make(map[string]bool)

	scorePhrases := func(phrases []string) {
		for _, phrase := range phrases {
			for _, token := range m.analyzer.Tokens(phrase) {
				if seen[token] {
					continue
				}
				seen[token] = true

				if queryTokens[token] {
					score += tokenMatchScore
					matched = append(matched, token)
					continue
				}
				if substringHit(token, queryTokens) {
					score += substringMatchScore
					matched = append(matched, token)
				}
			}
		}
	}

	scorePhrases(herb.Actions)
	scorePhrases(herb.Uses)

	return score, matched
}

// hitsCautions reports whether any restriction token overlaps any token of
// the herb's caution entries, using the same token/substring technique as
// scoring. A hit flags the herb; it never removes it from results.
func (m *Matcher) hitsCautions(herb *herbs.HerbRecord, restrictionTokens map[string]bool) bool {
	if len(restrictionTokens) == 0 {
		return false
	}
	for _, caution := range herb.Cautions {
		for _, token := range m.analyzer.Tokens(caution) {
			if restrictionTokens[token] || substringHit(token, restrictionTokens) {
				return true
			}
		}
	}
	return false
}

// substringHit reports whether the token partially overlaps any member of
// the set, in either direction. Both sides must reach substringMinLen so
// short tokens cannot match everywhere.
func substringHit(token string, set map[string]bool) bool {
	if len(token) < substringMinLen {
		return false
	}
	for candidate := range set {
		if len(candidate) < substringMinLen {
			continue
		}
		if strings.Contains(token, candidate) || strings.Contains(candidate, token) {
			return true
		}
	}
	return false
}
