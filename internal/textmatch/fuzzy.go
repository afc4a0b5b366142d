// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package textmatch

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
)

// DefaultThreshold is the minimum aggregate score a candidate must reach
// to appear in fuzzy results.
const DefaultThreshold = 0.6

const (
	defaultMaxResults     = 50
	defaultMaxSuggestions = 5

	// confidentScore is the top-result score above which "did you mean"
	// suggestions are suppressed.
	confidentScore = 0.8

	// soundexScore is the fixed score awarded for a phonetic code match.
	soundexScore = 0.8
)

// DefaultFields are the programme fields scored when the caller does not
// configure a field list.
var DefaultFields = []string{"title", "description", "genre", "channel"}

// SearchOptions configures a single fuzzy search.
type SearchOptions struct {
	// Fields restricts scoring to the named programme fields.
	// Empty means DefaultFields.
	Fields []string

	// MaxResults caps the ranked result list. Zero means 50.
	MaxResults int

	// Phonetic enables Soundex code matching.
	Phonetic bool
}

// SuggestOptions configures SearchWithSuggestions.
type SuggestOptions struct {
	// MaxResults caps the ranked result list. Zero means 50.
	MaxResults int

	// MaxSuggestions caps the "did you mean" list. Zero means 5.
	MaxSuggestions int
}

// Matcher scores programmes against free-text queries using a mix of
// exact, substring, edit-distance, phonetic and word-level matching.
// It is safe for concurrent use: the programme snapshot is replaced
// wholesale and readers always observe a complete list.
type Matcher struct {
	snapshot atomic.Pointer[[]models.Programme]

	mu        sync.RWMutex
	threshold float64
}

// NewMatcher creates a matcher with the default similarity threshold and
// an empty programme snapshot.
func NewMatcher() *Matcher {
	m := &Matcher{threshold: DefaultThreshold}
	empty := make([]models.Programme, 0)
	m.snapshot.Store(&empty)
	return m
}

// SetProgrammes replaces the candidate snapshot. The slice is copied so
// later caller mutations cannot leak into in-flight searches.
func (m *Matcher) SetProgrammes(programmes []models.Programme) {
	snap := make([]models.Programme, len(programmes))
	copy(snap, programmes)
	m.snapshot.Store(&snap)
}

// Programmes returns the current candidate snapshot.
func (m *Matcher) Programmes() []models.Programme {
	return *m.snapshot.Load()
}

// SetThreshold adjusts the minimum aggregate score. Values outside (0,1]
// are ignored.
func (m *Matcher) SetThreshold(t float64) {
	if t <= 0 || t > 1 {
		return
	}
	m.mu.Lock()
	m.threshold = t
	m.mu.Unlock()
}

// Threshold returns the current similarity threshold.
func (m *Matcher) Threshold() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.threshold
}

// Search scores every candidate against the query and returns matches at
// or above the threshold, ranked by descending score and capped at
// opts.MaxResults. A blank query returns no matches.
func (m *Matcher) Search(query string, opts SearchOptions) []models.FuzzyMatch {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = DefaultFields
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	threshold := m.Threshold()
	lowerQuery := strings.ToLower(query)

	var matches []models.FuzzyMatch
	for _, prog := range *m.snapshot.Load() {
		match := models.FuzzyMatch{Programme: prog}
		for _, field := range fields {
			value := fieldValue(&prog, field)
			if value == "" {
				continue
			}
			score, alg := m.scoreField(lowerQuery, strings.ToLower(value), opts.Phonetic, threshold)
			if score > match.Score {
				match.Score = score
			}
			if score >= threshold {
				match.Fields = append(match.Fields, models.FieldMatch{
					Field:     field,
					Value:     value,
					Score:     score,
					Algorithm: alg,
				})
			}
		}
		if match.Score >= threshold {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// scoreField returns the best score for one field value and the algorithm
// that produced it. An exact match short-circuits the other algorithms.
func (m *Matcher) scoreField(query, value string, phonetic bool, threshold float64) (float64, models.MatchAlgorithm) {
	if query == value {
		return 1.0, models.MatchExact
	}

	best := 0.0
	alg := models.MatchSubstring

	if strings.Contains(value, query) {
		best = float64(len(query)) / float64(len(value))
	}

	if s := WeightedSimilarity(query, value); s > best {
		best = s
		alg = models.MatchJaroWinkler
	}
	if s := SimilarityRatio(query, value); s > best {
		best = s
		alg = models.MatchLevenshtein
	}
	if phonetic && PhoneticCode(query) == PhoneticCode(value) {
		if soundexScore > best {
			best = soundexScore
			alg = models.MatchSoundex
		}
	}

	if strings.ContainsRune(query, ' ') || strings.ContainsRune(value, ' ') {
		if s := wordLevelScore(query, value, threshold); s > best {
			best = s
			alg = models.MatchWordLevel
		}
	}

	return best, alg
}

// wordLevelScore matches each query word against its best field word and
// returns the mean of matched-word scores over the total query word
// count. A word counts as matched when its best score clears threshold.
func wordLevelScore(query, value string, threshold float64) float64 {
	queryWords := strings.Fields(query)
	valueWords := strings.Fields(value)
	if len(queryWords) == 0 || len(valueWords) == 0 {
		return 0
	}

	total := 0.0
	for _, qw := range queryWords {
		best := 0.0
		for _, vw := range valueWords {
			s := WeightedSimilarity(qw, vw)
			if r := SimilarityRatio(qw, vw); r > s {
				s = r
			}
			if s > best {
				best = s
			}
		}
		if best >= threshold {
			total += best
		}
	}

	return total / float64(len(queryWords))
}

// SearchWithSuggestions runs Search and, unless the top result is a
// confident match (score above 0.8), derives "did you mean" suggestions
// from candidate titles scoring in [0.5, 0.8) against the query.
func (m *Matcher) SearchWithSuggestions(query string, opts SuggestOptions) ([]models.FuzzyMatch, []string) {
	matches := m.Search(query, SearchOptions{MaxResults: opts.MaxResults})
	if len(matches) > 0 && matches[0].Score > confidentScore {
		return matches, nil
	}

	maxSuggestions := opts.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}

	type scored struct {
		title string
		score float64
	}
	var candidates []scored
	seen := make(map[string]struct{})
	for _, prog := range *m.snapshot.Load() {
		if _, dup := seen[prog.Title]; dup {
			continue
		}
		seen[prog.Title] = struct{}{}
		s := WeightedSimilarity(query, prog.Title)
		if s >= 0.5 && s < confidentScore {
			candidates = append(candidates, scored{title: prog.Title, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	suggestions := make([]string, len(candidates))
	for i, c := range candidates {
		suggestions[i] = c.title
	}
	return matches, suggestions
}

// TypoCorrections suggests likely intended words for each query word by
// scoring against the vocabulary of all candidate fields. Scores in
// [0.7, 0.95) are considered probable typos; exact and near-exact words
// need no correction.
func (m *Matcher) TypoCorrections(query string, maxSuggestions int) []string {
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}

	vocabulary := make(map[string]struct{})
	for _, prog := range *m.snapshot.Load() {
		for _, field := range DefaultFields {
			for _, word := range strings.Fields(strings.ToLower(fieldValue(&prog, field))) {
				if len(word) > 2 {
					vocabulary[word] = struct{}{}
				}
			}
		}
	}

	type scored struct {
		word  string
		score float64
	}
	var corrections []scored
	seen := make(map[string]struct{})
	for _, qw := range strings.Fields(strings.ToLower(query)) {
		if len(qw) < 3 {
			continue
		}
		for word := range vocabulary {
			s := WeightedSimilarity(qw, word)
			if s < 0.7 || s >= 0.95 {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			corrections = append(corrections, scored{word: word, score: s})
		}
	}

	sort.SliceStable(corrections, func(i, j int) bool {
		return corrections[i].score > corrections[j].score
	})
	if len(corrections) > maxSuggestions {
		corrections = corrections[:maxSuggestions]
	}

	out := make([]string, len(corrections))
	for i, c := range corrections {
		out[i] = c.word
	}
	return out
}

// fieldValue resolves a configured field name against a programme.
// Unknown field names resolve to empty and are skipped by the caller.
func fieldValue(p *models.Programme, field string) string {
	switch field {
	case "title":
		return p.Title
	case "description":
		return p.Description
	case "genre":
		return p.Genre
	case "channel":
		return p.ChannelName
	default:
		return ""
	}
}
