// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package search

import (
	"strings"
	"time"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
)

// Relevance bonus weights. The score is a raw additive signal meant only
// for ordering within one result set; it is deliberately unnormalized.
const (
	titleContainsBonus  = 10
	titleExactBonus     = 20
	titlePrefixBonus    = 5
	descContainsBonus   = 3
	genreContainsBonus  = 5
	chanContainsBonus   = 2
	imminentAiringBonus = 3

	// imminentWindow is how far ahead a start time still earns the
	// time-proximity bonus.
	imminentWindow = 24 * time.Hour
)

// RelevanceScore computes the additive relevance of a programme for the
// given free-text terms. Per term, case-insensitively: title containment
// +10, exact title equality a further +20, title prefix a further +5,
// description containment +3, genre containment +5, channel containment
// +2. A single flat +3 is added when the programme starts within the
// next 24 hours. Bonuses are term-independent across categories.
func RelevanceScore(p *models.Programme, terms []string, now time.Time) float64 {
	title := strings.ToLower(p.Title)
	description := strings.ToLower(p.Description)
	genre := strings.ToLower(p.Genre)
	channel := strings.ToLower(p.ChannelName)

	score := 0.0
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}

		if strings.Contains(title, t) {
			score += titleContainsBonus
			if title == t {
				score += titleExactBonus
			}
			if strings.HasPrefix(title, t) {
				score += titlePrefixBonus
			}
		}
		if strings.Contains(description, t) {
			score += descContainsBonus
		}
		if strings.Contains(genre, t) {
			score += genreContainsBonus
		}
		if strings.Contains(channel, t) {
			score += chanContainsBonus
		}
	}

	if p.StartTime.After(now) && p.StartTime.Sub(now) <= imminentWindow {
		score += imminentAiringBonus
	}

	return score
}
