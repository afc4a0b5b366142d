// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package models

import "testing"

func TestTimeSlot_Contains(t *testing.T) {
	lateNight := TimeSlot{ID: "late", Label: "Late Night", Start: 21, End: 6}

	tests := []struct {
		name     string
		slot     TimeSlot
		hour     int
		expected bool
	}{
		{"primetime contains 20", TimeSlot{Start: 20, End: 23}, 20, true},
		{"primetime contains 22", TimeSlot{Start: 20, End: 23}, 22, true},
		{"primetime excludes end hour", TimeSlot{Start: 20, End: 23}, 23, false},
		{"primetime excludes morning", TimeSlot{Start: 20, End: 23}, 8, false},
		{"wraparound contains 22", lateNight, 22, true},
		{"wraparound contains 23", lateNight, 23, true},
		{"wraparound contains midnight", lateNight, 0, true},
		{"wraparound contains 3", lateNight, 3, true},
		{"wraparound excludes 10", lateNight, 10, false},
		{"wraparound excludes 15", lateNight, 15, false},
		{"overnight contains 23", TimeSlot{Start: 23, End: 6}, 23, true},
		{"overnight contains 5", TimeSlot{Start: 23, End: 6}, 5, true},
		{"overnight excludes 6", TimeSlot{Start: 23, End: 6}, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.slot.Contains(tt.hour); got != tt.expected {
				t.Errorf("TimeSlot{%d,%d}.Contains(%d) = %v, want %v",
					tt.slot.Start, tt.slot.End, tt.hour, got, tt.expected)
			}
		})
	}
}

func TestCanonicalTimeSlots(t *testing.T) {
	if len(CanonicalTimeSlots) != 7 {
		t.Fatalf("expected 7 canonical slots, got %d", len(CanonicalTimeSlots))
	}

	// Every hour of the day belongs to at least one canonical slot except
	// the pre-morning gap covered by overnight's wraparound.
	for hour := 0; hour < 24; hour++ {
		covered := false
		for _, slot := range CanonicalTimeSlots {
			if slot.Contains(hour) {
				covered = true
				break
			}
		}
		if !covered {
			t.Errorf("hour %d is not covered by any canonical slot", hour)
		}
	}
}

func TestTimeSlotByID(t *testing.T) {
	slot, ok := TimeSlotByID("overnight")
	if !ok {
		t.Fatal("overnight slot not found")
	}
	if slot.Start != 23 || slot.End != 6 {
		t.Errorf("overnight slot = [%d,%d), want [23,6)", slot.Start, slot.End)
	}

	if _, ok := TimeSlotByID("brunch"); ok {
		t.Error("unknown slot ID should not resolve")
	}
}

func TestMatchAlgorithm_String(t *testing.T) {
	tests := []struct {
		alg      MatchAlgorithm
		expected string
	}{
		{MatchExact, "exact"},
		{MatchSubstring, "substring"},
		{MatchJaroWinkler, "jaro-winkler"},
		{MatchLevenshtein, "levenshtein"},
		{MatchSoundex, "soundex"},
		{MatchWordLevel, "word-based"},
		{MatchAlgorithm(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.alg.String(); got != tt.expected {
			t.Errorf("MatchAlgorithm(%d).String() = %q, want %q", tt.alg, got, tt.expected)
		}
	}
}

func TestAlertFrequency_Valid(t *testing.T) {
	for _, f := range []AlertFrequency{AlertImmediate, AlertDaily, AlertWeekly} {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if AlertFrequency("fortnightly").Valid() {
		t.Error("unrecognized frequency should be invalid")
	}
}

func TestSearchFilters_HasTextQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"word", "news", true},
		{"padded word", "  news  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := SearchFilters{Query: tt.query}
			if got := f.HasTextQuery(); got != tt.expected {
				t.Errorf("HasTextQuery(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}
