// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package models

// TimeSlot is a named hour range [Start, End) on the 24-hour clock.
// A slot with Start > End wraps past midnight: hour 23 falls in the
// overnight slot 23-6, as do hours 0 through 5.
type TimeSlot struct {
	// ID is the stable slot identifier used as a filter value.
	ID string `json:"id"`

	// Label is the human-readable slot name.
	Label string `json:"label"`

	// Start is the inclusive starting hour (0-23).
	Start int `json:"start"`

	// End is the exclusive ending hour (0-23).
	End int `json:"end"`
}

// Contains reports whether the given hour falls within the slot,
// applying the wraparound rule for slots where Start > End.
func (s TimeSlot) Contains(hour int) bool {
	if s.Start > s.End {
		return hour >= s.Start || hour < s.End
	}
	return hour >= s.Start && hour < s.End
}

// CanonicalTimeSlots is the fixed catalogue of seven selectable slots,
// morning through overnight. Used both as filter values and facet buckets.
var CanonicalTimeSlots = []TimeSlot{
	{ID: "morning", Label: "Morning", Start: 6, End: 9},
	{ID: "daytime", Label: "Daytime", Start: 9, End: 12},
	{ID: "lunchtime", Label: "Lunchtime", Start: 12, End: 14},
	{ID: "afternoon", Label: "Afternoon", Start: 14, End: 17},
	{ID: "early-evening", Label: "Early Evening", Start: 17, End: 20},
	{ID: "primetime", Label: "Primetime", Start: 20, End: 23},
	{ID: "overnight", Label: "Overnight", Start: 23, End: 6},
}

// TimeSlotByID returns the canonical slot with the given ID, if any.
func TimeSlotByID(id string) (TimeSlot, bool) {
	for _, slot := range CanonicalTimeSlots {
		if slot.ID == id {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
