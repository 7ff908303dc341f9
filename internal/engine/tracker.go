package engine

import (
	"sort"

	"github.com/piwi3910/anchorage/internal/model"
)

// placement is the per-designation counter pair.
type placement struct {
	placed int
	total  int
}

// PlacementTracker counts, per designation, how many vessels sit inside
// the anchorage. Counts are always recomputed from scratch.
type PlacementTracker struct {
	entries map[string]placement
}

func NewPlacementTracker() *PlacementTracker {
	return &PlacementTracker{entries: make(map[string]placement)}
}

// Initialize clears all entries and seeds one per designated fleet.
// Fleets without a designation are not tracked.
func (t *PlacementTracker) Initialize(fleets []model.Fleet) {
	clear(t.entries)
	for _, f := range fleets {
		if f.Designation == "" {
			continue
		}
		t.entries[f.Designation] = placement{placed: 0, total: f.Count}
	}
}

// Update recounts placed vessels. Vessels whose designation is not tracked
// are ignored; unknown designations are never added.
func (t *PlacementTracker) Update(all []*model.Vessel, a *model.Anchorage, checker ContainmentTester) {
	if a == nil || checker == nil {
		return
	}
	for d, e := range t.entries {
		e.placed = 0
		t.entries[d] = e
	}
	for _, v := range all {
		if v == nil || v.Designation == "" {
			continue
		}
		e, ok := t.entries[v.Designation]
		if !ok {
			continue
		}
		if checker.IsInAnchorage(v, a) {
			e.placed++
			t.entries[v.Designation] = e
		}
	}
}

// TrackingInfo returns a copy of the counts keyed by designation.
func (t *PlacementTracker) TrackingInfo() map[string]model.TrackingEntry {
	info := make(map[string]model.TrackingEntry, len(t.entries))
	for d, e := range t.entries {
		info[d] = model.TrackingEntry{Designation: d, Placed: e.placed, Total: e.total}
	}
	return info
}

// Entries returns the counts sorted by designation.
func (t *PlacementTracker) Entries() []model.TrackingEntry {
	entries := make([]model.TrackingEntry, 0, len(t.entries))
	for d, e := range t.entries {
		entries = append(entries, model.TrackingEntry{Designation: d, Placed: e.placed, Total: e.total})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Designation < entries[j].Designation
	})
	return entries
}

// AllPlaced reports whether every tracked designation is complete.
// With nothing tracked there is nothing to complete, so it returns false.
func (t *PlacementTracker) AllPlaced() bool {
	if len(t.entries) == 0 {
		return false
	}
	for _, e := range t.entries {
		if e.placed < e.total {
			return false
		}
	}
	return true
}
