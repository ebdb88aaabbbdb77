// Package scheduling holds the pure schedule algorithms: overlap
// detection between time-bounded items, conflict record building, the
// slot grid, and the greedy auto-scheduler. Nothing in this package
// touches storage; services load a snapshot, call in, and commit the
// results themselves.
package scheduling

import "confprogram/internal/domain"

// Item is one time-bounded schedule entry scoped to a resource (a
// venue for sessions, a parent session for presentations). Items with
// a nil Start or End are treated as unscheduled and never take part in
// overlap detection.
type Item struct {
	ID         string
	Title      string
	ResourceID string
	Start      *domain.TimeOfDay
	End        *domain.TimeOfDay
	SortOrder  int
}

// scheduledOnly filters out items missing either time bound.
func scheduledOnly(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Start != nil && it.End != nil {
			out = append(out, it)
		}
	}
	return out
}

// Pair is one overlapping pair, ordered so that First starts no later
// than Second.
type Pair struct {
	First  Item
	Second Item
}

// OverlapMinutes returns the whole minutes the pair's intervals share:
// the earlier end minus the later start, clamped to zero.
func (p Pair) OverlapMinutes() int {
	if p.First.Start == nil || p.First.End == nil || p.Second.Start == nil || p.Second.End == nil {
		return 0
	}
	earlierEnd := *p.First.End
	if p.Second.End.Before(earlierEnd) {
		earlierEnd = *p.Second.End
	}
	laterStart := *p.First.Start
	if p.Second.Start.After(laterStart) {
		laterStart = *p.Second.Start
	}
	overlap := earlierEnd.Minutes() - laterStart.Minutes()
	if overlap < 0 {
		return 0
	}
	return overlap
}
