package scheduling

import "sort"

// FindOverlaps reports every overlapping pair among items of one
// resource. Two items overlap when the earlier one's end is strictly
// after the later one's start ([start, end) intervals: back-to-back
// items do not conflict). Items missing a start or end time are
// skipped.
//
// The scan keeps an active set of items whose interval may still reach
// the current start position, so non-adjacent overlaps (an early
// long-running item spanning several later ones) are reported too.
// Input order does not matter; items are sorted by start internally.
// The function is pure: same input, same conflict set.
func FindOverlaps(items []Item) []Pair {
	sorted := scheduledOnly(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if *sorted[i].Start != *sorted[j].Start {
			return sorted[i].Start.Before(*sorted[j].Start)
		}
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	var pairs []Pair
	var active []Item
	for _, cur := range sorted {
		// Drop items that end at or before the current start; they
		// cannot overlap cur or anything after it.
		kept := active[:0]
		for _, a := range active {
			if a.End.After(*cur.Start) {
				kept = append(kept, a)
			}
		}
		active = kept
		for _, a := range active {
			pairs = append(pairs, Pair{First: a, Second: cur})
		}
		active = append(active, cur)
	}
	return pairs
}

// FindAdjacentOverlaps is the legacy detector: a linear scan that only
// compares neighbours in start-time order, reporting a pair when the
// earlier item's end is strictly after the next item's start. It
// misses overlaps where a non-overlapping item sits between two
// overlapping ones in sort order. Kept for callers that need parity
// with historical conflict output; FindOverlaps is the default.
func FindAdjacentOverlaps(items []Item) []Pair {
	sorted := scheduledOnly(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if *sorted[i].Start != *sorted[j].Start {
			return sorted[i].Start.Before(*sorted[j].Start)
		}
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	var pairs []Pair
	for i := 0; i+1 < len(sorted); i++ {
		a, b := sorted[i], sorted[i+1]
		if a.End.After(*b.Start) {
			pairs = append(pairs, Pair{First: a, Second: b})
		}
	}
	return pairs
}

// Overlaps reports whether two scheduled intervals intersect. Used by
// the auto-scheduler to test a candidate slot against existing items.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aEnd > bStart && bEnd > aStart
}
