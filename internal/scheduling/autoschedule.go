package scheduling

import "confprogram/internal/domain"

// VenueOption is one venue available to the auto-scheduler, in the
// order venues should be tried.
type VenueOption struct {
	ID       string
	Name     string
	Capacity int
}

// Assignment is one committed placement from an auto-schedule run.
type Assignment struct {
	Item      Item
	VenueID   string
	VenueName string
	Slot      domain.TimeSlot
}

// Unplaced is an item the run could not place, with the reason.
type Unplaced struct {
	Item   Item
	Reason string
}

// Result is the outcome of one AutoSchedule run.
type Result struct {
	Assignments []Assignment
	Unplaced    []Unplaced
}

// ScheduledCount returns the number of items the run placed.
func (r Result) ScheduledCount() int { return len(r.Assignments) }

// AutoSchedule places unscheduled items into the first non-conflicting
// (venue, slot) combination, trying venues and slots in the given
// fixed order. It is a first-fit heuristic, not a solver: no
// backtracking, no capacity matching, no gap minimization. Placements
// made earlier in the same run count as occupied, so a single run
// never introduces conflicts of its own. Items that fit nowhere are
// returned in Unplaced with ReasonNoSlotAvailable rather than being
// silently skipped.
//
// scheduled maps venue ID to that venue's already-committed items; the
// map is mutated in place as items are placed. The caller owns
// persisting the returned assignments.
func AutoSchedule(unscheduled []Item, venues []VenueOption, slots []domain.TimeSlot, scheduled map[string][]Item) Result {
	var res Result
	for _, item := range unscheduled {
		placed := false
	venueLoop:
		for _, venue := range venues {
			for _, slot := range slots {
				if slotTaken(slot, scheduled[venue.ID]) {
					continue
				}
				start, end := slot.Start, slot.End
				item.Start, item.End = &start, &end
				item.ResourceID = venue.ID
				scheduled[venue.ID] = append(scheduled[venue.ID], item)
				res.Assignments = append(res.Assignments, Assignment{
					Item:      item,
					VenueID:   venue.ID,
					VenueName: venue.Name,
					Slot:      slot,
				})
				placed = true
				break venueLoop
			}
		}
		if !placed {
			res.Unplaced = append(res.Unplaced, Unplaced{
				Item:   item,
				Reason: domain.ReasonNoSlotAvailable,
			})
		}
	}
	return res
}

// slotTaken reports whether the candidate slot intersects any already
// scheduled item of the venue. Items missing either bound are ignored.
func slotTaken(slot domain.TimeSlot, existing []Item) bool {
	for _, e := range existing {
		if e.Start == nil || e.End == nil {
			continue
		}
		if Overlaps(slot.Start.Minutes(), slot.End.Minutes(), e.Start.Minutes(), e.End.Minutes()) {
			return true
		}
	}
	return false
}
