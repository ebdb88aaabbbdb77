package scheduling

import (
	"fmt"

	"confprogram/internal/domain"
)

// Working-day defaults for the auto-scheduler's candidate grid.
const (
	DefaultWindowStart = domain.TimeOfDay(8 * 60)  // 08:00
	DefaultWindowEnd   = domain.TimeOfDay(18 * 60) // 18:00
	DefaultSlotMinutes = 30
)

// BuildSlotGrid returns the fixed candidate slots between windowStart
// and windowEnd, stepping by stepMinutes. Only slots that fit entirely
// inside the window are produced; a trailing partial slot is dropped.
func BuildSlotGrid(windowStart, windowEnd domain.TimeOfDay, stepMinutes int) ([]domain.TimeSlot, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot minutes must be positive", domain.ErrInvalidInput)
	}
	if !windowStart.Before(windowEnd) {
		return nil, fmt.Errorf("%w: window start %s must be before window end %s",
			domain.ErrInvalidInput, windowStart, windowEnd)
	}
	var slots []domain.TimeSlot
	for t := windowStart; !t.Add(stepMinutes).After(windowEnd); t = t.Add(stepMinutes) {
		slots = append(slots, domain.TimeSlot{Start: t, End: t.Add(stepMinutes)})
	}
	return slots, nil
}
