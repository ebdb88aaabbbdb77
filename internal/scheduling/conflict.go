package scheduling

import (
	"fmt"

	"confprogram/internal/domain"
)

// BuildConflicts turns raw overlap pairs into user-facing conflict
// records for one resource. The same routine serves both flavors
// (session-vs-session within a venue, presentation-vs-presentation
// within a session); only the conflict type and resource labels
// differ. No overlaps in, empty slice out.
func BuildConflicts(typ, resourceID, resourceName string, pairs []Pair) []domain.Conflict {
	conflicts := make([]domain.Conflict, 0, len(pairs))
	for _, p := range pairs {
		overlap := p.OverlapMinutes()
		conflicts = append(conflicts, domain.Conflict{
			Type:           typ,
			ResourceID:     resourceID,
			ResourceName:   resourceName,
			FirstID:        p.First.ID,
			FirstTitle:     p.First.Title,
			SecondID:       p.Second.ID,
			SecondTitle:    p.Second.Title,
			OverlapMinutes: overlap,
			Message: fmt.Sprintf("%q overlaps %q by %d minutes in %s",
				p.First.Title, p.Second.Title, overlap, resourceName),
		})
	}
	return conflicts
}
