package scheduling

import (
	"testing"

	"confprogram/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConflicts(t *testing.T) {
	pairs := FindOverlaps([]Item{
		item("x", "09:00", "10:00"),
		item("y", "09:30", "10:30"),
	})
	require.Len(t, pairs, 1)

	conflicts := BuildConflicts(domain.ConflictSessionOverlap, "venue-1", "Main Hall", pairs)
	require.Len(t, conflicts, 1)

	c := conflicts[0]
	assert.Equal(t, domain.ConflictSessionOverlap, c.Type)
	assert.Equal(t, "venue-1", c.ResourceID)
	assert.Equal(t, "Main Hall", c.ResourceName)
	assert.Equal(t, "x", c.FirstID)
	assert.Equal(t, "Session x", c.FirstTitle)
	assert.Equal(t, "y", c.SecondID)
	assert.Equal(t, 30, c.OverlapMinutes)
	assert.Contains(t, c.Message, "30 minutes")
	assert.Contains(t, c.Message, "Main Hall")
}

func TestBuildConflicts_EmptyPairs(t *testing.T) {
	conflicts := BuildConflicts(domain.ConflictPresentationOverlap, "sess-1", "Opening Keynote", nil)
	require.NotNil(t, conflicts)
	assert.Empty(t, conflicts)
}

func TestBuildConflicts_PresentationFlavor(t *testing.T) {
	pairs := FindOverlaps([]Item{
		{ID: "p1", Title: "Talk A", Start: tod("14:00"), End: tod("14:45")},
		{ID: "p2", Title: "Talk B", Start: tod("14:30"), End: tod("15:00")},
	})
	conflicts := BuildConflicts(domain.ConflictPresentationOverlap, "sess-9", "Track: Cloud", pairs)
	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictPresentationOverlap, conflicts[0].Type)
	assert.Equal(t, 15, conflicts[0].OverlapMinutes)
}

func tod(s string) *domain.TimeOfDay {
	t := domain.MustTimeOfDay(s)
	return &t
}
