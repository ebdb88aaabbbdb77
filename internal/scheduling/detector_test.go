package scheduling

import (
	"testing"

	"confprogram/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// item builds a scheduled test item; pass "" for either time to leave it nil.
func item(id, start, end string) Item {
	it := Item{ID: id, Title: "Session " + id, ResourceID: "venue-1"}
	if start != "" {
		t := domain.MustTimeOfDay(start)
		it.Start = &t
	}
	if end != "" {
		t := domain.MustTimeOfDay(end)
		it.End = &t
	}
	return it
}

func pairIDs(pairs []Pair) [][2]string {
	out := make([][2]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, [2]string{p.First.ID, p.Second.ID})
	}
	return out
}

func TestFindOverlaps(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  [][2]string
	}{
		{
			name:  "empty input",
			items: nil,
			want:  [][2]string{},
		},
		{
			name:  "single item",
			items: []Item{item("a", "09:00", "10:00")},
			want:  [][2]string{},
		},
		{
			name: "spillover pair",
			items: []Item{
				item("a", "09:00", "10:00"),
				item("b", "09:30", "10:30"),
			},
			want: [][2]string{{"a", "b"}},
		},
		{
			name: "back to back is not a conflict",
			items: []Item{
				item("a", "09:00", "10:00"),
				item("b", "10:00", "11:00"),
			},
			want: [][2]string{},
		},
		{
			name: "nested item caught",
			items: []Item{
				item("a", "09:00", "11:00"),
				item("b", "09:30", "10:00"),
			},
			want: [][2]string{{"a", "b"}},
		},
		{
			name: "long item spanning a non-adjacent one",
			items: []Item{
				item("a", "09:00", "12:00"),
				item("b", "09:15", "09:45"),
				item("c", "10:00", "11:00"),
			},
			// b and c do not overlap each other, but a spans both.
			want: [][2]string{{"a", "b"}, {"a", "c"}},
		},
		{
			name: "items with nil times are skipped",
			items: []Item{
				item("a", "09:00", "10:00"),
				item("b", "", ""),
				item("c", "09:30", "10:30"),
				item("d", "09:45", ""),
			},
			want: [][2]string{{"a", "c"}},
		},
		{
			name: "unsorted input",
			items: []Item{
				item("b", "09:30", "10:30"),
				item("a", "09:00", "10:00"),
			},
			want: [][2]string{{"a", "b"}},
		},
		{
			name: "gap between clusters",
			items: []Item{
				item("a", "09:00", "10:00"),
				item("b", "10:30", "11:30"),
				item("c", "11:00", "12:00"),
			},
			want: [][2]string{{"b", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindOverlaps(tt.items)
			assert.Equal(t, tt.want, pairIDs(got))
		})
	}
}

func TestFindOverlaps_Idempotent(t *testing.T) {
	items := []Item{
		item("a", "09:00", "11:00"),
		item("b", "09:30", "10:00"),
		item("c", "10:30", "12:00"),
	}
	first := FindOverlaps(items)
	second := FindOverlaps(items)
	require.Equal(t, first, second)
}

func TestFindAdjacentOverlaps_MissesSpannedOverlap(t *testing.T) {
	// The legacy detector only compares neighbours: a spans c, but b
	// sits between them in sort order without overlapping a, so the
	// a/c overlap goes unreported. FindOverlaps catches it.
	items := []Item{
		item("a", "09:00", "12:00"),
		item("b", "09:15", "09:45"),
		item("c", "10:00", "11:00"),
	}
	legacy := FindAdjacentOverlaps(items)
	assert.Equal(t, [][2]string{{"a", "b"}}, pairIDs(legacy))

	full := FindOverlaps(items)
	assert.Equal(t, [][2]string{{"a", "b"}, {"a", "c"}}, pairIDs(full))
}

func TestFindAdjacentOverlaps(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  [][2]string
	}{
		{
			name: "adjacent spillover",
			items: []Item{
				item("a", "09:00", "10:00"),
				item("b", "09:30", "10:30"),
			},
			want: [][2]string{{"a", "b"}},
		},
		{
			name: "back to back clean",
			items: []Item{
				item("a", "09:00", "10:00"),
				item("b", "10:00", "11:00"),
			},
			want: [][2]string{},
		},
		{
			name: "nil times excluded",
			items: []Item{
				item("a", "", ""),
				item("b", "09:00", "10:00"),
			},
			want: [][2]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pairIDs(FindAdjacentOverlaps(tt.items)))
		})
	}
}

func TestPair_OverlapMinutes(t *testing.T) {
	tests := []struct {
		name string
		a, b Item
		want int
	}{
		{
			name: "thirty minute spillover",
			a:    item("a", "09:00", "10:00"),
			b:    item("b", "09:30", "10:30"),
			want: 30,
		},
		{
			name: "nested interval bounded by inner duration",
			a:    item("a", "09:00", "11:00"),
			b:    item("b", "09:30", "10:00"),
			want: 30,
		},
		{
			name: "identical intervals",
			a:    item("a", "09:00", "10:00"),
			b:    item("b", "09:00", "10:00"),
			want: 60,
		},
		{
			name: "disjoint clamps to zero",
			a:    item("a", "09:00", "10:00"),
			b:    item("b", "11:00", "12:00"),
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pair{First: tt.a, Second: tt.b}
			got := p.OverlapMinutes()
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}
