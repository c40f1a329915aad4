package game

import (
	"testing"
	"time"

	"github.com/milestone-mania/game-api/internal/domain/milestone"
)

func rowsFor(dates ...time.Time) []GameMilestone {
	items := make([]milestone.Milestone, 0, len(dates))
	for i, d := range dates {
		items = append(items, milestone.Milestone{ID: uint(i + 1), ActualDate: d})
	}
	return BuildRows(items)
}

func TestCanonicalizeIsStable(t *testing.T) {
	same := milestone.Date(1950, time.May, 5)
	in := []milestone.Milestone{
		{ID: 10, ActualDate: milestone.Date(2000, time.January, 1)},
		{ID: 20, ActualDate: same},
		{ID: 30, ActualDate: milestone.Date(1800, time.January, 1)},
		{ID: 40, ActualDate: same},
	}

	got := Canonicalize(in)
	want := []uint{30, 20, 40, 10}
	for i, m := range got {
		if m.ID != want[i] {
			t.Fatalf("Canonicalize order = %v, want %v", ids(got), want)
		}
	}
	if in[0].ID != 10 {
		t.Error("Canonicalize must not reorder its input")
	}
}

func ids(items []milestone.Milestone) []uint {
	out := make([]uint, 0, len(items))
	for _, m := range items {
		out = append(out, m.ID)
	}
	return out
}

func TestIsChronological(t *testing.T) {
	rows := rowsFor(
		milestone.Date(1900, time.January, 1),
		milestone.Date(1950, time.May, 5),
		milestone.Date(1950, time.May, 5),
		milestone.Date(1960, time.January, 1),
		milestone.Date(1970, time.January, 1),
	)

	tests := []struct {
		name      string
		submitted []uint
		want      bool
	}{
		{name: "canonical", submitted: []uint{1, 2, 3, 4, 5}, want: true},
		{name: "equal dates swapped", submitted: []uint{1, 3, 2, 4, 5}, want: true},
		{name: "reversed", submitted: []uint{5, 4, 3, 2, 1}, want: false},
		{name: "last two swapped", submitted: []uint{1, 2, 3, 5, 4}, want: false},
		{name: "unknown id", submitted: []uint{1, 2, 3, 4, 99}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsChronological(rows, tt.submitted); got != tt.want {
				t.Errorf("IsChronological(%v) = %v, want %v", tt.submitted, got, tt.want)
			}
		})
	}
}

func TestSameMilestones(t *testing.T) {
	rows := rowsFor(
		milestone.Date(1900, time.January, 1),
		milestone.Date(1910, time.January, 1),
		milestone.Date(1920, time.January, 1),
		milestone.Date(1930, time.January, 1),
		milestone.Date(1940, time.January, 1),
	)

	tests := []struct {
		name      string
		submitted []uint
		want      bool
	}{
		{name: "permutation", submitted: []uint{5, 3, 1, 2, 4}, want: true},
		{name: "duplicate", submitted: []uint{1, 1, 2, 3, 4}, want: false},
		{name: "foreign", submitted: []uint{1, 2, 3, 4, 6}, want: false},
		{name: "short", submitted: []uint{1, 2, 3, 4}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameMilestones(rows, tt.submitted); got != tt.want {
				t.Errorf("SameMilestones(%v) = %v, want %v", tt.submitted, got, tt.want)
			}
		})
	}
}

func TestBuildRowsAssignsPositions(t *testing.T) {
	rows := rowsFor(
		milestone.Date(1900, time.January, 1),
		milestone.Date(1910, time.January, 1),
		milestone.Date(1920, time.January, 1),
	)
	for i, row := range rows {
		if row.CorrectOrder != i+1 {
			t.Errorf("row %d has position %d", i, row.CorrectOrder)
		}
	}
}
