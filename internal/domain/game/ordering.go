package game

import (
	"slices"

	"github.com/milestone-mania/game-api/internal/domain/milestone"
)

// Canonicalize returns the milestones in chronological order. Equal dates keep
// their input order.
func Canonicalize(items []milestone.Milestone) []milestone.Milestone {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b milestone.Milestone) int {
		return a.ActualDate.Compare(b.ActualDate)
	})
	return sorted
}

// BuildRows assigns positions 1..n to already ordered milestones.
func BuildRows(ordered []milestone.Milestone) []GameMilestone {
	rows := make([]GameMilestone, 0, len(ordered))
	for i, m := range ordered {
		rows = append(rows, GameMilestone{Milestone: m, CorrectOrder: i + 1})
	}
	return rows
}

// SameMilestones reports whether submitted is a permutation of the game's milestone ids.
func SameMilestones(rows []GameMilestone, submitted []uint) bool {
	if len(rows) != len(submitted) {
		return false
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.Milestone.ID]++
	}
	for _, id := range submitted {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}
	return true
}

// IsChronological reports whether submitted ids are in non-decreasing date
// order. Milestones sharing a calendar day may appear in either order.
func IsChronological(rows []GameMilestone, submitted []uint) bool {
	byID := make(map[uint]milestone.Milestone, len(rows))
	for _, row := range rows {
		byID[row.Milestone.ID] = row.Milestone
	}
	for i := 0; i+1 < len(submitted); i++ {
		current, ok := byID[submitted[i]]
		if !ok {
			return false
		}
		next, ok := byID[submitted[i+1]]
		if !ok {
			return false
		}
		if !milestone.SameOrBefore(current, next) {
			return false
		}
	}
	return true
}
