package milestone

import "time"

// Milestone is a dated historical event in the catalog.
type Milestone struct {
	ID          uint
	Title       string
	Description string
	ActualDate  time.Time
}

// View is the client-facing projection of a Milestone. It carries no date so
// the answer to a game can never leak through a response.
type View struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// View projects the milestone without its date.
func (m Milestone) View() View {
	return View{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
	}
}

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameOrBefore compares two milestones by calendar day only.
func SameOrBefore(a, b Milestone) bool {
	ay, am, ad := a.ActualDate.Date()
	by, bm, bd := b.ActualDate.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad <= bd
}
