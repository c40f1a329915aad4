package entities

import (
	"time"

	"github.com/milestone-mania/game-api/internal/domain/milestone"
)

// Milestone is the persisted catalog event.
type Milestone struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:varchar(1000);not null;default:''"`
	ActualDate  time.Time `gorm:"type:date;not null;index:idx_milestones_actual_date"`
	Version     int64     `gorm:"not null;default:0"`
}

func (Milestone) TableName() string {
	return "milestones"
}

// NewMilestone maps a domain milestone to its row.
func NewMilestone(m milestone.Milestone) Milestone {
	return Milestone{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ActualDate:  m.ActualDate,
	}
}

// ToDomain maps the row back to a domain milestone.
func (e Milestone) ToDomain() milestone.Milestone {
	y, mo, d := e.ActualDate.Date()
	return milestone.Milestone{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		ActualDate:  milestone.Date(y, mo, d),
	}
}
