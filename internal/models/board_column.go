package model

import (
	"time"

	"sprint-board-system.com/sprint-board-system/internal/constants"
)

// BoardColumn is a board bucket. Its Status field is the status every
// issue dropped into the column inherits.
type BoardColumn struct {
	ID        string                `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string                `gorm:"size:36;not null;index" json:"project_id"`
	Name      string                `gorm:"not null" json:"name"`
	Status    constants.IssueStatus `gorm:"type:varchar(20);not null" json:"status"`
	Position  int                   `gorm:"not null;default:0" json:"position"`
	IsDefault bool                  `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}
