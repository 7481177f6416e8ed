package model

import (
	"time"

	"sprint-board-system.com/sprint-board-system/internal/constants"
)

type Sprint struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	ProjectID   string                 `gorm:"size:36;not null;index" json:"project_id"`
	Name        string                 `gorm:"not null" json:"name"`
	Goal        string                 `json:"goal,omitempty"`
	Status      constants.SprintStatus `gorm:"type:varchar(20);not null" json:"status"`
	StartDate   *time.Time             `json:"start_date,omitempty"`
	EndDate     *time.Time             `json:"end_date,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	Version     uint                   `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
