package model

import (
	"time"

	"gorm.io/gorm"

	"sprint-board-system.com/sprint-board-system/internal/constants"
)

type Issue struct {
	ID            string                  `gorm:"primaryKey;size:36" json:"id"`
	ProjectID     string                  `gorm:"size:36;not null;index;uniqueIndex:idx_issues_project_key" json:"project_id"`
	SprintID      *string                 `gorm:"size:36;index" json:"sprint_id,omitempty"`
	ParentIssueID *string                 `gorm:"size:36" json:"parent_issue_id,omitempty"`
	ColumnID      *string                 `gorm:"size:36;index" json:"column_id,omitempty"`
	IssueKey      string                  `gorm:"size:32;not null;uniqueIndex:idx_issues_project_key" json:"issue_key"`
	IssueType     constants.IssueType     `gorm:"type:varchar(20);not null" json:"issue_type"`
	Summary       string                  `gorm:"not null" json:"summary"`
	Description   string                  `json:"description,omitempty"`
	Status        constants.IssueStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority      constants.IssuePriority `gorm:"type:varchar(20);not null" json:"priority"`
	AssigneeID    *string                 `gorm:"size:36;index" json:"assignee_id,omitempty"`
	ReporterID    *string                 `gorm:"size:36" json:"reporter_id,omitempty"`
	StoryPoints   *int                    `json:"story_points,omitempty"`
	DueDate       *time.Time              `json:"due_date,omitempty"`
	BoardOrder    int                     `gorm:"not null;default:0" json:"board_order"`
	ResolvedAt    *time.Time              `json:"resolved_at,omitempty"`
	Version       uint                    `gorm:"not null;default:1" json:"version"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
	DeletedAt     gorm.DeletedAt          `gorm:"index" json:"-"`
}
