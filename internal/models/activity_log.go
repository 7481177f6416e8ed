package model

import (
	"time"

	"sprint-board-system.com/sprint-board-system/internal/constants"
)

// ActivityLog rows are append-only; they are never updated or deleted.
type ActivityLog struct {
	ID         string               `gorm:"primaryKey;size:36" json:"id"`
	IssueID    string               `gorm:"size:36;not null;index" json:"issue_id"`
	UserID     string               `gorm:"size:36;not null" json:"user_id"`
	ActionType constants.ActionType `gorm:"type:varchar(30);not null" json:"action_type"`
	FieldName  *string              `gorm:"size:50" json:"field_name,omitempty"`
	OldValue   *string              `json:"old_value,omitempty"`
	NewValue   *string              `json:"new_value,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}
