package model

import (
	"time"

	"sprint-board-system.com/sprint-board-system/internal/constants"
)

type Notification struct {
	ID               string                     `gorm:"primaryKey;size:36" json:"id"`
	RecipientID      string                     `gorm:"size:36;not null;index" json:"recipient_id"`
	Type             constants.NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title            string                     `gorm:"not null" json:"title"`
	Message          string                     `json:"message"`
	RelatedIssueID   *string                    `gorm:"size:36" json:"related_issue_id,omitempty"`
	RelatedProjectID *string                    `gorm:"size:36" json:"related_project_id,omitempty"`
	IsRead           bool                       `gorm:"not null;default:false" json:"is_read"`
	CreatedAt        time.Time                  `json:"created_at"`
}
