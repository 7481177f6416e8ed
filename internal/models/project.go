package model

import (
	"time"

	"sprint-board-system.com/sprint-board-system/internal/constants"
)

type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Key         string    `gorm:"size:10;not null;uniqueIndex" json:"key"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `gorm:"size:36;not null" json:"owner_id"`
	IssueSeq    int       `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProjectMember struct {
	ID        string               `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string               `gorm:"size:36;not null;uniqueIndex:idx_project_member" json:"project_id"`
	UserID    string               `gorm:"size:36;not null;uniqueIndex:idx_project_member" json:"user_id"`
	Role      constants.MemberRole `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time            `json:"created_at"`
}
