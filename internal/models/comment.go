package model

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	IssueID   string         `gorm:"size:36;not null;index" json:"issue_id"`
	AuthorID  string         `gorm:"size:36;not null" json:"author_id"`
	Body      string         `gorm:"not null" json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type IssueWatcher struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	IssueID   string    `gorm:"size:36;not null;uniqueIndex:idx_issue_watcher" json:"issue_id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_issue_watcher" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
