package model

import "time"

type Attachment struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	IssueID     string    `gorm:"size:36;not null;index" json:"issue_id"`
	UploaderID  string    `gorm:"size:36;not null" json:"uploader_id"`
	FileName    string    `gorm:"not null" json:"file_name"`
	StoragePath string    `gorm:"not null" json:"storage_path"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
