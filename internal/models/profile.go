package model

import "time"

// NotificationPrefs holds per-user delivery toggles. Nil means the
// user never touched the toggle, which counts as enabled.
type NotificationPrefs struct {
	Email         *bool `json:"email,omitempty"`
	InApp         *bool `json:"in_app,omitempty"`
	Assignments   *bool `json:"assignments,omitempty"`
	StatusChanges *bool `json:"status_changes,omitempty"`
	Comments      *bool `json:"comments,omitempty"`
	Mentions      *bool `json:"mentions,omitempty"`
}

func prefEnabled(p *bool) bool {
	return p == nil || *p
}

func (p NotificationPrefs) EmailEnabled() bool         { return prefEnabled(p.Email) }
func (p NotificationPrefs) InAppEnabled() bool         { return prefEnabled(p.InApp) }
func (p NotificationPrefs) AssignmentsEnabled() bool   { return prefEnabled(p.Assignments) }
func (p NotificationPrefs) StatusChangesEnabled() bool { return prefEnabled(p.StatusChanges) }
func (p NotificationPrefs) CommentsEnabled() bool      { return prefEnabled(p.Comments) }
func (p NotificationPrefs) MentionsEnabled() bool      { return prefEnabled(p.Mentions) }

type Profile struct {
	ID          string            `gorm:"primaryKey;size:36" json:"id"`
	Email       string            `gorm:"not null;uniqueIndex" json:"email"`
	DisplayName string            `json:"display_name"`
	FullName    string            `json:"full_name"`
	AvatarPath  *string           `json:"avatar_path,omitempty"`
	APIToken    string            `gorm:"size:64;uniqueIndex" json:"-"`
	IsActive    bool              `gorm:"not null;default:true" json:"is_active"`
	Prefs       NotificationPrefs `gorm:"embedded;embeddedPrefix:pref_" json:"notification_prefs"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
