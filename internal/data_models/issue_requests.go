package dto

import (
	"time"

	"sprint-board-system.com/sprint-board-system/internal/constants"
)

type CreateIssueRequest struct {
	Summary       string                  `json:"summary"`
	Description   string                  `json:"description"`
	IssueType     constants.IssueType     `json:"issue_type"`
	Priority      constants.IssuePriority `json:"priority"`
	AssigneeID    *string                 `json:"assignee_id"`
	ReporterID    *string                 `json:"reporter_id"`
	SprintID      *string                 `json:"sprint_id"`
	ParentIssueID *string                 `json:"parent_issue_id"`
	ColumnID      *string                 `json:"column_id"`
	StoryPoints   *int                    `json:"story_points"`
	DueDate       *time.Time              `json:"due_date"`
}

// UpdateIssueRequest is a partial patch: nil means "leave unchanged".
// For the nullable reference fields an empty string clears the value.
type UpdateIssueRequest struct {
	Summary     *string                  `json:"summary"`
	Description *string                  `json:"description"`
	Status      *constants.IssueStatus   `json:"status"`
	Priority    *constants.IssuePriority `json:"priority"`
	AssigneeID  *string                  `json:"assignee_id"`
	ReporterID  *string                  `json:"reporter_id"`
	SprintID    *string                  `json:"sprint_id"`
	StoryPoints *int                     `json:"story_points"`
	DueDate     *time.Time               `json:"due_date"`
}

type MoveIssueRequest struct {
	ColumnID string `json:"column_id"`
	Position int    `json:"position"`
}
