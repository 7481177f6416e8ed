package validators

import (
	"net/http"
	"strings"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

func invalid(message string) error {
	return &apperrors.Exception{Message: message, StatusCode: http.StatusBadRequest}
}

func validStoryPoints(p *int) bool {
	return p == nil || (*p >= 0 && *p <= 99)
}

func ValidateCreateIssueRequest(r *dto.CreateIssueRequest) error {
	if strings.TrimSpace(r.Summary) == "" {
		return invalid("summary is required")
	}
	if !constants.ValidIssueType(r.IssueType) {
		return invalid("issue_type must be one of story, task, bug, subtask")
	}
	if r.Priority != "" && !constants.ValidIssuePriority(r.Priority) {
		return invalid("invalid priority")
	}
	if !validStoryPoints(r.StoryPoints) {
		return invalid("story_points must be between 0 and 99")
	}
	return nil
}

func ValidateUpdateIssueRequest(r *dto.UpdateIssueRequest) error {
	if r.Summary != nil && strings.TrimSpace(*r.Summary) == "" {
		return invalid("summary must not be empty")
	}
	if r.Status != nil && !constants.ValidIssueStatus(*r.Status) {
		return invalid("invalid status")
	}
	if r.Priority != nil && !constants.ValidIssuePriority(*r.Priority) {
		return invalid("invalid priority")
	}
	if !validStoryPoints(r.StoryPoints) {
		return invalid("story_points must be between 0 and 99")
	}
	return nil
}

func ValidateMoveIssueRequest(r *dto.MoveIssueRequest) error {
	if r.ColumnID == "" {
		return invalid("column_id is required")
	}
	if r.Position < 0 {
		return invalid("position must not be negative")
	}
	return nil
}
