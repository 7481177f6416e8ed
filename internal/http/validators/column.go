package validators

import (
	"strings"

	"sprint-board-system.com/sprint-board-system/internal/constants"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

func ValidateCreateColumnRequest(r *dto.CreateColumnRequest) error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name is required")
	}
	if !constants.ValidIssueStatus(r.Status) {
		return invalid("status must be one of todo, inprogress, done")
	}
	return nil
}

func ValidateUpdateColumnRequest(r *dto.UpdateColumnRequest) error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return invalid("name must not be empty")
	}
	if r.Position != nil && *r.Position < 0 {
		return invalid("position must not be negative")
	}
	return nil
}
