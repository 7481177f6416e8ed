package validators

import (
	"strings"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

func ValidateCreateSprintRequest(r *dto.CreateSprintRequest) error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name is required")
	}
	return nil
}

func ValidateStartSprintRequest(r *dto.StartSprintRequest) error {
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return invalid("end_date must not be before start_date")
	}
	return nil
}
