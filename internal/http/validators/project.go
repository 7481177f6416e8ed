package validators

import (
	"regexp"
	"strings"

	"sprint-board-system.com/sprint-board-system/internal/constants"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

var projectKeyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{1,9}$`)

func ValidateCreateProjectRequest(r *dto.CreateProjectRequest) error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name is required")
	}
	if !projectKeyPattern.MatchString(r.Key) {
		return invalid("key must be 2-10 alphanumeric characters starting with a letter")
	}
	return nil
}

func ValidateAddMemberRequest(r *dto.AddMemberRequest) error {
	if r.UserID == "" {
		return invalid("user_id is required")
	}
	if r.Role != "" && !constants.ValidMemberRole(r.Role) {
		return invalid("invalid role")
	}
	return nil
}

func ValidateCreateCommentRequest(r *dto.CreateCommentRequest) error {
	if strings.TrimSpace(r.Body) == "" {
		return invalid("body is required")
	}
	return nil
}
