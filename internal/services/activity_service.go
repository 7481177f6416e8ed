package services

import (
	"context"
	"log"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	model "sprint-board-system.com/sprint-board-system/internal/models"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"
)

// ActivityService appends field-level change records to an issue's
// history. Logging is best-effort: a failed append never aborts the
// mutation that triggered it.
type ActivityService struct {
	repo *repository.ActivityRepository
}

func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) LogActivity(ctx context.Context, issueID, userID string, action constants.ActionType, fieldName, oldValue, newValue *string) {
	entry := &model.ActivityLog{
		IssueID:    issueID,
		UserID:     userID,
		ActionType: action,
		FieldName:  fieldName,
		OldValue:   oldValue,
		NewValue:   newValue,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("activity log failed for issue %s (%s): %v", issueID, action, err)
	}
}

func (s *ActivityService) ListByIssue(ctx context.Context, issueID string) ([]model.ActivityLog, error) {
	return s.repo.ListByIssue(ctx, issueID)
}
