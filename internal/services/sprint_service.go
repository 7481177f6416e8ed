package services

import (
	"context"
	"fmt"
	"time"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	model "sprint-board-system.com/sprint-board-system/internal/models"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

// SprintService enforces the sprint lifecycle: pending -> active ->
// completed, with at most one active sprint per project.
type SprintService struct {
	sprints  *repository.SprintRepository
	issues   *repository.IssueRepository
	projects *repository.ProjectRepository
	notifier *NotificationService
}

func NewSprintService(
	sprints *repository.SprintRepository,
	issues *repository.IssueRepository,
	projects *repository.ProjectRepository,
	notifier *NotificationService,
) *SprintService {
	return &SprintService{
		sprints:  sprints,
		issues:   issues,
		projects: projects,
		notifier: notifier,
	}
}

func (s *SprintService) Create(ctx context.Context, actor *model.Profile, projectID string, req *dto.CreateSprintRequest) (*model.Sprint, error) {
	if err := requireProjectMember(ctx, s.projects, projectID, actor.ID); err != nil {
		return nil, err
	}

	sprint := &model.Sprint{
		ProjectID: projectID,
		Name:      req.Name,
		Goal:      req.Goal,
	}
	return s.sprints.Create(ctx, sprint)
}

func (s *SprintService) List(ctx context.Context, actor *model.Profile, projectID string) ([]model.Sprint, error) {
	if err := requireProjectMember(ctx, s.projects, projectID, actor.ID); err != nil {
		return nil, err
	}
	return s.sprints.ListByProject(ctx, projectID)
}

func (s *SprintService) Get(ctx context.Context, actor *model.Profile, sprintID string) (*model.Sprint, []model.Issue, error) {
	sprint, err := s.sprints.FindByID(ctx, sprintID)
	if err != nil {
		return nil, nil, err
	}
	if err := requireProjectMember(ctx, s.projects, sprint.ProjectID, actor.ID); err != nil {
		return nil, nil, err
	}
	issues, err := s.issues.ListBySprint(ctx, sprintID)
	if err != nil {
		return nil, nil, err
	}
	return sprint, issues, nil
}

// Start activates a pending sprint. It fails when the sprint is
// already active or when any other sprint in the project is active;
// the conditional update in the repository closes the race between
// the check and the write.
func (s *SprintService) Start(ctx context.Context, actor *model.Profile, sprintID string, req *dto.StartSprintRequest) (*model.Sprint, error) {
	sprint, err := s.sprints.FindByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, sprint.ProjectID, actor.ID); err != nil {
		return nil, err
	}

	if sprint.Status == constants.SprintActive {
		return nil, apperrors.ErrSprintAlreadyActive
	}
	if sprint.Status != constants.SprintPending {
		return nil, apperrors.ErrSprintNotActive
	}

	active, err := s.sprints.FindActiveByProject(ctx, sprint.ProjectID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperrors.ErrActiveSprintExists
	}

	// an active sprint always records when it began
	startDate := req.StartDate
	if startDate == nil {
		now := time.Now().UTC()
		startDate = &now
	}

	if err := s.sprints.Activate(ctx, sprint, startDate, req.EndDate); err != nil {
		return nil, err
	}

	memberIDs, err := s.projects.ListMemberIDs(ctx, sprint.ProjectID)
	if err == nil {
		recipients := make([]string, 0, len(memberIDs))
		for _, id := range memberIDs {
			if id != actor.ID {
				recipients = append(recipients, id)
			}
		}
		s.notifier.NotifyBatch(ctx, recipients,
			constants.NotificationSprintStarted,
			fmt.Sprintf("Sprint %q started", sprint.Name),
			sprint.Goal,
			nil, &sprint.ProjectID)
	}

	return sprint, nil
}

// Complete finishes an active sprint. Issues still open move to the
// given pending sprint or back to the backlog; done issues stay with
// the completed sprint for historical reporting.
func (s *SprintService) Complete(ctx context.Context, actor *model.Profile, sprintID string, req *dto.CompleteSprintRequest) (*model.Sprint, error) {
	sprint, err := s.sprints.FindByID(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, sprint.ProjectID, actor.ID); err != nil {
		return nil, err
	}

	if sprint.Status != constants.SprintActive {
		return nil, apperrors.ErrSprintNotActive
	}

	moveTo := optionalID(req.MoveToSprintID)
	if moveTo != nil {
		target, err := s.sprints.FindByID(ctx, *moveTo)
		if err != nil {
			return nil, apperrors.ErrInvalidMoveTarget
		}
		if target.ID == sprint.ID ||
			target.ProjectID != sprint.ProjectID ||
			target.Status != constants.SprintPending {
			return nil, apperrors.ErrInvalidMoveTarget
		}
	}

	if err := s.sprints.Complete(ctx, sprint, moveTo); err != nil {
		return nil, err
	}
	return sprint, nil
}
