package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	model "sprint-board-system.com/sprint-board-system/internal/models"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"
	"sprint-board-system.com/sprint-board-system/internal/workflow"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

// IssueService orchestrates issue mutations: it validates transitions,
// persists the change, diffs old against new and hands the diff to the
// activity log and notification fan-out. Side effects run after the
// persist and are best-effort.
type IssueService struct {
	issues   *repository.IssueRepository
	projects *repository.ProjectRepository
	columns  *repository.BoardColumnRepository
	watchers *repository.WatcherRepository
	activity *ActivityService
	notifier *NotificationService
}

func NewIssueService(
	issues *repository.IssueRepository,
	projects *repository.ProjectRepository,
	columns *repository.BoardColumnRepository,
	watchers *repository.WatcherRepository,
	activity *ActivityService,
	notifier *NotificationService,
) *IssueService {
	return &IssueService{
		issues:   issues,
		projects: projects,
		columns:  columns,
		watchers: watchers,
		activity: activity,
		notifier: notifier,
	}
}

func (s *IssueService) Create(ctx context.Context, actor *model.Profile, projectID string, req *dto.CreateIssueRequest) (*model.Issue, error) {
	if err := requireProjectMember(ctx, s.projects, projectID, actor.ID); err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	column, err := s.resolveCreateColumn(ctx, projectID, req.ColumnID)
	if err != nil {
		return nil, err
	}

	order, err := s.issues.NextBoardOrder(ctx, column.ID)
	if err != nil {
		return nil, err
	}

	seq, err := s.projects.NextIssueSeq(ctx, projectID)
	if err != nil {
		return nil, err
	}

	reporter := actor.ID
	if req.ReporterID != nil && *req.ReporterID != "" {
		reporter = *req.ReporterID
	}

	priority := req.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}

	issue := &model.Issue{
		ProjectID:     projectID,
		SprintID:      optionalID(req.SprintID),
		ParentIssueID: optionalID(req.ParentIssueID),
		ColumnID:      &column.ID,
		IssueKey:      fmt.Sprintf("%s-%d", project.Key, seq),
		IssueType:     req.IssueType,
		Summary:       req.Summary,
		Description:   req.Description,
		Status:        column.Status,
		Priority:      priority,
		AssigneeID:    optionalID(req.AssigneeID),
		ReporterID:    &reporter,
		StoryPoints:   req.StoryPoints,
		DueDate:       req.DueDate,
		BoardOrder:    order,
	}

	created, err := s.issues.Create(ctx, issue)
	if err != nil {
		return nil, err
	}

	s.activity.LogActivity(ctx, created.ID, actor.ID, constants.ActionIssueCreated, nil, nil, nil)

	if created.AssigneeID != nil && *created.AssigneeID != actor.ID {
		s.notifier.NotifyBatch(ctx, []string{*created.AssigneeID},
			constants.NotificationIssueAssigned,
			fmt.Sprintf("You were assigned %s", created.IssueKey),
			created.Summary,
			&created.ID, &created.ProjectID)
	}

	return created, nil
}

// resolveCreateColumn picks the explicit column or the project's
// lowest-position todo column.
func (s *IssueService) resolveCreateColumn(ctx context.Context, projectID string, columnID *string) (*model.BoardColumn, error) {
	if columnID != nil && *columnID != "" {
		column, err := s.columns.FindByID(ctx, *columnID)
		if err != nil {
			return nil, err
		}
		if column.ProjectID != projectID {
			return nil, apperrors.ErrColumnNotFound
		}
		return column, nil
	}

	columns, err := s.columns.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for i := range columns {
		if columns[i].Status == constants.StatusTodo {
			return &columns[i], nil
		}
	}
	return nil, apperrors.ErrColumnNotFound
}

func (s *IssueService) Get(ctx context.Context, actor *model.Profile, issueID string) (*model.Issue, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return nil, err
	}
	return issue, nil
}

type fieldDiff struct {
	name     string
	oldValue *string
	newValue *string
}

// Update applies a partial patch. A status change is validated against
// the transition table before anything is written; an illegal edge
// fails the whole update with no partial application.
func (s *IssueService) Update(ctx context.Context, actor *model.Profile, issueID string, req *dto.UpdateIssueRequest) (*model.Issue, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return nil, err
	}

	updated := *issue
	updates := map[string]interface{}{}
	var diffs []fieldDiff

	if req.Summary != nil && *req.Summary != issue.Summary {
		updates["summary"] = *req.Summary
		diffs = append(diffs, fieldDiff{"summary", strPtr(issue.Summary), req.Summary})
		updated.Summary = *req.Summary
	}
	if req.Description != nil && *req.Description != issue.Description {
		updates["description"] = *req.Description
		diffs = append(diffs, fieldDiff{"description", strPtr(issue.Description), req.Description})
		updated.Description = *req.Description
	}

	statusChanged := false
	if req.Status != nil && *req.Status != issue.Status {
		if !workflow.IsValidTransition(issue.Status, *req.Status) {
			return nil, apperrors.ErrInvalidTransition
		}
		updates["status"] = *req.Status
		diffs = append(diffs, fieldDiff{"status", strPtr(string(issue.Status)), strPtr(string(*req.Status))})
		updated.Status = *req.Status
		statusChanged = true

		// resolvedAt is set exactly on the edge into done and is
		// never cleared afterwards.
		if *req.Status == constants.StatusDone && issue.Status != constants.StatusDone {
			now := time.Now().UTC()
			updates["resolved_at"] = now
			updated.ResolvedAt = &now
		}
	}

	if req.Priority != nil && *req.Priority != issue.Priority {
		updates["priority"] = *req.Priority
		diffs = append(diffs, fieldDiff{"priority", strPtr(string(issue.Priority)), strPtr(string(*req.Priority))})
		updated.Priority = *req.Priority
	}

	assigneeChanged := false
	if req.AssigneeID != nil {
		newAssignee := optionalID(req.AssigneeID)
		if !sameID(newAssignee, issue.AssigneeID) {
			updates["assignee_id"] = newAssignee
			diffs = append(diffs, fieldDiff{"assigneeId", issue.AssigneeID, newAssignee})
			updated.AssigneeID = newAssignee
			assigneeChanged = true
		}
	}
	if req.ReporterID != nil {
		newReporter := optionalID(req.ReporterID)
		if !sameID(newReporter, issue.ReporterID) {
			updates["reporter_id"] = newReporter
			diffs = append(diffs, fieldDiff{"reporterId", issue.ReporterID, newReporter})
			updated.ReporterID = newReporter
		}
	}
	if req.SprintID != nil {
		newSprint := optionalID(req.SprintID)
		if !sameID(newSprint, issue.SprintID) {
			updates["sprint_id"] = newSprint
			diffs = append(diffs, fieldDiff{"sprintId", issue.SprintID, newSprint})
			updated.SprintID = newSprint
		}
	}
	if req.StoryPoints != nil && (issue.StoryPoints == nil || *issue.StoryPoints != *req.StoryPoints) {
		updates["story_points"] = *req.StoryPoints
		diffs = append(diffs, fieldDiff{"storyPoints", intPtrStr(issue.StoryPoints), intPtrStr(req.StoryPoints)})
		updated.StoryPoints = req.StoryPoints
	}
	if req.DueDate != nil && (issue.DueDate == nil || !issue.DueDate.Equal(*req.DueDate)) {
		updates["due_date"] = *req.DueDate
		diffs = append(diffs, fieldDiff{"dueDate", timePtrStr(issue.DueDate), timePtrStr(req.DueDate)})
		updated.DueDate = req.DueDate
	}

	if len(updates) == 0 {
		return issue, nil
	}

	updated.Version = issue.Version
	if err := s.issues.UpdateFields(ctx, &updated, updates); err != nil {
		return nil, err
	}

	for _, d := range diffs {
		name := d.name
		s.activity.LogActivity(ctx, updated.ID, actor.ID, constants.ActionIssueUpdated, &name, d.oldValue, d.newValue)
	}

	if assigneeChanged && updated.AssigneeID != nil {
		s.notifier.NotifyBatch(ctx, []string{*updated.AssigneeID},
			constants.NotificationIssueAssigned,
			fmt.Sprintf("You were assigned %s", updated.IssueKey),
			updated.Summary,
			&updated.ID, &updated.ProjectID)
	}

	if statusChanged {
		recipients := dedupIDs(updated.ReporterID, updated.AssigneeID)
		s.notifier.NotifyBatch(ctx, recipients,
			constants.NotificationStatusChanged,
			fmt.Sprintf("%s moved to %s", updated.IssueKey, updated.Status),
			fmt.Sprintf("%s changed from %s to %s", updated.IssueKey, issue.Status, updated.Status),
			&updated.ID, &updated.ProjectID)
	}

	return &updated, nil
}

// Delete is a soft delete; rows referenced by comments, activity and
// attachments are never removed.
func (s *IssueService) Delete(ctx context.Context, actor *model.Profile, issueID string) error {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return err
	}

	if err := s.issues.SoftDelete(ctx, issueID); err != nil {
		return err
	}

	s.activity.LogActivity(ctx, issueID, actor.ID, constants.ActionIssueDeleted, nil, nil, nil)
	return nil
}

func (s *IssueService) Backlog(ctx context.Context, actor *model.Profile, projectID string) ([]model.Issue, error) {
	if err := requireProjectMember(ctx, s.projects, projectID, actor.ID); err != nil {
		return nil, err
	}
	return s.issues.ListBacklog(ctx, projectID)
}

func (s *IssueService) ListActivity(ctx context.Context, actor *model.Profile, issueID string) ([]model.ActivityLog, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return nil, err
	}
	return s.activity.ListByIssue(ctx, issueID)
}

// Watch subscribes the actor to an issue's comment notifications.
// Watching twice is a no-op.
func (s *IssueService) Watch(ctx context.Context, actor *model.Profile, issueID string) error {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return err
	}
	return s.watchers.Add(ctx, issueID, actor.ID)
}

func (s *IssueService) Unwatch(ctx context.Context, actor *model.Profile, issueID string) error {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return err
	}
	return s.watchers.Remove(ctx, issueID, actor.ID)
}

func intPtrStr(p *int) *string {
	if p == nil {
		return nil
	}
	return strPtr(strconv.Itoa(*p))
}

func timePtrStr(p *time.Time) *string {
	if p == nil {
		return nil
	}
	return strPtr(p.UTC().Format(time.RFC3339))
}
