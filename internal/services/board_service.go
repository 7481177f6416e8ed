package services

import (
	"context"
	"time"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	model "sprint-board-system.com/sprint-board-system/internal/models"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

// BoardService owns column management and drag-and-drop ordering.
// Column placement is the authoritative board position; an issue
// dropped into a column inherits the column's status bucket without
// consulting the transition table.
type BoardService struct {
	columns  *repository.BoardColumnRepository
	issues   *repository.IssueRepository
	projects *repository.ProjectRepository
	activity *ActivityService
}

func NewBoardService(
	columns *repository.BoardColumnRepository,
	issues *repository.IssueRepository,
	projects *repository.ProjectRepository,
	activity *ActivityService,
) *BoardService {
	return &BoardService{
		columns:  columns,
		issues:   issues,
		projects: projects,
		activity: activity,
	}
}

// ColumnWithIssues is one board column with its ordered issues.
type ColumnWithIssues struct {
	model.BoardColumn
	Issues []model.Issue `json:"issues"`
}

func (s *BoardService) Snapshot(ctx context.Context, actor *model.Profile, projectID string) ([]ColumnWithIssues, error) {
	if err := requireProjectMember(ctx, s.projects, projectID, actor.ID); err != nil {
		return nil, err
	}

	columns, err := s.columns.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	board := make([]ColumnWithIssues, 0, len(columns))
	for _, column := range columns {
		issues, err := s.issues.ListByColumn(ctx, column.ID)
		if err != nil {
			return nil, err
		}
		board = append(board, ColumnWithIssues{BoardColumn: column, Issues: issues})
	}
	return board, nil
}

func (s *BoardService) CreateColumn(ctx context.Context, actor *model.Profile, projectID string, req *dto.CreateColumnRequest) (*model.BoardColumn, error) {
	if err := requireProjectMember(ctx, s.projects, projectID, actor.ID); err != nil {
		return nil, err
	}

	existing, err := s.columns.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	position := 0
	for _, c := range existing {
		if c.Position >= position {
			position = c.Position + 1
		}
	}

	return s.columns.Create(ctx, &model.BoardColumn{
		ProjectID: projectID,
		Name:      req.Name,
		Status:    req.Status,
		Position:  position,
	})
}

func (s *BoardService) UpdateColumn(ctx context.Context, actor *model.Profile, columnID string, req *dto.UpdateColumnRequest) (*model.BoardColumn, error) {
	column, err := s.columns.FindByID(ctx, columnID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, column.ProjectID, actor.ID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		fields["name"] = *req.Name
		column.Name = *req.Name
	}
	if req.Position != nil {
		fields["position"] = *req.Position
		column.Position = *req.Position
	}
	if len(fields) == 0 {
		return column, nil
	}

	if err := s.columns.UpdateFields(ctx, columnID, fields); err != nil {
		return nil, err
	}
	return column, nil
}

// DeleteColumn refuses to remove the last column for a status bucket:
// every bucket must keep a landing column. Otherwise its issues are
// reassigned to the lowest-position remaining column of the same
// bucket before the column row is removed.
func (s *BoardService) DeleteColumn(ctx context.Context, actor *model.Profile, columnID string) error {
	column, err := s.columns.FindByID(ctx, columnID)
	if err != nil {
		return err
	}
	if err := requireProjectMember(ctx, s.projects, column.ProjectID, actor.ID); err != nil {
		return err
	}

	count, err := s.columns.CountByStatus(ctx, column.ProjectID, column.Status)
	if err != nil {
		return err
	}
	if count <= 1 {
		return apperrors.ErrLastColumnForStatus
	}

	fallback, err := s.columns.FindFallbackForStatus(ctx, column.ProjectID, column.Status, column.ID)
	if err != nil {
		return err
	}

	return s.columns.DeleteWithReassign(ctx, column, fallback)
}

// MoveIssue applies a drag-and-drop: the issue is spliced into the
// target column at the drop index and every issue in both affected
// columns is re-sequenced to dense zero-based order. The whole move is
// one persistence call so a failure leaves the previous ordering
// intact for the client to roll back onto.
func (s *BoardService) MoveIssue(ctx context.Context, actor *model.Profile, issueID string, req *dto.MoveIssueRequest) (*model.Issue, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return nil, err
	}

	target, err := s.columns.FindByID(ctx, req.ColumnID)
	if err != nil {
		return nil, err
	}
	if target.ProjectID != issue.ProjectID {
		return nil, apperrors.ErrColumnNotFound
	}

	targetList, err := s.issues.ListByColumn(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	targetList = removeIssue(targetList, issue.ID)

	sameColumn := issue.ColumnID != nil && *issue.ColumnID == target.ID
	var sourceList []model.Issue
	if !sameColumn && issue.ColumnID != nil {
		sourceList, err = s.issues.ListByColumn(ctx, *issue.ColumnID)
		if err != nil {
			return nil, err
		}
		sourceList = removeIssue(sourceList, issue.ID)
	}

	position := req.Position
	if position < 0 {
		position = 0
	}
	if position > len(targetList) {
		position = len(targetList)
	}

	moved := *issue
	moved.ColumnID = &target.ID
	moved.BoardOrder = position

	statusChanged := issue.Status != target.Status
	if statusChanged {
		moved.Status = target.Status
		if target.Status == constants.StatusDone && issue.Status != constants.StatusDone {
			now := time.Now().UTC()
			moved.ResolvedAt = &now
		}
	}

	targetList = append(targetList[:position], append([]model.Issue{moved}, targetList[position:]...)...)

	var updates []repository.IssueBoardUpdate
	for i, item := range targetList {
		fields := map[string]interface{}{"board_order": i}
		if item.ID == moved.ID {
			fields["column_id"] = target.ID
			if statusChanged {
				fields["status"] = moved.Status
				if moved.ResolvedAt != nil && issue.ResolvedAt == nil {
					fields["resolved_at"] = *moved.ResolvedAt
				}
			}
		}
		updates = append(updates, repository.IssueBoardUpdate{IssueID: item.ID, Fields: fields})
	}
	for i, item := range sourceList {
		updates = append(updates, repository.IssueBoardUpdate{
			IssueID: item.ID,
			Fields:  map[string]interface{}{"board_order": i},
		})
	}

	if err := s.columns.ApplyBoardOrdering(ctx, updates); err != nil {
		return nil, err
	}

	if statusChanged {
		field := "status"
		s.activity.LogActivity(ctx, moved.ID, actor.ID, constants.ActionIssueMoved,
			&field, strPtr(string(issue.Status)), strPtr(string(moved.Status)))
	}

	moved.BoardOrder = position
	return &moved, nil
}

func removeIssue(issues []model.Issue, id string) []model.Issue {
	out := issues[:0]
	for _, issue := range issues {
		if issue.ID != id {
			out = append(out, issue)
		}
	}
	return out
}
