package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	model "sprint-board-system.com/sprint-board-system/internal/models"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

func (r *IssueRepository) Create(ctx context.Context, issue *model.Issue) (*model.Issue, error) {
	if issue.ID == "" {
		issue.ID = uuid.NewString()
	}
	issue.Version = 1
	issue.CreatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Create(issue).Error; err != nil {
		return nil, err
	}
	return issue, nil
}

func (r *IssueRepository) FindByID(ctx context.Context, id string) (*model.Issue, error) {
	var issue model.Issue
	err := r.db.WithContext(ctx).First(&issue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, err
	}
	return &issue, nil
}

// UpdateFields persists the given column set conditionally on the
// issue's version. A zero-row update means a concurrent writer won.
func (r *IssueRepository) UpdateFields(ctx context.Context, issue *model.Issue, fields map[string]interface{}) error {
	fields["version"] = gorm.Expr("version + 1")

	res := r.db.WithContext(ctx).Model(&model.Issue{}).
		Where("id = ? AND version = ?", issue.ID, issue.Version).
		Updates(fields)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}

	issue.Version++
	return nil
}

func (r *IssueRepository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Issue{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrIssueNotFound
	}
	return nil
}

func (r *IssueRepository) ListByColumn(ctx context.Context, columnID string) ([]model.Issue, error) {
	var issues []model.Issue
	err := r.db.WithContext(ctx).
		Where("column_id = ?", columnID).
		Order("board_order asc, created_at asc").
		Find(&issues).Error
	return issues, err
}

func (r *IssueRepository) ListBySprint(ctx context.Context, sprintID string) ([]model.Issue, error) {
	var issues []model.Issue
	err := r.db.WithContext(ctx).
		Where("sprint_id = ?", sprintID).
		Order("created_at asc").
		Find(&issues).Error
	return issues, err
}

func (r *IssueRepository) ListBacklog(ctx context.Context, projectID string) ([]model.Issue, error) {
	var issues []model.Issue
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND sprint_id IS NULL", projectID).
		Order("created_at asc").
		Find(&issues).Error
	return issues, err
}

// NextBoardOrder returns the first free slot at the bottom of a
// column. Counting rows would collide after a soft delete leaves a
// gap below the tail.
func (r *IssueRepository) NextBoardOrder(ctx context.Context, columnID string) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Model(&model.Issue{}).
		Where("column_id = ?", columnID).
		Select("COALESCE(MAX(board_order) + 1, 0)").
		Scan(&next).Error
	return next, err
}

func (r *IssueRepository) CountByStatus(ctx context.Context, sprintID string, status constants.IssueStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Issue{}).
		Where("sprint_id = ? AND status = ?", sprintID, status).
		Count(&count).Error
	return count, err
}
