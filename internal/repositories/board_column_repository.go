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

type BoardColumnRepository struct {
	db *gorm.DB
}

func NewBoardColumnRepository(db *gorm.DB) *BoardColumnRepository {
	return &BoardColumnRepository{db: db}
}

func (r *BoardColumnRepository) Create(ctx context.Context, column *model.BoardColumn) (*model.BoardColumn, error) {
	if column.ID == "" {
		column.ID = uuid.NewString()
	}
	column.CreatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Create(column).Error; err != nil {
		return nil, err
	}
	return column, nil
}

func (r *BoardColumnRepository) FindByID(ctx context.Context, id string) (*model.BoardColumn, error) {
	var column model.BoardColumn
	err := r.db.WithContext(ctx).First(&column, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrColumnNotFound
		}
		return nil, err
	}
	return &column, nil
}

func (r *BoardColumnRepository) ListByProject(ctx context.Context, projectID string) ([]model.BoardColumn, error) {
	var columns []model.BoardColumn
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position asc").
		Find(&columns).Error
	return columns, err
}

func (r *BoardColumnRepository) CountByStatus(ctx context.Context, projectID string, status constants.IssueStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BoardColumn{}).
		Where("project_id = ? AND status = ?", projectID, status).
		Count(&count).Error
	return count, err
}

// FindFallbackForStatus returns the lowest-position column of the
// given bucket, skipping the column being deleted.
func (r *BoardColumnRepository) FindFallbackForStatus(ctx context.Context, projectID string, status constants.IssueStatus, excludeID string) (*model.BoardColumn, error) {
	var column model.BoardColumn
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND status = ? AND id <> ?", projectID, status, excludeID).
		Order("position asc").
		First(&column).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrColumnNotFound
		}
		return nil, err
	}
	return &column, nil
}

func (r *BoardColumnRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.BoardColumn{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrColumnNotFound
	}
	return nil
}

// DeleteWithReassign moves every issue from the column onto the end of
// the fallback column's ordering, then removes the column row. One
// transaction so the board never observes issues without a column.
func (r *BoardColumnRepository) DeleteWithReassign(ctx context.Context, column, fallback *model.BoardColumn) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orphaned []model.Issue
		if err := tx.
			Where("column_id = ?", column.ID).
			Order("board_order asc, created_at asc").
			Find(&orphaned).Error; err != nil {
			return err
		}

		var base int64
		if err := tx.Model(&model.Issue{}).
			Where("column_id = ?", fallback.ID).
			Count(&base).Error; err != nil {
			return err
		}

		for i, issue := range orphaned {
			if err := tx.Model(&model.Issue{}).
				Where("id = ?", issue.ID).
				Updates(map[string]interface{}{
					"column_id":   fallback.ID,
					"board_order": int(base) + i,
					"version":     gorm.Expr("version + 1"),
				}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.BoardColumn{}, "id = ?", column.ID).Error
	})
}

// IssueBoardUpdate is one issue's placement after a drag-and-drop
// resequence.
type IssueBoardUpdate struct {
	IssueID string
	Fields  map[string]interface{}
}

// ApplyBoardOrdering commits a full resequence of the affected columns
// as a single transaction, so the confirming call either fully applies
// or fully fails and the client can roll back its optimistic state.
func (r *BoardColumnRepository) ApplyBoardOrdering(ctx context.Context, updates []IssueBoardUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			u.Fields["version"] = gorm.Expr("version + 1")
			if err := tx.Model(&model.Issue{}).
				Where("id = ?", u.IssueID).
				Updates(u.Fields).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
