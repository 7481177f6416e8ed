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

type SprintRepository struct {
	db *gorm.DB
}

func NewSprintRepository(db *gorm.DB) *SprintRepository {
	return &SprintRepository{db: db}
}

func (r *SprintRepository) Create(ctx context.Context, sprint *model.Sprint) (*model.Sprint, error) {
	if sprint.ID == "" {
		sprint.ID = uuid.NewString()
	}
	sprint.Status = constants.SprintPending
	sprint.Version = 1
	sprint.CreatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Create(sprint).Error; err != nil {
		return nil, err
	}
	return sprint, nil
}

func (r *SprintRepository) FindByID(ctx context.Context, id string) (*model.Sprint, error) {
	var sprint model.Sprint
	err := r.db.WithContext(ctx).First(&sprint, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSprintNotFound
		}
		return nil, err
	}
	return &sprint, nil
}

func (r *SprintRepository) ListByProject(ctx context.Context, projectID string) ([]model.Sprint, error) {
	var sprints []model.Sprint
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at asc").
		Find(&sprints).Error
	return sprints, err
}

// FindActiveByProject returns nil without error when no sprint is
// active in the project.
func (r *SprintRepository) FindActiveByProject(ctx context.Context, projectID string) (*model.Sprint, error) {
	var sprint model.Sprint
	err := r.db.WithContext(ctx).
		First(&sprint, "project_id = ? AND status = ?", projectID, constants.SprintActive).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sprint, nil
}

// Activate flips a pending sprint to active. The update is conditional
// on both status and version so two racing starts cannot both win.
func (r *SprintRepository) Activate(ctx context.Context, sprint *model.Sprint, startDate, endDate *time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.Sprint{}).
		Where("id = ? AND status = ? AND version = ?", sprint.ID, constants.SprintPending, sprint.Version).
		Updates(map[string]interface{}{
			"status":     constants.SprintActive,
			"start_date": startDate,
			"end_date":   endDate,
			"version":    gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}

	sprint.Status = constants.SprintActive
	sprint.StartDate = startDate
	sprint.EndDate = endDate
	sprint.Version++
	return nil
}

// Complete migrates every non-done issue out of the sprint and marks
// the sprint completed, all in one transaction. Done issues keep their
// sprint attachment for historical reporting.
func (r *SprintRepository) Complete(ctx context.Context, sprint *model.Sprint, moveToSprintID *string) error {
	completedAt := time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Issue{}).
			Where("sprint_id = ? AND status <> ?", sprint.ID, constants.StatusDone).
			Update("sprint_id", moveToSprintID).Error; err != nil {
			return err
		}

		res := tx.Model(&model.Sprint{}).
			Where("id = ? AND status = ? AND version = ?", sprint.ID, constants.SprintActive, sprint.Version).
			Updates(map[string]interface{}{
				"status":       constants.SprintCompleted,
				"completed_at": completedAt,
				"version":      gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrOptimisticLock
		}
		return nil
	})
	if err != nil {
		return err
	}

	sprint.Status = constants.SprintCompleted
	sprint.CompletedAt = &completedAt
	sprint.Version++
	return nil
}
