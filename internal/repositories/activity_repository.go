package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sprint-board-system.com/sprint-board-system/internal/models"
)

// ActivityRepository is append-only. There is deliberately no update
// or delete method.
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ActivityRepository) ListByIssue(ctx context.Context, issueID string) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	err := r.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Order("created_at asc").
		Find(&entries).Error
	return entries, err
}
