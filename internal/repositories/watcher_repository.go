package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sprint-board-system.com/sprint-board-system/internal/models"
)

type WatcherRepository struct {
	db *gorm.DB
}

func NewWatcherRepository(db *gorm.DB) *WatcherRepository {
	return &WatcherRepository{db: db}
}

// Add is idempotent: the unique (issue, user) index absorbs duplicate
// watch requests.
func (r *WatcherRepository) Add(ctx context.Context, issueID, userID string) error {
	watcher := &model.IssueWatcher{
		ID:        uuid.NewString(),
		IssueID:   issueID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Create(watcher).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *WatcherRepository) Remove(ctx context.Context, issueID, userID string) error {
	return r.db.WithContext(ctx).
		Delete(&model.IssueWatcher{}, "issue_id = ? AND user_id = ?", issueID, userID).Error
}

func (r *WatcherRepository) ListUserIDs(ctx context.Context, issueID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.IssueWatcher{}).
		Where("issue_id = ?", issueID).
		Pluck("user_id", &ids).Error
	return ids, err
}
