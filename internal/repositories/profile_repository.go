package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	model "sprint-board-system.com/sprint-board-system/internal/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.CreatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// FindByID returns nil without error when the profile does not exist;
// the notification dispatcher suppresses delivery in that case rather
// than failing the calling mutation.
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) FindByToken(ctx context.Context, token string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).First(&profile, "api_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) UpdatePrefs(ctx context.Context, userID string, prefs model.NotificationPrefs) error {
	res := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"pref_email":          prefs.Email,
			"pref_in_app":         prefs.InApp,
			"pref_assignments":    prefs.Assignments,
			"pref_status_changes": prefs.StatusChanges,
			"pref_comments":       prefs.Comments,
			"pref_mentions":       prefs.Mentions,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUnauthenticated
	}
	return nil
}
