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

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts the project together with its owner membership and
// starter columns in one transaction.
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project, owner *model.ProjectMember, columns []model.BoardColumn) (*model.Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	project.CreatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		owner.ID = uuid.NewString()
		owner.ProjectID = project.ID
		if err := tx.Create(owner).Error; err != nil {
			return err
		}
		for i := range columns {
			columns[i].ID = uuid.NewString()
			columns[i].ProjectID = project.ID
			if err := tx.Create(&columns[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// FindMember returns nil without error when the user is not a member.
func (r *ProjectRepository) FindMember(ctx context.Context, projectID, userID string) (*model.ProjectMember, error) {
	var member model.ProjectMember
	err := r.db.WithContext(ctx).
		First(&member, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// AddMember is idempotent: re-adding an existing member is a no-op.
func (r *ProjectRepository) AddMember(ctx context.Context, member *model.ProjectMember) error {
	member.ID = uuid.NewString()
	member.CreatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).Create(member).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *ProjectRepository) ListMemberIDs(ctx context.Context, projectID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.ProjectMember{}).
		Where("project_id = ?", projectID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *ProjectRepository) ListMemberProfiles(ctx context.Context, projectID string) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Joins("JOIN project_members ON project_members.user_id = profiles.id").
		Where("project_members.project_id = ?", projectID).
		Find(&profiles).Error
	return profiles, err
}

func (r *ProjectRepository) ListForUser(ctx context.Context, userID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", userID).
		Order("projects.created_at asc").
		Find(&projects).Error
	return projects, err
}

// NextIssueSeq increments and returns the project's issue counter.
// The conditional increment runs inside a transaction so concurrent
// creates never hand out the same sequence number.
func (r *ProjectRepository) NextIssueSeq(ctx context.Context, projectID string) (int, error) {
	var seq int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Project{}).
			Where("id = ?", projectID).
			Update("issue_seq", gorm.Expr("issue_seq + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrProjectNotFound
		}
		return tx.Model(&model.Project{}).
			Where("id = ?", projectID).
			Pluck("issue_seq", &seq).Error
	})
	if err != nil {
		return 0, err
	}
	return seq, nil
}
