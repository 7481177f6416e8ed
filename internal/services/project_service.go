package services

import (
	"context"
	"strings"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	model "sprint-board-system.com/sprint-board-system/internal/models"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

type ProjectService struct {
	projects *repository.ProjectRepository
}

func NewProjectService(projects *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// Create provisions the project with its owner membership and one
// starter column per status bucket, satisfying the landing-column
// invariant from day one.
func (s *ProjectService) Create(ctx context.Context, actor *model.Profile, req *dto.CreateProjectRequest) (*model.Project, error) {
	project := &model.Project{
		Name:        req.Name,
		Key:         strings.ToUpper(req.Key),
		Description: req.Description,
		OwnerID:     actor.ID,
	}
	owner := &model.ProjectMember{
		UserID: actor.ID,
		Role:   constants.RoleOwner,
	}
	columns := []model.BoardColumn{
		{Name: "To Do", Status: constants.StatusTodo, Position: 0, IsDefault: true},
		{Name: "In Progress", Status: constants.StatusInProgress, Position: 1},
		{Name: "Done", Status: constants.StatusDone, Position: 2},
	}

	return s.projects.Create(ctx, project, owner, columns)
}

func (s *ProjectService) Get(ctx context.Context, actor *model.Profile, projectID string) (*model.Project, error) {
	if err := requireProjectMember(ctx, s.projects, projectID, actor.ID); err != nil {
		return nil, err
	}
	return s.projects.FindByID(ctx, projectID)
}

func (s *ProjectService) ListForUser(ctx context.Context, actor *model.Profile) ([]model.Project, error) {
	return s.projects.ListForUser(ctx, actor.ID)
}

// AddMember requires the actor to hold the owner or admin role.
func (s *ProjectService) AddMember(ctx context.Context, actor *model.Profile, projectID string, req *dto.AddMemberRequest) error {
	member, err := s.projects.FindMember(ctx, projectID, actor.ID)
	if err != nil {
		return err
	}
	if member == nil || (member.Role != constants.RoleOwner && member.Role != constants.RoleAdmin) {
		return apperrors.ErrForbidden
	}

	role := req.Role
	if role == "" {
		role = constants.RoleMember
	}

	return s.projects.AddMember(ctx, &model.ProjectMember{
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      role,
	})
}

func (s *ProjectService) ListMembers(ctx context.Context, actor *model.Profile, projectID string) ([]model.Profile, error) {
	if err := requireProjectMember(ctx, s.projects, projectID, actor.ID); err != nil {
		return nil, err
	}
	return s.projects.ListMemberProfiles(ctx, projectID)
}
