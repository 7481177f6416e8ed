package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	model "sprint-board-system.com/sprint-board-system/internal/models"
)

func (env *testEnv) createSprint(t *testing.T, actor *model.Profile, projectID, name string) *model.Sprint {
	t.Helper()
	sprint, err := env.sprintService.Create(context.Background(), actor, projectID, &dto.CreateSprintRequest{
		Name: name,
	})
	require.NoError(t, err)
	return sprint
}

func (env *testEnv) assignToSprint(t *testing.T, issueID, sprintID string) {
	t.Helper()
	err := env.db.Model(&model.Issue{}).
		Where("id = ?", issueID).
		Update("sprint_id", sprintID).Error
	require.NoError(t, err)
}

func TestSprintService_SingleActivePerProject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")

	first := env.createSprint(t, owner, project.ID, "Sprint 1")
	second := env.createSprint(t, owner, project.ID, "Sprint 2")

	started, err := env.sprintService.Start(ctx, owner, first.ID, &dto.StartSprintRequest{})
	require.NoError(t, err)
	assert.Equal(t, constants.SprintActive, started.Status)
	assert.NotNil(t, started.StartDate)

	_, err = env.sprintService.Start(ctx, owner, second.ID, &dto.StartSprintRequest{})
	assert.ErrorIs(t, err, apperrors.ErrActiveSprintExists)

	reloaded, err := env.sprints.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.SprintPending, reloaded.Status)
}

func TestSprintService_StartRecordsDates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")

	// omitted start date defaults to the activation time
	plain := env.createSprint(t, owner, project.ID, "Sprint 1")
	before := time.Now().UTC()
	started, err := env.sprintService.Start(ctx, owner, plain.ID, &dto.StartSprintRequest{})
	require.NoError(t, err)
	require.NotNil(t, started.StartDate)
	assert.False(t, started.StartDate.Before(before))
	assert.Nil(t, started.EndDate)

	_, err = env.sprintService.Complete(ctx, owner, plain.ID, &dto.CompleteSprintRequest{})
	require.NoError(t, err)

	// explicit dates are stored as given
	dated := env.createSprint(t, owner, project.ID, "Sprint 2")
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC)
	started, err = env.sprintService.Start(ctx, owner, dated.ID, &dto.StartSprintRequest{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	reloaded, err := env.sprints.FindByID(ctx, started.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.StartDate)
	require.NotNil(t, reloaded.EndDate)
	assert.True(t, reloaded.StartDate.Equal(start))
	assert.True(t, reloaded.EndDate.Equal(end))
}

func TestSprintService_StartRejectsNonPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")
	sprint := env.createSprint(t, owner, project.ID, "Sprint 1")

	_, err := env.sprintService.Start(ctx, owner, sprint.ID, &dto.StartSprintRequest{})
	require.NoError(t, err)

	_, err = env.sprintService.Start(ctx, owner, sprint.ID, &dto.StartSprintRequest{})
	assert.ErrorIs(t, err, apperrors.ErrSprintAlreadyActive)

	_, err = env.sprintService.Complete(ctx, owner, sprint.ID, &dto.CompleteSprintRequest{})
	require.NoError(t, err)

	_, err = env.sprintService.Start(ctx, owner, sprint.ID, &dto.StartSprintRequest{})
	assert.ErrorIs(t, err, apperrors.ErrSprintNotActive)
}

func TestSprintService_StartNotifiesOtherMembers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	teammate := env.createProfile(t, "Teammate")
	project := env.createProject(t, owner, "PRJ")
	env.addMember(t, project.ID, teammate)
	sprint := env.createSprint(t, owner, project.ID, "Sprint 1")

	_, err := env.sprintService.Start(ctx, owner, sprint.ID, &dto.StartSprintRequest{})
	require.NoError(t, err)

	assert.Len(t, env.notificationsFor(t, teammate.ID, constants.NotificationSprintStarted), 1)
	assert.Empty(t, env.notificationsFor(t, owner.ID, constants.NotificationSprintStarted))
}

func TestSprintService_CompleteMigratesOpenIssuesToBacklog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")
	sprint := env.createSprint(t, owner, project.ID, "Sprint 1")

	var open []*model.Issue
	for _, name := range []string{"Open A", "Open B", "Open C"} {
		issue := env.createIssue(t, owner, project.ID, name)
		env.assignToSprint(t, issue.ID, sprint.ID)
		open = append(open, issue)
	}
	var finished []*model.Issue
	for _, name := range []string{"Done A", "Done B"} {
		issue := env.createIssue(t, owner, project.ID, name)
		env.assignToSprint(t, issue.ID, sprint.ID)
		require.NoError(t, env.db.Model(&model.Issue{}).
			Where("id = ?", issue.ID).
			Update("status", constants.StatusDone).Error)
		finished = append(finished, issue)
	}

	_, err := env.sprintService.Start(ctx, owner, sprint.ID, &dto.StartSprintRequest{})
	require.NoError(t, err)

	completed, err := env.sprintService.Complete(ctx, owner, sprint.ID, &dto.CompleteSprintRequest{})
	require.NoError(t, err)
	assert.Equal(t, constants.SprintCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	for _, issue := range open {
		reloaded, err := env.issues.FindByID(ctx, issue.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.SprintID, "open issue should return to backlog")
	}
	for _, issue := range finished {
		reloaded, err := env.issues.FindByID(ctx, issue.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.SprintID)
		assert.Equal(t, sprint.ID, *reloaded.SprintID, "done issue stays with the completed sprint")
	}
}

func TestSprintService_CompleteMovesOpenIssuesToTargetSprint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")
	sprint := env.createSprint(t, owner, project.ID, "Sprint 1")
	next := env.createSprint(t, owner, project.ID, "Sprint 2")

	issue := env.createIssue(t, owner, project.ID, "Carryover")
	env.assignToSprint(t, issue.ID, sprint.ID)

	_, err := env.sprintService.Start(ctx, owner, sprint.ID, &dto.StartSprintRequest{})
	require.NoError(t, err)

	_, err = env.sprintService.Complete(ctx, owner, sprint.ID, &dto.CompleteSprintRequest{
		MoveToSprintID: &next.ID,
	})
	require.NoError(t, err)

	reloaded, err := env.issues.FindByID(ctx, issue.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.SprintID)
	assert.Equal(t, next.ID, *reloaded.SprintID)
}

func TestSprintService_CompleteRejectsBadMoveTarget(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")
	other := env.createProject(t, owner, "OTH")

	sprint := env.createSprint(t, owner, project.ID, "Sprint 1")
	foreign := env.createSprint(t, owner, other.ID, "Elsewhere")

	_, err := env.sprintService.Start(ctx, owner, sprint.ID, &dto.StartSprintRequest{})
	require.NoError(t, err)

	// the sprint itself is not a valid landing place
	_, err = env.sprintService.Complete(ctx, owner, sprint.ID, &dto.CompleteSprintRequest{
		MoveToSprintID: &sprint.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidMoveTarget)

	// neither is a sprint in another project
	_, err = env.sprintService.Complete(ctx, owner, sprint.ID, &dto.CompleteSprintRequest{
		MoveToSprintID: &foreign.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidMoveTarget)

	reloaded, err := env.sprints.FindByID(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.SprintActive, reloaded.Status)
}

func TestSprintService_CompleteRequiresActive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")
	sprint := env.createSprint(t, owner, project.ID, "Sprint 1")

	_, err := env.sprintService.Complete(ctx, owner, sprint.ID, &dto.CompleteSprintRequest{})
	assert.ErrorIs(t, err, apperrors.ErrSprintNotActive)
}
