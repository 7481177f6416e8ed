package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	model "sprint-board-system.com/sprint-board-system/internal/models"
)

func columnOrder(t *testing.T, env *testEnv, columnID string) []string {
	t.Helper()
	issues, err := env.issues.ListByColumn(context.Background(), columnID)
	require.NoError(t, err)
	ids := make([]string, 0, len(issues))
	for i, issue := range issues {
		require.Equal(t, i, issue.BoardOrder, "board order must be dense")
		ids = append(ids, issue.ID)
	}
	return ids
}

func TestBoardService_MoveAcrossColumnsResequencesBoth(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")

	a := env.createIssue(t, owner, project.ID, "A")
	b := env.createIssue(t, owner, project.ID, "B")
	c := env.createIssue(t, owner, project.ID, "C")

	inProgress := env.columnFor(t, project.ID, constants.StatusInProgress)

	moved, err := env.boardService.MoveIssue(ctx, owner, b.ID, &dto.MoveIssueRequest{
		ColumnID: inProgress.ID,
		Position: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusInProgress, moved.Status)
	require.NotNil(t, moved.ColumnID)
	assert.Equal(t, inProgress.ID, *moved.ColumnID)
	assert.Nil(t, moved.ResolvedAt)

	todo := env.columnFor(t, project.ID, constants.StatusTodo)
	assert.Equal(t, []string{a.ID, c.ID}, columnOrder(t, env, todo.ID))
	assert.Equal(t, []string{b.ID}, columnOrder(t, env, inProgress.ID))
}

func TestBoardService_MoveWithinColumn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")

	a := env.createIssue(t, owner, project.ID, "A")
	b := env.createIssue(t, owner, project.ID, "B")
	c := env.createIssue(t, owner, project.ID, "C")

	todo := env.columnFor(t, project.ID, constants.StatusTodo)

	_, err := env.boardService.MoveIssue(ctx, owner, c.ID, &dto.MoveIssueRequest{
		ColumnID: todo.ID,
		Position: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{c.ID, a.ID, b.ID}, columnOrder(t, env, todo.ID))
}

func TestBoardService_MoveClampsDropIndex(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")

	a := env.createIssue(t, owner, project.ID, "A")
	b := env.createIssue(t, owner, project.ID, "B")

	todo := env.columnFor(t, project.ID, constants.StatusTodo)

	moved, err := env.boardService.MoveIssue(ctx, owner, a.ID, &dto.MoveIssueRequest{
		ColumnID: todo.ID,
		Position: 99,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, moved.BoardOrder)
	assert.Equal(t, []string{b.ID, a.ID}, columnOrder(t, env, todo.ID))
}

func TestBoardService_MoveIntoDoneSetsResolvedAt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")
	issue := env.createIssue(t, owner, project.ID, "Finish me")

	done := env.columnFor(t, project.ID, constants.StatusDone)

	// the board bypasses the transition table: todo straight to done
	moved, err := env.boardService.MoveIssue(ctx, owner, issue.ID, &dto.MoveIssueRequest{
		ColumnID: done.ID,
		Position: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusDone, moved.Status)
	require.NotNil(t, moved.ResolvedAt)

	entries, err := env.activityService.ListByIssue(ctx, issue.ID)
	require.NoError(t, err)

	var movedEntries int
	for _, e := range entries {
		if e.ActionType == constants.ActionIssueMoved {
			movedEntries++
		}
	}
	assert.Equal(t, 1, movedEntries)
}

func TestBoardService_MoveRejectsForeignColumn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")
	other := env.createProject(t, owner, "OTH")
	issue := env.createIssue(t, owner, project.ID, "Stays home")

	foreign := env.columnFor(t, other.ID, constants.StatusTodo)

	_, err := env.boardService.MoveIssue(ctx, owner, issue.ID, &dto.MoveIssueRequest{
		ColumnID: foreign.ID,
		Position: 0,
	})
	assert.ErrorIs(t, err, apperrors.ErrColumnNotFound)
}

func TestBoardService_DeleteLastColumnForStatusFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")

	done := env.columnFor(t, project.ID, constants.StatusDone)

	err := env.boardService.DeleteColumn(ctx, owner, done.ID)
	assert.ErrorIs(t, err, apperrors.ErrLastColumnForStatus)
}

func TestBoardService_DeleteColumnReassignsIssues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")

	keeper := env.createIssue(t, owner, project.ID, "Keeper")

	extra, err := env.boardService.CreateColumn(ctx, owner, project.ID, &dto.CreateColumnRequest{
		Name:   "Triage",
		Status: constants.StatusTodo,
	})
	require.NoError(t, err)

	orphan, err := env.issueService.Create(ctx, owner, project.ID, &dto.CreateIssueRequest{
		Summary:   "Orphan",
		IssueType: constants.TypeTask,
		ColumnID:  &extra.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.boardService.DeleteColumn(ctx, owner, extra.ID))

	todo := env.columnFor(t, project.ID, constants.StatusTodo)
	assert.Equal(t, []string{keeper.ID, orphan.ID}, columnOrder(t, env, todo.ID))

	_, err = env.columns.FindByID(ctx, extra.ID)
	assert.ErrorIs(t, err, apperrors.ErrColumnNotFound)
}

func TestBoardService_SnapshotGroupsIssuesByColumn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	project := env.createProject(t, owner, "PRJ")

	a := env.createIssue(t, owner, project.ID, "A")
	_ = env.createIssue(t, owner, project.ID, "B")

	inProgress := env.columnFor(t, project.ID, constants.StatusInProgress)
	_, err := env.boardService.MoveIssue(ctx, owner, a.ID, &dto.MoveIssueRequest{
		ColumnID: inProgress.ID,
		Position: 0,
	})
	require.NoError(t, err)

	board, err := env.boardService.Snapshot(ctx, owner, project.ID)
	require.NoError(t, err)
	require.Len(t, board, 3)

	byStatus := map[constants.IssueStatus][]model.Issue{}
	for _, column := range board {
		byStatus[column.Status] = append(byStatus[column.Status], column.Issues...)
	}
	assert.Len(t, byStatus[constants.StatusTodo], 1)
	assert.Len(t, byStatus[constants.StatusInProgress], 1)
	assert.Empty(t, byStatus[constants.StatusDone])
}
