package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
)

func TestCommentService_CreateNotifiesAudienceMinusAuthor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	reporter := env.createProfile(t, "Reporter")
	assignee := env.createProfile(t, "Assignee")
	watcher := env.createProfile(t, "Watcher")
	project := env.createProject(t, owner, "PRJ")
	env.addMember(t, project.ID, reporter)
	env.addMember(t, project.ID, assignee)
	env.addMember(t, project.ID, watcher)

	issue, err := env.issueService.Create(ctx, owner, project.ID, &dto.CreateIssueRequest{
		Summary:    "Discussed",
		IssueType:  constants.TypeStory,
		ReporterID: &reporter.ID,
		AssigneeID: &assignee.ID,
	})
	require.NoError(t, err)
	require.NoError(t, env.issueService.Watch(ctx, watcher, issue.ID))

	comment, err := env.commentService.Create(ctx, reporter, issue.ID, "looks good to me")
	require.NoError(t, err)
	assert.Equal(t, reporter.ID, comment.AuthorID)

	assert.Empty(t, env.notificationsFor(t, reporter.ID, constants.NotificationCommentAdded))
	assert.Len(t, env.notificationsFor(t, assignee.ID, constants.NotificationCommentAdded), 1)
	assert.Len(t, env.notificationsFor(t, watcher.ID, constants.NotificationCommentAdded), 1)
	assert.Empty(t, env.notificationsFor(t, owner.ID, constants.NotificationCommentAdded))

	entries, err := env.activityService.ListByIssue(ctx, issue.ID)
	require.NoError(t, err)
	var commentEntries int
	for _, e := range entries {
		if e.ActionType == constants.ActionCommentAdded {
			commentEntries++
		}
	}
	assert.Equal(t, 1, commentEntries)
}

func TestCommentService_MentionMatchesMemberNames(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	ava := env.createProfile(t, "Ava Chen")
	bruno := env.createProfile(t, "Bruno Silva")
	project := env.createProject(t, owner, "PRJ")
	env.addMember(t, project.ID, ava)
	env.addMember(t, project.ID, bruno)

	issue := env.createIssue(t, owner, project.ID, "Mentions")

	_, err := env.commentService.Create(ctx, owner, issue.ID, "ping @ava about this")
	require.NoError(t, err)

	assert.Len(t, env.notificationsFor(t, ava.ID, constants.NotificationMention), 1)
	assert.Empty(t, env.notificationsFor(t, bruno.ID, constants.NotificationMention))
}

func TestCommentService_MentionNeverTargetsAuthor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	ava := env.createProfile(t, "Ava Chen")
	project := env.createProject(t, owner, "PRJ")
	env.addMember(t, project.ID, ava)

	issue := env.createIssue(t, owner, project.ID, "Self mention")

	_, err := env.commentService.Create(ctx, ava, issue.ID, "note to self: @ava follow up")
	require.NoError(t, err)

	assert.Empty(t, env.notificationsFor(t, ava.ID, constants.NotificationMention))
}

func TestCommentService_MentionedAssigneeGetsBothNotifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	ava := env.createProfile(t, "Ava Chen")
	project := env.createProject(t, owner, "PRJ")
	env.addMember(t, project.ID, ava)

	issue, err := env.issueService.Create(ctx, owner, project.ID, &dto.CreateIssueRequest{
		Summary:    "Busy issue",
		IssueType:  constants.TypeBug,
		AssigneeID: &ava.ID,
	})
	require.NoError(t, err)

	_, err = env.commentService.Create(ctx, owner, issue.ID, "@ava can you take a look?")
	require.NoError(t, err)

	assert.Len(t, env.notificationsFor(t, ava.ID, constants.NotificationCommentAdded), 1)
	assert.Len(t, env.notificationsFor(t, ava.ID, constants.NotificationMention), 1)
}

func TestCommentService_DeleteIsAuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createProfile(t, "Owner")
	author := env.createProfile(t, "Author")
	project := env.createProject(t, owner, "PRJ")
	env.addMember(t, project.ID, author)

	issue := env.createIssue(t, owner, project.ID, "Commented")
	comment, err := env.commentService.Create(ctx, author, issue.ID, "my take")
	require.NoError(t, err)

	err = env.commentService.Delete(ctx, owner, comment.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, env.commentService.Delete(ctx, author, comment.ID))

	comments, err := env.commentService.ListByIssue(ctx, owner, issue.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestMentionTokens(t *testing.T) {
	tokens := mentionTokens("cc @Ava and @bruno, also @ava again")
	assert.Equal(t, []string{"ava", "bruno"}, tokens)

	assert.Empty(t, mentionTokens("no handles here"))
}
