package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	model "sprint-board-system.com/sprint-board-system/internal/models"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"
)

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_.-]+)`)

// CommentService creates comments and drives their two independent
// notification channels: comment_added to the issue's audience and
// mention to every @-matched project member. A user in both sets
// receives both notifications.
type CommentService struct {
	comments *repository.CommentRepository
	issues   *repository.IssueRepository
	projects *repository.ProjectRepository
	watchers *repository.WatcherRepository
	activity *ActivityService
	notifier *NotificationService
}

func NewCommentService(
	comments *repository.CommentRepository,
	issues *repository.IssueRepository,
	projects *repository.ProjectRepository,
	watchers *repository.WatcherRepository,
	activity *ActivityService,
	notifier *NotificationService,
) *CommentService {
	return &CommentService{
		comments: comments,
		issues:   issues,
		projects: projects,
		watchers: watchers,
		activity: activity,
		notifier: notifier,
	}
}

func (s *CommentService) Create(ctx context.Context, actor *model.Profile, issueID, body string) (*model.Comment, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, &model.Comment{
		IssueID:  issueID,
		AuthorID: actor.ID,
		Body:     body,
	})
	if err != nil {
		return nil, err
	}

	s.activity.LogActivity(ctx, issueID, actor.ID, constants.ActionCommentAdded, nil, nil, nil)
	s.notifyAudience(ctx, actor, issue)
	s.notifyMentions(ctx, actor, issue, body)

	return comment, nil
}

// notifyAudience targets the reporter, the assignee and all watchers,
// minus the comment author.
func (s *CommentService) notifyAudience(ctx context.Context, actor *model.Profile, issue *model.Issue) {
	ids := []*string{issue.ReporterID, issue.AssigneeID}
	watcherIDs, err := s.watchers.ListUserIDs(ctx, issue.ID)
	if err == nil {
		for i := range watcherIDs {
			ids = append(ids, &watcherIDs[i])
		}
	}

	recipients := make([]string, 0, len(ids))
	for _, id := range dedupIDs(ids...) {
		if id != actor.ID {
			recipients = append(recipients, id)
		}
	}

	s.notifier.NotifyBatch(ctx, recipients,
		constants.NotificationCommentAdded,
		fmt.Sprintf("New comment on %s", issue.IssueKey),
		fmt.Sprintf("%s commented on %s", actor.DisplayName, issue.IssueKey),
		&issue.ID, &issue.ProjectID)
}

// notifyMentions scans the body for @tokens and matches them against
// project members by case-insensitive, whitespace-stripped substring
// over display and full names. Substring matching over-matches by
// nature; the behavior is kept as-is for compatibility.
func (s *CommentService) notifyMentions(ctx context.Context, actor *model.Profile, issue *model.Issue, body string) {
	tokens := mentionTokens(body)
	if len(tokens) == 0 {
		return
	}

	members, err := s.projects.ListMemberProfiles(ctx, issue.ProjectID)
	if err != nil {
		return
	}

	var recipients []string
	for _, member := range members {
		if member.ID == actor.ID {
			continue
		}
		if memberMatchesAny(member, tokens) {
			recipients = append(recipients, member.ID)
		}
	}

	s.notifier.NotifyBatch(ctx, recipients,
		constants.NotificationMention,
		fmt.Sprintf("You were mentioned on %s", issue.IssueKey),
		fmt.Sprintf("%s mentioned you on %s", actor.DisplayName, issue.IssueKey),
		&issue.ID, &issue.ProjectID)
}

func mentionTokens(body string) []string {
	matches := mentionPattern.FindAllStringSubmatch(body, -1)
	seen := make(map[string]struct{}, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		token := strings.ToLower(m[1])
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

func memberMatchesAny(member model.Profile, tokens []string) bool {
	display := normalizeHandle(member.DisplayName)
	full := normalizeHandle(member.FullName)
	for _, token := range tokens {
		if display != "" && strings.Contains(display, token) {
			return true
		}
		if full != "" && strings.Contains(full, token) {
			return true
		}
	}
	return false
}

func normalizeHandle(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

func (s *CommentService) ListByIssue(ctx context.Context, actor *model.Profile, issueID string) ([]model.Comment, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return nil, err
	}
	return s.comments.ListByIssue(ctx, issueID)
}

// Delete removes the author's own comment; anyone else gets 403.
func (s *CommentService) Delete(ctx context.Context, actor *model.Profile, commentID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != actor.ID {
		return apperrors.ErrForbidden
	}
	return s.comments.SoftDelete(ctx, commentID)
}
