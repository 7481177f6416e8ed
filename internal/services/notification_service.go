package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	"sprint-board-system.com/sprint-board-system/internal/email"
	model "sprint-board-system.com/sprint-board-system/internal/models"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"
)

// NotificationService fans events out to recipients honoring per-user
// preferences: an in-app row when inApp is on, an email when both the
// email toggle and the type-specific toggle permit it.
type NotificationService struct {
	profiles      *repository.ProfileRepository
	notifications *repository.NotificationRepository
	emailer       email.Provider
}

func NewNotificationService(
	profiles *repository.ProfileRepository,
	notifications *repository.NotificationRepository,
	emailer email.Provider,
) *NotificationService {
	return &NotificationService{
		profiles:      profiles,
		notifications: notifications,
		emailer:       emailer,
	}
}

// CreateNotification delivers one event to one recipient. Inactive or
// missing recipients are suppressed entirely. Email failures are
// logged and never surface to the caller.
func (s *NotificationService) CreateNotification(
	ctx context.Context,
	recipientID string,
	ntype constants.NotificationType,
	title, message string,
	relatedIssueID, relatedProjectID *string,
) error {
	profile, err := s.profiles.FindByID(ctx, recipientID)
	if err != nil {
		return err
	}
	if profile == nil || !profile.IsActive {
		return nil
	}

	if profile.Prefs.InAppEnabled() {
		_, err := s.notifications.Create(ctx, &model.Notification{
			RecipientID:      recipientID,
			Type:             ntype,
			Title:            title,
			Message:          message,
			RelatedIssueID:   relatedIssueID,
			RelatedProjectID: relatedProjectID,
		})
		if err != nil {
			return err
		}
	}

	if profile.Prefs.EmailEnabled() && typePrefAllows(ntype, profile.Prefs) {
		if err := s.emailer.Send(ctx, email.Message{
			To:      profile.Email,
			Subject: title,
			HTML:    "<p>" + message + "</p>",
			Text:    message,
		}); err != nil {
			log.Printf("email to %s failed (%s): %v", recipientID, ntype, err)
		}
	}

	return nil
}

// typePrefAllows maps notification types onto their per-type email
// toggle. Types without a toggle default to allowed.
func typePrefAllows(ntype constants.NotificationType, prefs model.NotificationPrefs) bool {
	switch ntype {
	case constants.NotificationIssueAssigned:
		return prefs.AssignmentsEnabled()
	case constants.NotificationStatusChanged:
		return prefs.StatusChangesEnabled()
	case constants.NotificationCommentAdded:
		return prefs.CommentsEnabled()
	case constants.NotificationMention:
		return prefs.MentionsEnabled()
	default:
		return true
	}
}

// NotifyBatch fans one event out to many recipients concurrently.
// Recipients are isolated from each other: one failed delivery is
// logged and does not stop the rest, and the batch never reports an
// error to the calling mutation.
func (s *NotificationService) NotifyBatch(
	ctx context.Context,
	recipientIDs []string,
	ntype constants.NotificationType,
	title, message string,
	relatedIssueID, relatedProjectID *string,
) {
	var g errgroup.Group
	for _, recipientID := range recipientIDs {
		recipientID := recipientID
		g.Go(func() error {
			if err := s.CreateNotification(ctx, recipientID, ntype, title, message, relatedIssueID, relatedProjectID); err != nil {
				log.Printf("notification to %s failed (%s): %v", recipientID, ntype, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (s *NotificationService) List(ctx context.Context, recipientID string, unreadOnly bool, limit, offset int) ([]model.Notification, error) {
	return s.notifications.ListByRecipient(ctx, recipientID, unreadOnly, limit, offset)
}

func (s *NotificationService) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	return s.notifications.CountUnread(ctx, recipientID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	return s.notifications.MarkRead(ctx, id, recipientID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.notifications.MarkAllRead(ctx, recipientID)
}

func (s *NotificationService) UpdatePrefs(ctx context.Context, userID string, prefs model.NotificationPrefs) error {
	return s.profiles.UpdatePrefs(ctx, userID, prefs)
}
