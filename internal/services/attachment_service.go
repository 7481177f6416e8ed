package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	model "sprint-board-system.com/sprint-board-system/internal/models"
	"sprint-board-system.com/sprint-board-system/internal/objectstore"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"
)

type AttachmentService struct {
	attachments *repository.AttachmentRepository
	issues      *repository.IssueRepository
	projects    *repository.ProjectRepository
	store       objectstore.Store
	bucket      string
}

func NewAttachmentService(
	attachments *repository.AttachmentRepository,
	issues *repository.IssueRepository,
	projects *repository.ProjectRepository,
	store objectstore.Store,
	bucket string,
) *AttachmentService {
	return &AttachmentService{
		attachments: attachments,
		issues:      issues,
		projects:    projects,
		store:       store,
		bucket:      bucket,
	}
}

func (s *AttachmentService) Upload(ctx context.Context, actor *model.Profile, issueID, fileName, contentType string, data []byte) (*model.Attachment, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s-%s", issueID, uuid.NewString(), fileName)
	stored, err := s.store.Upload(ctx, s.bucket, path, data, contentType)
	if err != nil {
		return nil, err
	}

	return s.attachments.Create(ctx, &model.Attachment{
		IssueID:     issueID,
		UploaderID:  actor.ID,
		FileName:    fileName,
		StoragePath: stored,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
	})
}

func (s *AttachmentService) ListByIssue(ctx context.Context, actor *model.Profile, issueID string) ([]model.Attachment, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return nil, err
	}
	return s.attachments.ListByIssue(ctx, issueID)
}

// Delete removes the metadata row first; the blob removal afterwards
// is best-effort.
func (s *AttachmentService) Delete(ctx context.Context, actor *model.Profile, attachmentID string) error {
	attachment, err := s.attachments.FindByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	issue, err := s.issues.FindByID(ctx, attachment.IssueID)
	if err != nil {
		return err
	}
	if err := requireProjectMember(ctx, s.projects, issue.ProjectID, actor.ID); err != nil {
		return err
	}

	if err := s.attachments.Delete(ctx, attachmentID); err != nil {
		return err
	}

	if err := s.store.Remove(ctx, s.bucket, []string{attachment.StoragePath}); err != nil {
		log.Printf("blob removal failed for attachment %s: %v", attachmentID, err)
	}
	return nil
}
