package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sprint-board-system.com/sprint-board-system/internal/constants"
	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
	"sprint-board-system.com/sprint-board-system/internal/email"
	model "sprint-board-system.com/sprint-board-system/internal/models"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"
)

// captureEmailer records outbound messages instead of delivering them.
type captureEmailer struct {
	mu       sync.Mutex
	messages []email.Message
}

func (c *captureEmailer) Send(_ context.Context, msg email.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	return nil
}

func (c *captureEmailer) sentTo(addr string) []email.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []email.Message
	for _, m := range c.messages {
		if m.To == addr {
			out = append(out, m)
		}
	}
	return out
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Profile{},
		&model.Project{},
		&model.ProjectMember{},
		&model.Sprint{},
		&model.BoardColumn{},
		&model.Issue{},
		&model.Comment{},
		&model.IssueWatcher{},
		&model.Attachment{},
		&model.ActivityLog{},
		&model.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testEnv struct {
	db      *gorm.DB
	emailer *captureEmailer

	profiles      *repository.ProfileRepository
	projects      *repository.ProjectRepository
	issues        *repository.IssueRepository
	sprints       *repository.SprintRepository
	columns       *repository.BoardColumnRepository
	comments      *repository.CommentRepository
	watchers      *repository.WatcherRepository
	attachments   *repository.AttachmentRepository
	activity      *repository.ActivityRepository
	notifications *repository.NotificationRepository

	projectService      *ProjectService
	issueService        *IssueService
	sprintService       *SprintService
	boardService        *BoardService
	commentService      *CommentService
	notificationService *NotificationService
	activityService     *ActivityService
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)

	env := &testEnv{
		db:            db,
		emailer:       &captureEmailer{},
		profiles:      repository.NewProfileRepository(db),
		projects:      repository.NewProjectRepository(db),
		issues:        repository.NewIssueRepository(db),
		sprints:       repository.NewSprintRepository(db),
		columns:       repository.NewBoardColumnRepository(db),
		comments:      repository.NewCommentRepository(db),
		watchers:      repository.NewWatcherRepository(db),
		attachments:   repository.NewAttachmentRepository(db),
		activity:      repository.NewActivityRepository(db),
		notifications: repository.NewNotificationRepository(db),
	}

	env.activityService = NewActivityService(env.activity)
	env.notificationService = NewNotificationService(env.profiles, env.notifications, env.emailer)
	env.projectService = NewProjectService(env.projects)
	env.issueService = NewIssueService(env.issues, env.projects, env.columns, env.watchers, env.activityService, env.notificationService)
	env.sprintService = NewSprintService(env.sprints, env.issues, env.projects, env.notificationService)
	env.boardService = NewBoardService(env.columns, env.issues, env.projects, env.activityService)
	env.commentService = NewCommentService(env.comments, env.issues, env.projects, env.watchers, env.activityService, env.notificationService)

	return env
}

func (env *testEnv) createProfile(t *testing.T, displayName string) *model.Profile {
	t.Helper()
	profile, err := env.profiles.Create(context.Background(), &model.Profile{
		Email:       uuid.NewString() + "@example.com",
		DisplayName: displayName,
		FullName:    displayName,
		APIToken:    uuid.NewString(),
	})
	require.NoError(t, err)
	return profile
}

func (env *testEnv) createProject(t *testing.T, owner *model.Profile, key string) *model.Project {
	t.Helper()
	project, err := env.projectService.Create(context.Background(), owner, &dto.CreateProjectRequest{
		Name: key + " project",
		Key:  key,
	})
	require.NoError(t, err)
	return project
}

func (env *testEnv) addMember(t *testing.T, projectID string, user *model.Profile) {
	t.Helper()
	err := env.projects.AddMember(context.Background(), &model.ProjectMember{
		ProjectID: projectID,
		UserID:    user.ID,
		Role:      constants.RoleMember,
	})
	require.NoError(t, err)
}

// columnFor returns the lowest-position column of the given status.
func (env *testEnv) columnFor(t *testing.T, projectID string, status constants.IssueStatus) *model.BoardColumn {
	t.Helper()
	columns, err := env.columns.ListByProject(context.Background(), projectID)
	require.NoError(t, err)
	for i := range columns {
		if columns[i].Status == status {
			return &columns[i]
		}
	}
	t.Fatalf("no column with status %s", status)
	return nil
}

func (env *testEnv) createIssue(t *testing.T, actor *model.Profile, projectID, summary string) *model.Issue {
	t.Helper()
	issue, err := env.issueService.Create(context.Background(), actor, projectID, &dto.CreateIssueRequest{
		Summary:   summary,
		IssueType: constants.TypeTask,
	})
	require.NoError(t, err)
	return issue
}

func (env *testEnv) notificationsFor(t *testing.T, recipientID string, ntype constants.NotificationType) []model.Notification {
	t.Helper()
	rows, err := env.notifications.ListByRecipient(context.Background(), recipientID, false, 100, 0)
	require.NoError(t, err)
	var out []model.Notification
	for _, n := range rows {
		if n.Type == ntype {
			out = append(out, n)
		}
	}
	return out
}
