package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "sprint-board-system.com/sprint-board-system/internal/configs"
	"sprint-board-system.com/sprint-board-system/internal/email"
	"sprint-board-system.com/sprint-board-system/internal/filters"
	httpapi "sprint-board-system.com/sprint-board-system/internal/http"
	"sprint-board-system.com/sprint-board-system/internal/identity"
	"sprint-board-system.com/sprint-board-system/internal/objectstore"
	repository "sprint-board-system.com/sprint-board-system/internal/repositories"
	"sprint-board-system.com/sprint-board-system/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the sprint board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		db := config.New(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		store, err := objectstore.NewDiskStore(cfg.AttachmentDir)
		if err != nil {
			return err
		}

		var emailer email.Provider = email.LogProvider{}
		if cfg.EmailAPIURL != "" && cfg.EmailAPIKey != "" {
			emailer = email.NewHTTPProvider(cfg.EmailAPIURL, cfg.EmailAPIKey, cfg.EmailFrom)
		}

		profileRepo := repository.NewProfileRepository(db)
		projectRepo := repository.NewProjectRepository(db)
		issueRepo := repository.NewIssueRepository(db)
		sprintRepo := repository.NewSprintRepository(db)
		columnRepo := repository.NewBoardColumnRepository(db)
		commentRepo := repository.NewCommentRepository(db)
		watcherRepo := repository.NewWatcherRepository(db)
		attachmentRepo := repository.NewAttachmentRepository(db)
		activityRepo := repository.NewActivityRepository(db)
		notificationRepo := repository.NewNotificationRepository(db)

		activityService := services.NewActivityService(activityRepo)
		notificationService := services.NewNotificationService(profileRepo, notificationRepo, emailer)
		projectService := services.NewProjectService(projectRepo)
		issueService := services.NewIssueService(issueRepo, projectRepo, columnRepo, watcherRepo, activityService, notificationService)
		sprintService := services.NewSprintService(sprintRepo, issueRepo, projectRepo, notificationService)
		boardService := services.NewBoardService(columnRepo, issueRepo, projectRepo, activityService)
		commentService := services.NewCommentService(commentRepo, issueRepo, projectRepo, watcherRepo, activityService, notificationService)
		attachmentService := services.NewAttachmentService(attachmentRepo, issueRepo, projectRepo, store, cfg.AttachmentBucket)

		filterStore := filters.NewRedisStore(redisClient, cfg.RedisFilterPrefix)
		provider := identity.NewTokenProvider(profileRepo)

		e := echo.New()
		handler := httpapi.NewHandler(
			projectService,
			issueService,
			sprintService,
			boardService,
			commentService,
			attachmentService,
			notificationService,
			filterStore,
		)
		httpapi.Register(e, handler, provider, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
