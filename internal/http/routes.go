package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "sprint-board-system.com/sprint-board-system/internal/http/middlewares"
	"sprint-board-system.com/sprint-board-system/internal/identity"
)

func Register(e *echo.Echo, h *Handler, provider identity.Provider, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/healthz", h.Health)

	api := e.Group("/api", middleware.Auth(provider))

	api.POST("/projects", h.CreateProject)
	api.GET("/projects", h.ListProjects)
	api.GET("/projects/:projectID", h.GetProject)
	api.POST("/projects/:projectID/members", h.AddProjectMember)
	api.GET("/projects/:projectID/members", h.ListProjectMembers)

	api.POST("/projects/:projectID/issues", h.CreateIssue)
	api.GET("/projects/:projectID/backlog", h.ListBacklog)
	api.GET("/projects/:projectID/board", h.GetBoard)
	api.POST("/projects/:projectID/columns", h.CreateColumn)
	api.PATCH("/columns/:id", h.UpdateColumn)
	api.DELETE("/columns/:id", h.DeleteColumn)

	api.GET("/issues/:id", h.GetIssue)
	api.PATCH("/issues/:id", h.UpdateIssue)
	api.DELETE("/issues/:id", h.DeleteIssue)
	api.POST("/issues/:id/move", h.MoveIssue)
	api.GET("/issues/:id/activity", h.ListIssueActivity)
	api.PUT("/issues/:id/watchers", h.WatchIssue)
	api.DELETE("/issues/:id/watchers", h.UnwatchIssue)

	api.POST("/issues/:id/comments", h.CreateComment)
	api.GET("/issues/:id/comments", h.ListComments)
	api.DELETE("/comments/:id", h.DeleteComment)

	api.POST("/issues/:id/attachments", h.UploadAttachment)
	api.GET("/issues/:id/attachments", h.ListAttachments)
	api.DELETE("/attachments/:id", h.DeleteAttachment)

	api.POST("/projects/:projectID/sprints", h.CreateSprint)
	api.GET("/projects/:projectID/sprints", h.ListSprints)
	api.GET("/sprints/:id", h.GetSprint)
	api.POST("/sprints/:id/start", h.StartSprint)
	api.POST("/sprints/:id/complete", h.CompleteSprint)

	api.GET("/notifications", h.ListNotifications)
	api.POST("/notifications/:id/read", h.MarkNotificationRead)
	api.POST("/notifications/read-all", h.MarkAllNotificationsRead)

	api.GET("/profile/notification-prefs", h.GetNotificationPrefs)
	api.PUT("/profile/notification-prefs", h.UpdateNotificationPrefs)

	api.GET("/projects/:projectID/filters", h.GetSavedFilters)
	api.PUT("/projects/:projectID/filters", h.PutSavedFilters)
}
