package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sprint-board-system.com/sprint-board-system/internal/filters"
	"sprint-board-system.com/sprint-board-system/internal/services"
)

type Handler struct {
	projects      *services.ProjectService
	issues        *services.IssueService
	sprints       *services.SprintService
	board         *services.BoardService
	comments      *services.CommentService
	attachments   *services.AttachmentService
	notifications *services.NotificationService
	filters       filters.Store
}

func NewHandler(
	projects *services.ProjectService,
	issues *services.IssueService,
	sprints *services.SprintService,
	board *services.BoardService,
	comments *services.CommentService,
	attachments *services.AttachmentService,
	notifications *services.NotificationService,
	filterStore filters.Store,
) *Handler {
	return &Handler{
		projects:      projects,
		issues:        issues,
		sprints:       sprints,
		board:         board,
		comments:      comments,
		attachments:   attachments,
		notifications: notifications,
		filters:       filterStore,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
