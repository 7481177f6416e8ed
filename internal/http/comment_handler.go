package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
	middleware "sprint-board-system.com/sprint-board-system/internal/http/middlewares"
	"sprint-board-system.com/sprint-board-system/internal/http/validators"

	dto "sprint-board-system.com/sprint-board-system/internal/data_models"
)

func (h *Handler) CreateComment(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateCommentRequest(&req); err != nil {
		return respondError(c, err)
	}

	comment, err := h.comments.Create(c.Request().Context(), actor, c.Param("id"), req.Body)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, comment)
}

func (h *Handler) ListComments(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	comments, err := h.comments.ListByIssue(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, comments)
}

func (h *Handler) DeleteComment(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	if err := h.comments.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"deleted": true})
}

func (h *Handler) UploadAttachment(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	file, err := c.FormFile("file")
	if err != nil {
		return respondError(c, &apperrors.Exception{
			Message:    "file is required",
			StatusCode: http.StatusBadRequest,
		})
	}

	src, err := file.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return respondError(c, err)
	}

	attachment, err := h.attachments.Upload(
		c.Request().Context(), actor, c.Param("id"),
		file.Filename, file.Header.Get("Content-Type"), data,
	)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, attachment)
}

func (h *Handler) ListAttachments(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	attachments, err := h.attachments.ListByIssue(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, attachments)
}

func (h *Handler) DeleteAttachment(c echo.Context) error {
	actor := middleware.CurrentProfile(c)

	if err := h.attachments.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, echo.Map{"deleted": true})
}
