package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sprint-board-system.com/sprint-board-system/internal/errors"
)

// envelope is the uniform response shape: exactly one of Data and
// Error is non-null.
type envelope struct {
	Data  interface{} `json:"data"`
	Error interface{} `json:"error"`
}

func respondData(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, envelope{Data: payload})
}

// respondError maps known exceptions onto their status code. Anything
// else is a dependency failure: logged with full detail, reported to
// the client as an opaque 500.
func respondError(c echo.Context, err error) error {
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return c.JSON(ex.StatusCode, envelope{Error: ex.Message})
	}

	log.Printf("request failed: %s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, envelope{Error: "internal server error"})
}
