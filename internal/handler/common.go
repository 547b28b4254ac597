package handler // handler defines http handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/student-portal/internal/model"
	"github.com/iliyamo/student-portal/internal/repository"
	"github.com/iliyamo/student-portal/internal/store"
)

// currentSession extracts the identity stored by the session middleware.
// Routes registered behind SessionAuth always have one; the error path
// only fires on a wiring mistake.
func currentSession(c echo.Context) (model.AuthSession, error) {
	sess, ok := c.Get("session").(model.AuthSession)
	if !ok {
		return model.AuthSession{}, errors.New("no session in context")
	}
	return sess, nil
}

// repoError maps repository failures onto the HTTP responses the API
// promises: 404 for absent records, 409 for uniqueness conflicts, 503
// when the backing document cannot be read or written, and 500 for
// anything unexpected.
func repoError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	case errors.Is(err, repository.ErrAlreadyEnrolled):
		return c.JSON(http.StatusConflict, echo.Map{"error": "already enrolled in this course"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "conflict"})
	case errors.Is(err, store.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "storage unavailable"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
