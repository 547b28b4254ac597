package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/student-portal/internal/model"
	"github.com/iliyamo/student-portal/internal/repository"
)

// CourseHandler bundles dependencies for catalog endpoints.
type CourseHandler struct {
	Courses *repository.CourseRepo
}

func NewCourseHandler(courses *repository.CourseRepo) *CourseHandler {
	return &CourseHandler{Courses: courses}
}

type createCourseReq struct {
	Title       string  `json:"title"`
	Instructor  string  `json:"instructor"`
	Credits     int     `json:"credits"`
	Price       float64 `json:"price"`
	Level       string  `json:"level"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

// List returns the full catalog.  The route is public so prospective
// students can browse before registering.
func (h *CourseHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	courses, err := h.Courses.List(ctx)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, courses)
}

// Create adds a catalog entry.  Admin only; the route group enforces the
// role.  New courses always start with zero enrolled students.
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Instructor) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/instructor required"})
	}
	switch req.Level {
	case model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid level"})
	}
	status := req.Status
	if status == "" {
		status = model.CourseActive
	}
	if status != model.CourseActive && status != model.CourseInactive {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	now := time.Now().UTC()
	course := model.Course{
		ID:          repository.NewID(),
		Title:       req.Title,
		Instructor:  strings.TrimSpace(req.Instructor),
		Credits:     req.Credits,
		Price:       req.Price,
		Level:       req.Level,
		Duration:    req.Duration,
		Description: req.Description,
		Status:      status,
		Students:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Courses.Create(ctx, course); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "course": course})
}
