package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/student-portal/internal/model"
	"github.com/iliyamo/student-portal/internal/repository"
)

// EnrollmentHandler bundles dependencies for enrollment endpoints.
type EnrollmentHandler struct {
	Enrollments *repository.EnrollmentRepo
	Courses     *repository.CourseRepo
}

func NewEnrollmentHandler(e *repository.EnrollmentRepo, courses *repository.CourseRepo) *EnrollmentHandler {
	return &EnrollmentHandler{Enrollments: e, Courses: courses}
}

type enrollReq struct {
	CourseID string `json:"courseId"`
}
type progressReq struct {
	Progress int `json:"progress"`
}

// enrollmentView is an enrollment enriched with its course, the shape the
// student dashboard renders directly.
type enrollmentView struct {
	model.Enrollment
	Course *model.Course `json:"course,omitempty"`
}

// List returns the authenticated student's enrollments, each carrying its
// course record.  An enrollment whose course has since disappeared is
// returned without one rather than dropped.
func (h *EnrollmentHandler) List(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	enrollments, err := h.Enrollments.ListByUser(ctx, sess.UserID)
	if err != nil {
		return repoError(c, err)
	}

	views := make([]enrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		v := enrollmentView{Enrollment: e}
		if course, err := h.Courses.FindByID(ctx, e.CourseID); err == nil {
			v.Course = &course
		}
		views = append(views, v)
	}
	return c.JSON(http.StatusOK, views)
}

// Enroll records the authenticated user in a course.  The repository
// rejects a duplicate (user, course) pair and bumps the course's student
// count in the same document write, so the count cannot drift from the
// enrollments it summarizes.
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req enrollReq
	if err := c.Bind(&req); err != nil || req.CourseID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "courseId required"})
	}

	enrollment := model.Enrollment{
		ID:         repository.NewID(),
		UserID:     sess.UserID,
		CourseID:   req.CourseID,
		Progress:   0,
		EnrolledAt: time.Now().UTC(),
		Status:     model.EnrollmentActive,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Enrollments.Create(ctx, enrollment); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "enrollment": enrollment})
}

// UpdateProgress sets the progress percentage on one of the caller's own
// enrollments.  Values outside 0–100 are rejected.
func (h *EnrollmentHandler) UpdateProgress(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req progressReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Progress < 0 || req.Progress > 100 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "progress must be between 0 and 100"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	updated, err := h.Enrollments.UpdateProgress(ctx, sess.UserID, c.Param("id"), req.Progress)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "enrollment": updated})
}
