package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/student-portal/internal/repository"
)

// AdminHandler bundles dependencies for administrator endpoints.  All
// routes using it sit behind RequireRole(admin).
type AdminHandler struct {
	Users    *repository.UserRepo
	Payments *repository.PaymentRepo
}

func NewAdminHandler(u *repository.UserRepo, p *repository.PaymentRepo) *AdminHandler {
	return &AdminHandler{Users: u, Payments: p}
}

// adminStudent is the student record shape exposed to administrators.
// The stored password hash never leaves the data layer here.
type adminStudent struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	StudentID string `json:"studentId,omitempty"`
	Program   string `json:"program,omitempty"`
	Year      string `json:"year,omitempty"`
}

// ListStudents returns every registered student.
func (h *AdminHandler) ListStudents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	students, err := h.Users.ListStudents(ctx)
	if err != nil {
		return repoError(c, err)
	}
	out := make([]adminStudent, 0, len(students))
	for _, u := range students {
		out = append(out, adminStudent{
			ID:        u.ID,
			Email:     u.Email,
			FullName:  u.FullName,
			StudentID: u.StudentID,
			Program:   u.Program,
			Year:      u.Year,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// ListPayments returns payment activity across all users.
func (h *AdminHandler) ListPayments(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	payments, err := h.Payments.ListAll(ctx)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}
