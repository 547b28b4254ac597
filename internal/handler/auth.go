package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/student-portal/internal/auth"
	"github.com/iliyamo/student-portal/internal/config"
	"github.com/iliyamo/student-portal/internal/model"
	"github.com/iliyamo/student-portal/internal/repository"
	"github.com/iliyamo/student-portal/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	StudentID string `json:"studentId"`
	Program   string `json:"program"`
	Year      string `json:"year"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type sessionResp struct {
	Success bool              `json:"success"`
	User    model.AuthSession `json:"user"`
}

// Register creates a student account, issues a session token and sets the
// session cookie so the new user is logged in immediately.  Email
// uniqueness is enforced by the repository inside its serialized write;
// the address is compared exactly as submitted.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fullName/email/password required"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}

	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" {
		studentID = fmt.Sprintf("ST%d", time.Now().UnixMilli())
	}
	now := time.Now().UTC()
	user := model.User{
		ID:        repository.NewID(),
		Email:     req.Email,
		Password:  hash,
		FullName:  req.FullName,
		Role:      model.RoleStudent,
		StudentID: studentID,
		Program:   strings.TrimSpace(req.Program),
		Year:      strings.TrimSpace(req.Year),
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Create(ctx, user); err != nil {
		return repoError(c, err)
	}
	return h.startSession(c, user, http.StatusCreated)
}

// Login verifies credentials and starts a session.  Unknown email and
// wrong password are answered identically.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return repoError(c, err)
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	return h.startSession(c, u, http.StatusOK)
}

// Logout clears the session cookie.  Tokens are stateless, so there is
// nothing to revoke server-side; the cookie is simply expired.
func (h *AuthHandler) Logout(c echo.Context) error {
	auth.ClearSessionCookie(c.Response(), h.Cfg.Prod())
	return c.NoContent(http.StatusNoContent)
}

// Me returns the profile of the authenticated user, re-read from the
// store so stale token claims never mask an updated or deleted account.
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.FindByID(ctx, sess.UserID)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":        u.ID,
		"email":     u.Email,
		"fullName":  u.FullName,
		"role":      u.Role,
		"studentId": u.StudentID,
		"program":   u.Program,
		"year":      u.Year,
	})
}

func (h *AuthHandler) startSession(c echo.Context, u model.User, status int) error {
	sess := model.AuthSession{
		UserID:    u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		StudentID: u.StudentID,
	}
	token, err := auth.IssueToken(h.Cfg.JWTSecret, sess, h.Cfg.SessionTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	auth.SetSessionCookie(c.Response(), token, h.Cfg.SessionTTL, h.Cfg.Prod())
	return c.JSON(status, sessionResp{Success: true, User: sess})
}
