package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/student-portal/internal/handler"
	"github.com/iliyamo/student-portal/internal/middleware"
	"github.com/iliyamo/student-portal/internal/model"
)

// Handlers collects the handler bundles the router wires up.
type Handlers struct {
	Auth        *handler.AuthHandler
	Courses     *handler.CourseHandler
	Enrollments *handler.EnrollmentHandler
	Payments    *handler.PaymentHandler
	Admin       *handler.AdminHandler
}

// RegisterRoutes registers routes that do not require authentication.
// The health check lives at the root so load balancers can probe it
// without a version prefix.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPortal registers the portal API.  Unauthenticated operations
// (register, login, course browsing) live under /v1; everything else sits
// behind the session middleware, and admin routes additionally behind the
// role check.
func RegisterPortal(e *echo.Echo, h Handlers, jwtSecret string) {
	// Session endpoints.  Logout only clears a cookie, so it needs no
	// valid session to succeed.
	authGroup := e.Group("/v1/auth")
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/logout", h.Auth.Logout)

	// Public catalog browsing for prospective students.
	e.GET("/v1/courses", h.Courses.List)

	// Routes for any authenticated user.
	user := e.Group("/v1")
	user.Use(middleware.SessionAuth(jwtSecret))
	user.GET("/auth/me", h.Auth.Me)
	user.GET("/enrollments", h.Enrollments.List)
	user.POST("/enrollments", h.Enrollments.Enroll)
	user.PATCH("/enrollments/:id/progress", h.Enrollments.UpdateProgress)
	user.GET("/payments", h.Payments.List)
	user.POST("/payments", h.Payments.Create)

	// Administrator routes.
	admin := e.Group("/v1")
	admin.Use(middleware.SessionAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/courses", h.Courses.Create)
	admin.POST("/payments/:id/confirm", h.Payments.Confirm)
	admin.GET("/admin/students", h.Admin.ListStudents)
	admin.GET("/admin/payments", h.Admin.ListPayments)
}
