package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/student-portal/internal/auth"
	"github.com/iliyamo/student-portal/internal/model"
)

// sessionKey is the echo context key the resolved identity is stored under.
const sessionKey = "session"

// SessionAuth returns an Echo middleware that resolves the session cookie
// into an AuthSession and stores it in the request context.  A missing,
// malformed, expired or tampered token is rejected uniformly with 401; the
// response never reveals which of those it was.  This middleware should
// wrap every route that requires an authenticated user.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := auth.SessionFromRequest(secret, c.Request())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// CurrentSession returns the identity stored by SessionAuth.  The second
// result is false when the route was not wrapped by SessionAuth.
func CurrentSession(c echo.Context) (model.AuthSession, bool) {
	sess, ok := c.Get(sessionKey).(model.AuthSession)
	return sess, ok
}
