// Package auth issues and verifies the signed session tokens that carry a
// user's identity between requests.  Tokens are HS256 JWTs containing the
// AuthSession fields plus issued-at and expiry claims; no server-side
// session state exists.  Every verification failure, whether a bad
// signature, a malformed token or an expired one, collapses into
// ErrInvalidToken so callers treat them uniformly as "unauthenticated".
package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/student-portal/internal/model"
)

// CookieName is the cookie the session token travels in.
const CookieName = "auth-token"

// DefaultTTL is the token lifetime applied when config does not override it.
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken is the single sentinel for any token that cannot be
// trusted.  Callers must not attempt to distinguish why.
var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs a session token for s, valid for ttl from now.  The
// claims mirror the AuthSession fields so VerifyToken can rebuild the
// identity without touching the store.
func IssueToken(secret string, s model.AuthSession, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       s.UserID,
		"email":     s.Email,
		"full_name": s.FullName,
		"role":      s.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	if s.StudentID != "" {
		claims["student_id"] = s.StudentID
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyToken checks the signature and expiry of raw and returns the
// embedded identity.  It never panics past this boundary.
func VerifyToken(secret, raw string) (model.AuthSession, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return model.AuthSession{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return model.AuthSession{}, ErrInvalidToken
	}
	s := model.AuthSession{
		UserID:    claimString(claims, "sub"),
		Email:     claimString(claims, "email"),
		FullName:  claimString(claims, "full_name"),
		Role:      claimString(claims, "role"),
		StudentID: claimString(claims, "student_id"),
	}
	if s.UserID == "" || s.Role == "" {
		return model.AuthSession{}, ErrInvalidToken
	}
	return s, nil
}

// SessionFromRequest resolves the identity carried by r's session cookie.
// A missing cookie is ErrInvalidToken without any parsing attempt.
func SessionFromRequest(secret string, r *http.Request) (model.AuthSession, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return model.AuthSession{}, ErrInvalidToken
	}
	return VerifyToken(secret, cookie.Value)
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
