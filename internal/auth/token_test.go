package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iliyamo/student-portal/internal/model"
)

const testSecret = "unit-test-secret-not-for-production"

func testSession() model.AuthSession {
	return model.AuthSession{
		UserID:    "u1",
		Email:     "a@x.com",
		FullName:  "Ada Lovelace",
		Role:      model.RoleStudent,
		StudentID: "ST1001",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	want := testSession()
	token, err := IssueToken(testSecret, want, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	got, err := VerifyToken(testSecret, token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestTokenRoundTripWithoutStudentID(t *testing.T) {
	want := model.AuthSession{UserID: "a9", Email: "admin@x.com", FullName: "Root", Role: model.RoleAdmin}
	token, err := IssueToken(testSecret, want, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	got, err := VerifyToken(testSecret, token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestTokenExpiry(t *testing.T) {
	tests := []struct {
		name    string
		ttl     time.Duration
		wantErr bool
	}{
		{"well before expiry", 24 * time.Hour, false},
		{"just before expiry", 2 * time.Second, false},
		{"just after expiry", -2 * time.Second, true},
		{"long expired", -24 * time.Hour, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := IssueToken(testSecret, testSession(), tt.ttl)
			if err != nil {
				t.Fatalf("IssueToken() error = %v", err)
			}
			_, err = VerifyToken(testSecret, token)
			if tt.wantErr && err != ErrInvalidToken {
				t.Errorf("VerifyToken() error = %v, want ErrInvalidToken", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("VerifyToken() error = %v, want nil", err)
			}
		})
	}
}

func TestTokenTamper(t *testing.T) {
	token, err := IssueToken(testSecret, testSession(), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	// Flip one character at a spread of positions across header, payload
	// and signature; every variant must verify as invalid.
	for pos := 0; pos < len(token); pos += 7 {
		if token[pos] == '.' {
			continue
		}
		flipped := byte('A')
		if token[pos] == 'A' {
			flipped = 'B'
		}
		tampered := token[:pos] + string(flipped) + token[pos+1:]
		if tampered == token {
			continue
		}
		if _, err := VerifyToken(testSecret, tampered); err != ErrInvalidToken {
			t.Errorf("VerifyToken(tampered at %d) error = %v, want ErrInvalidToken", pos, err)
		}
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, testSession(), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := VerifyToken("some-other-secret", token); err != ErrInvalidToken {
		t.Errorf("VerifyToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := VerifyToken(testSecret, raw); err != ErrInvalidToken {
			t.Errorf("VerifyToken(%q) error = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestSessionFromRequest(t *testing.T) {
	t.Run("valid cookie", func(t *testing.T) {
		want := testSession()
		token, err := IssueToken(testSecret, want, time.Hour)
		if err != nil {
			t.Fatalf("IssueToken() error = %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

		got, err := SessionFromRequest(testSecret, req)
		if err != nil {
			t.Fatalf("SessionFromRequest() error = %v", err)
		}
		if got != want {
			t.Errorf("session: got %+v, want %+v", got, want)
		}
	})

	t.Run("missing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if _, err := SessionFromRequest(testSecret, req); err != ErrInvalidToken {
			t.Errorf("SessionFromRequest() error = %v, want ErrInvalidToken", err)
		}
	})
}

func TestSessionCookieLifecycle(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "tok", 24*time.Hour, false)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	ck := cookies[0]
	if ck.Name != CookieName || ck.Value != "tok" {
		t.Errorf("cookie = %s=%s, want %s=tok", ck.Name, ck.Value, CookieName)
	}
	if !ck.HttpOnly {
		t.Error("cookie should be httpOnly")
	}
	if ck.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", ck.SameSite)
	}
	if ck.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Errorf("MaxAge = %d, want %d", ck.MaxAge, int((24*time.Hour).Seconds()))
	}

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec, false)
	cookies = rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Error("ClearSessionCookie should set an expired cookie")
	}
}
