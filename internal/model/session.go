package model

// AuthSession is the identity payload embedded in a signed session token.
// It is derived from a User snapshot at login or registration time and is
// never persisted; the token itself is the only place it lives.
type AuthSession struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	StudentID string `json:"studentId,omitempty"`
}
