package domain

import "time"

// MinPasswordLength is the shortest password accepted for any account.
const MinPasswordLength = 6

// User models an account. Bootstrap marks the administrator created at first
// initialisation; it can never be deleted.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	Bootstrap    bool      `json:"bootstrap,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Viewer is the authenticated identity of the current request.
type Viewer struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

// CanAccess reports whether the viewer may read or modify data owned by userID.
func (v Viewer) CanAccess(userID string) bool {
	return v.IsAdmin || (v.UserID != "" && v.UserID == userID)
}
