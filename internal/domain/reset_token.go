package domain

import "time"

// PasswordResetToken is an opaque single-use token tied to a user.
type PasswordResetToken struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Token     string    `json:"-" db:"reset_token"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
