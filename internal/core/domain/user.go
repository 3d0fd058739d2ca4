package domain

import "time"

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	First        string    `json:"first"`
	Last         string    `json:"last"`
	Picture      string    `json:"picture,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionUser is the payload kept server-side for a signed-in client.
type SessionUser struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}
