package user

import "time"

// User is a provisioned account keyed by the auth subject.
type User struct {
	ID        uint      `json:"-"`
	SubjectID string    `json:"id"` // token subject claim
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
