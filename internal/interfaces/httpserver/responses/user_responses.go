package responses

import (
	"parley-server/chat-api/internal/domain/user"
)

// UserPayload is the caller's account returned to clients.
type UserPayload struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// UserFromDomain maps a domain user to its DTO.
func UserFromDomain(u *user.User) UserPayload {
	return UserPayload{
		ID:        u.SubjectID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Unix(),
	}
}
