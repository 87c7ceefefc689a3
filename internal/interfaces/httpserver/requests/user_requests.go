package requests

// UpdateProfileRequest updates the caller's profile.
type UpdateProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
