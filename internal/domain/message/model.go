package message

import (
	"fmt"
	"strings"
	"time"

	"parley-server/chat-api/internal/utils/idgen"
)

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single chat message owned by a user.
type Message struct {
	ID            uint      `json:"-"`
	PublicID      string    `json:"id"` // string ID like "msg_abc123"
	UserID        string    `json:"-"`
	Role          Role      `json:"role"`
	Content       string    `json:"content"`
	HasAttachment bool      `json:"has_attachment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"-"`
}

// New builds an unsaved Message with a fresh public ID.
func New(userID string, role Role, content string, hasAttachment bool) (*Message, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if role != RoleUser && role != RoleAssistant {
		return nil, fmt.Errorf("invalid message role %q", role)
	}

	publicID, err := idgen.GenerateSecureID("msg", 16)
	if err != nil {
		return nil, fmt.Errorf("generate message id: %w", err)
	}

	return &Message{
		PublicID:      publicID,
		UserID:        userID,
		Role:          role,
		Content:       content,
		HasAttachment: hasAttachment,
	}, nil
}
