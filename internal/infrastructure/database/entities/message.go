package entities

import (
	"time"

	"parley-server/chat-api/internal/domain/message"
)

// Message represents the database schema for chat messages
type Message struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_message_user_created"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID      string       `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID        string       `gorm:"type:varchar(128);index:idx_message_user_created;not null"`
	Role          message.Role `gorm:"type:varchar(20);not null"`
	Content       string       `gorm:"type:text;not null"`
	HasAttachment bool         `gorm:"not null;default:false"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// EtoD converts database entity to domain model
func (m *Message) EtoD() *message.Message {
	return &message.Message{
		ID:            m.ID,
		PublicID:      m.PublicID,
		UserID:        m.UserID,
		Role:          m.Role,
		Content:       m.Content,
		HasAttachment: m.HasAttachment,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// NewSchemaMessage creates a database entity from domain model
func NewSchemaMessage(m *message.Message) *Message {
	return &Message{
		ID:            m.ID,
		PublicID:      m.PublicID,
		UserID:        m.UserID,
		Role:          m.Role,
		Content:       m.Content,
		HasAttachment: m.HasAttachment,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
