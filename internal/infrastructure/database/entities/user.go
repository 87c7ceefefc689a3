package entities

import (
	"time"

	"parley-server/chat-api/internal/domain/user"
)

// User represents the database schema for provisioned accounts
type User struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	SubjectID string `gorm:"type:varchar(128);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(256);index:idx_user_email"`
	Name      string `gorm:"type:varchar(256)"`
	AvatarURL string `gorm:"type:varchar(1024)"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}

// EtoD converts database entity to domain model
func (u *User) EtoD() *user.User {
	return &user.User{
		ID:        u.ID,
		SubjectID: u.SubjectID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewSchemaUser creates a database entity from domain model
func NewSchemaUser(u *user.User) *User {
	return &User{
		ID:        u.ID,
		SubjectID: u.SubjectID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
