package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"parley-server/chat-api/internal/domain/file"
)

// UploadedFile represents the database schema for uploaded files
type UploadedFile struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_file_user_created"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID   string         `gorm:"type:varchar(128);index:idx_file_user_created;not null"`
	Name     string         `gorm:"type:varchar(512);not null"`
	RawText  string         `gorm:"type:text"`
	Summary  string         `gorm:"type:text"`
	Metadata datatypes.JSON `gorm:"type:jsonb"`
}

// TableName specifies the table name for UploadedFile.
func (UploadedFile) TableName() string {
	return "uploaded_files"
}

// EtoD converts database entity to domain model
func (f *UploadedFile) EtoD() *file.UploadedFile {
	var meta file.Metadata
	if len(f.Metadata) > 0 {
		_ = json.Unmarshal(f.Metadata, &meta)
	}

	return &file.UploadedFile{
		ID:        f.ID,
		PublicID:  f.PublicID,
		UserID:    f.UserID,
		Name:      f.Name,
		RawText:   f.RawText,
		Summary:   f.Summary,
		Metadata:  meta,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// NewSchemaUploadedFile creates a database entity from domain model
func NewSchemaUploadedFile(f *file.UploadedFile) (*UploadedFile, error) {
	meta, err := json.Marshal(f.Metadata)
	if err != nil {
		return nil, err
	}

	return &UploadedFile{
		ID:        f.ID,
		PublicID:  f.PublicID,
		UserID:    f.UserID,
		Name:      f.Name,
		RawText:   f.RawText,
		Summary:   f.Summary,
		Metadata:  datatypes.JSON(meta),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}, nil
}
