package file

import (
	"fmt"
	"strings"
	"time"

	"parley-server/chat-api/internal/utils/functional"
	"parley-server/chat-api/internal/utils/idgen"
)

// Metadata captures upload facts about a stored file.
type Metadata struct {
	OriginalName string `json:"original_name"`
	ContentType  string `json:"content_type"`
	SizeBytes    int64  `json:"size_bytes"`
	TextLike     bool   `json:"text_like"`
}

// UploadedFile represents a file a user uploaded for analysis. RawText holds
// the extracted text for text-like files, or a placeholder for binary ones.
type UploadedFile struct {
	ID        uint      `json:"-"`
	PublicID  string    `json:"id"` // string ID like "file_abc123"
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	RawText   string    `json:"-"`
	Summary   string    `json:"summary"`
	Metadata  Metadata  `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// NewUploadedFile builds an unsaved UploadedFile with a fresh public ID.
func NewUploadedFile(userID, name string, meta Metadata) (*UploadedFile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("file name is required")
	}

	publicID, err := idgen.GenerateSecureID("file", 16)
	if err != nil {
		return nil, fmt.Errorf("generate file id: %w", err)
	}

	return &UploadedFile{
		PublicID: publicID,
		UserID:   userID,
		Name:     name,
		Metadata: meta,
	}, nil
}

// IsTextLike reports whether a file with the given content type and name can
// be treated as extractable text.
func IsTextLike(contentType, name string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}
	switch {
	case strings.HasPrefix(ct, "text/"):
		return true
	case ct == "application/json", ct == "application/xml", ct == "application/javascript":
		return true
	}

	lower := strings.ToLower(name)
	return functional.Any([]string{".md", ".csv"}, func(ext string) bool {
		return strings.HasSuffix(lower, ext)
	})
}
