package responses

import (
	"parley-server/chat-api/internal/domain/file"
)

// FilePayload is an uploaded file returned to clients. Raw content is never
// exposed, only the generated summary and upload metadata.
type FilePayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	TextLike    bool   `json:"text_like"`
	Summary     string `json:"summary"`
	CreatedAt   int64  `json:"created_at"`
}

// FileListResponse wraps the caller's uploaded files.
type FileListResponse struct {
	Data []FilePayload `json:"data"`
}

// FileFromDomain maps a domain file to its DTO.
func FileFromDomain(f *file.UploadedFile) FilePayload {
	return FilePayload{
		ID:          f.PublicID,
		Name:        f.Name,
		ContentType: f.Metadata.ContentType,
		SizeBytes:   f.Metadata.SizeBytes,
		TextLike:    f.Metadata.TextLike,
		Summary:     f.Summary,
		CreatedAt:   f.CreatedAt.Unix(),
	}
}

// FileListFromDomain maps a list of files to its DTO.
func FileListFromDomain(files []file.UploadedFile) FileListResponse {
	data := make([]FilePayload, 0, len(files))
	for i := range files {
		data = append(data, FileFromDomain(&files[i]))
	}
	return FileListResponse{Data: data}
}
