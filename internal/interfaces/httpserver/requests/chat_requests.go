package requests

// ChatRequest represents one user turn sent to the assistant.
type ChatRequest struct {
	Message       string   `json:"message"`
	FileIDs       []string `json:"file_ids,omitempty"`
	HasAttachment bool     `json:"has_attachment,omitempty"`
}
