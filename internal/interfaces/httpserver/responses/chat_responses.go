package responses

import (
	"parley-server/chat-api/internal/domain/chat"
	"parley-server/chat-api/internal/domain/message"
)

// MessagePayload is a single chat message returned to clients.
type MessagePayload struct {
	ID            string `json:"id"`
	Role          string `json:"role"`
	Content       string `json:"content"`
	HasAttachment bool   `json:"has_attachment"`
	CreatedAt     int64  `json:"created_at"`
}

// ChatResponse is returned for a completed chat turn.
type ChatResponse struct {
	UserMessage      MessagePayload `json:"user_message"`
	AssistantMessage MessagePayload `json:"assistant_message"`
	Keywords         []string       `json:"keywords"`
}

// PartialChatResponse is returned when the user message was stored but the
// assistant reply could not be.
type PartialChatResponse struct {
	Error       string         `json:"error"`
	UserMessage MessagePayload `json:"user_message"`
	RequestID   string         `json:"request_id,omitempty"`
}

// MessageListResponse wraps the caller's message history.
type MessageListResponse struct {
	Data  []MessagePayload `json:"data"`
	Total int64            `json:"total"`
}

// MessageFromDomain maps a domain message to its DTO.
func MessageFromDomain(m *message.Message) MessagePayload {
	return MessagePayload{
		ID:            m.PublicID,
		Role:          string(m.Role),
		Content:       m.Content,
		HasAttachment: m.HasAttachment,
		CreatedAt:     m.CreatedAt.Unix(),
	}
}

// ChatFromDomain maps a completed exchange to its DTO.
func ChatFromDomain(ex *chat.Exchange) ChatResponse {
	return ChatResponse{
		UserMessage:      MessageFromDomain(ex.UserMessage),
		AssistantMessage: MessageFromDomain(ex.AssistantMessage),
		Keywords:         ex.Keywords,
	}
}

// MessageListFromDomain maps a message history to its DTO.
func MessageListFromDomain(history []message.Message, total int64) MessageListResponse {
	data := make([]MessagePayload, 0, len(history))
	for i := range history {
		data = append(data, MessageFromDomain(&history[i]))
	}
	return MessageListResponse{Data: data, Total: total}
}
