package chat

import (
	"context"

	"parley-server/chat-api/internal/domain/message"
)

// Service exposes the chat domain operations consumed by the HTTP layer.
type Service interface {
	AssembleAndRespond(ctx context.Context, userID string, input AskInput) (*Exchange, error)
	History(ctx context.Context, userID string) ([]message.Message, int64, error)
}

var _ Service = (*Assembler)(nil)
