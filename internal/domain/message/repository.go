package message

import "context"

// Repository persists chat messages.
type Repository interface {
	Create(ctx context.Context, msg *Message) (*Message, error)
	ListByUser(ctx context.Context, userID string) ([]Message, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
