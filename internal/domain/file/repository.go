package file

import "context"

// Repository persists uploaded files.
type Repository interface {
	Create(ctx context.Context, f *UploadedFile) (*UploadedFile, error)
	ListByUser(ctx context.Context, userID string) ([]UploadedFile, error)
	FindOwnedByPublicID(ctx context.Context, userID, publicID string) (*UploadedFile, error)
	UpdateSummary(ctx context.Context, id uint, summary string) error
}
