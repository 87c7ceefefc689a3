package message

import (
	"context"

	"gorm.io/gorm"

	domain "parley-server/chat-api/internal/domain/message"
	"parley-server/chat-api/internal/infrastructure/database/entities"
	"parley-server/chat-api/internal/utils/platformerrors"
)

// Repository persists chat messages.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a message repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the message record.
func (r *Repository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	entity := entities.NewSchemaMessage(msg)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create message",
			err,
			"create-message-error",
		)
	}

	return entity.EtoD(), nil
}

// ListByUser fetches all messages for a user in chronological order.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Message, error) {
	var records []entities.Message
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list messages",
			err,
			"list-messages-error",
		)
	}

	result := make([]domain.Message, len(records))
	for i := range records {
		result[i] = *records[i].EtoD()
	}
	return result, nil
}

// CountByUser returns the number of messages stored for a user.
func (r *Repository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Message{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count messages",
			err,
			"count-messages-error",
		)
	}
	return count, nil
}
