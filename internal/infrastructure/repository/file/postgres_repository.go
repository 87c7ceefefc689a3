package file

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "parley-server/chat-api/internal/domain/file"
	"parley-server/chat-api/internal/infrastructure/database/entities"
	"parley-server/chat-api/internal/utils/platformerrors"
)

// Repository persists uploaded files.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds an uploaded file repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the file record.
func (r *Repository) Create(ctx context.Context, f *domain.UploadedFile) (*domain.UploadedFile, error) {
	entity, err := entities.NewSchemaUploadedFile(f)
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeInternal,
			"failed to encode file metadata",
			err,
			"encode-file-metadata-error",
		)
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create uploaded file",
			err,
			"create-file-error",
		)
	}

	return entity.EtoD(), nil
}

// ListByUser fetches all files a user has uploaded, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.UploadedFile, error) {
	var records []entities.UploadedFile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list uploaded files",
			err,
			"list-files-error",
		)
	}

	result := make([]domain.UploadedFile, len(records))
	for i := range records {
		result[i] = *records[i].EtoD()
	}
	return result, nil
}

// FindOwnedByPublicID fetches a file by public ID, scoped to its owner.
func (r *Repository) FindOwnedByPublicID(ctx context.Context, userID, publicID string) (*domain.UploadedFile, error) {
	var entity entities.UploadedFile
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND public_id = ?", userID, publicID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("uploaded file not found: %s", publicID),
				nil,
				"find-file-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch uploaded file",
			err,
			"find-file-error",
		)
	}

	return entity.EtoD(), nil
}

// UpdateSummary stores a regenerated summary.
func (r *Repository) UpdateSummary(ctx context.Context, id uint, summary string) error {
	if err := r.db.WithContext(ctx).Model(&entities.UploadedFile{}).
		Where("id = ?", id).
		Update("summary", summary).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update file summary",
			err,
			"update-file-summary-error",
		)
	}
	return nil
}
