package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "parley-server/chat-api/internal/domain/user"
	"parley-server/chat-api/internal/infrastructure/database/entities"
	"parley-server/chat-api/internal/utils/platformerrors"
)

// Repository persists user accounts.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a user repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the account or refreshes its email on conflict.
func (r *Repository) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	entity := entities.NewSchemaUser(u)

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subject_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
	}).Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to upsert user",
			err,
			"upsert-user-error",
		)
	}

	return r.FindBySubject(ctx, u.SubjectID)
}

// FindBySubject fetches a user by the auth subject claim.
func (r *Repository) FindBySubject(ctx context.Context, subjectID string) (*domain.User, error) {
	var entity entities.User
	if err := r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("user not found: %s", subjectID),
				nil,
				"find-user-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch user",
			err,
			"find-user-error",
		)
	}

	return entity.EtoD(), nil
}

// Update saves profile changes.
func (r *Repository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	entity := entities.NewSchemaUser(u)
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update user",
			err,
			"update-user-error",
		)
	}
	return entity.EtoD(), nil
}
