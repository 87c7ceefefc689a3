package user

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"parley-server/chat-api/internal/utils/platformerrors"
)

// Service exposes the user domain operations consumed by the HTTP layer.
type Service interface {
	Ensure(ctx context.Context, subjectID, email, name string) (*User, error)
	Get(ctx context.Context, subjectID string) (*User, error)
	UpdateProfile(ctx context.Context, subjectID, name, avatarURL string) (*User, error)
}

var _ Service = (*ServiceImpl)(nil)

// ServiceImpl provisions and manages user accounts.
type ServiceImpl struct {
	users Repository
	log   zerolog.Logger
}

// NewService wires dependencies.
func NewService(users Repository, log zerolog.Logger) *ServiceImpl {
	return &ServiceImpl{
		users: users,
		log:   log.With().Str("component", "user-service").Logger(),
	}
}

// Ensure provisions an account for the subject on first sight and refreshes
// the stored email on later logins.
func (s *ServiceImpl) Ensure(ctx context.Context, subjectID, email, name string) (*User, error) {
	if strings.TrimSpace(subjectID) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"subject ID is required", nil, "")
	}

	u, err := s.users.Upsert(ctx, &User{
		SubjectID: subjectID,
		Email:     email,
		Name:      name,
	})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "provision user")
	}
	return u, nil
}

// Get fetches the account for the subject.
func (s *ServiceImpl) Get(ctx context.Context, subjectID string) (*User, error) {
	u, err := s.users.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "fetch user")
	}
	return u, nil
}

// UpdateProfile updates the account's display name and avatar. An empty
// avatar URL leaves the stored value unchanged.
func (s *ServiceImpl) UpdateProfile(ctx context.Context, subjectID, name, avatarURL string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"name must not be empty", nil, "")
	}

	u, err := s.users.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "fetch user")
	}

	u.Name = strings.TrimSpace(name)
	if trimmed := strings.TrimSpace(avatarURL); trimmed != "" {
		u.AvatarURL = trimmed
	}
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "update user")
	}
	return updated, nil
}
