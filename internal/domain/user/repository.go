package user

import "context"

// Repository persists user accounts.
type Repository interface {
	Upsert(ctx context.Context, u *User) (*User, error)
	FindBySubject(ctx context.Context, subjectID string) (*User, error)
	Update(ctx context.Context, u *User) (*User, error)
}
