package user

import (
	"context"
)

// UserRepository is the single user surface. Implementations keep an email
// index and an id index consistent with each other; email lookups are
// case-insensitive.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	// Update replaces the stored record matched by ID. When the email
	// changed, the email index is re-keyed accordingly.
	Update(ctx context.Context, updated User) (User, error)
	Delete(ctx context.Context, id string) error
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
