package users

import (
	"context"

	"github.com/dmitrijs2005/userhub/internal/server/models"
)

// Repository is the persistence gateway for user accounts.
//
// Create relies on the database's uniqueness constraints for username and
// email: a violating insert fails atomically with shared.ErrorAlreadyExists,
// never with a prior existence check.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID returns (nil, nil) when no such user exists; absence is
	// not an error.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// ChangePassword replaces the stored credential hash and refreshes
	// updated_at. Returns shared.ErrorNotFound for an unknown id.
	ChangePassword(ctx context.Context, id int64, newHash string) error
}
