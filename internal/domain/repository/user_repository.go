package repository

import (
	"context"
	"errors"

	"github.com/gr36/clubactiv/internal/domain/entity"
)

// ErrDuplicateEmail is returned by writes that hit the unique email constraint.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the interface for user-related database operations.
// GetByID and GetByEmail return (nil, nil) when no user matches.
type UserRepository interface {
	// CreateWithRole inserts the user and its first role atomically.
	// Nothing is stored if either write fails.
	CreateWithRole(ctx context.Context, u *entity.User, roleID string) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	AssignRole(ctx context.Context, userID, roleID string) error
}
