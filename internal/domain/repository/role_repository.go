package repository

import (
	"context"

	"github.com/gr36/clubactiv/internal/domain/entity"
)

// RoleRepository is the read-only view of persisted roles.
// FindByName returns (nil, nil) when no role carries the given name.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	List(ctx context.Context) ([]entity.Role, error)
}
