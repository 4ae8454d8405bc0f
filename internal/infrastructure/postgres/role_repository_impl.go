package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gr36/clubactiv/internal/domain/entity"
	"github.com/gr36/clubactiv/internal/domain/repository"
)

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	role := &entity.Role{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM roles
		WHERE name = $1
	`, name).Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return role, nil
}

func (r *RoleRepository) List(ctx context.Context) ([]entity.Role, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM roles
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Role, error) {
		var role entity.Role
		err := row.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt)
		return role, err
	})
}

var _ repository.RoleRepository = (*RoleRepository)(nil)
