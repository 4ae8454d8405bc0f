// Package mocks holds testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gr36/clubactiv/internal/domain/entity"
)

type RoleRepository struct {
	mock.Mock
}

func (m *RoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	role, _ := args.Get(0).(*entity.Role)
	return role, args.Error(1)
}

func (m *RoleRepository) List(ctx context.Context) ([]entity.Role, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]entity.Role)
	return roles, args.Error(1)
}
