package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gr36/clubactiv/internal/domain/entity"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateWithRole(ctx context.Context, u *entity.User, roleID string) error {
	return m.Called(ctx, u, roleID).Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepository) AssignRole(ctx context.Context, userID, roleID string) error {
	return m.Called(ctx, userID, roleID).Error(0)
}
