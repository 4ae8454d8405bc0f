package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gr36/clubactiv/internal/domain/entity"
)

type NewsRepository struct {
	mock.Mock
}

func (m *NewsRepository) Create(ctx context.Context, n *entity.News) error {
	return m.Called(ctx, n).Error(0)
}

func (m *NewsRepository) GetByID(ctx context.Context, id int64) (*entity.News, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*entity.News)
	return n, args.Error(1)
}

func (m *NewsRepository) List(ctx context.Context, limit, offset int) ([]entity.News, error) {
	args := m.Called(ctx, limit, offset)
	items, _ := args.Get(0).([]entity.News)
	return items, args.Error(1)
}

func (m *NewsRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *NewsRepository) SetImageURL(ctx context.Context, id int64, url string) (bool, error) {
	args := m.Called(ctx, id, url)
	return args.Bool(0), args.Error(1)
}
