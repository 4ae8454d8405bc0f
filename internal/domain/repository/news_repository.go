package repository

import (
	"context"

	"github.com/gr36/clubactiv/internal/domain/entity"
)

// NewsRepository persists news items.
// GetByID returns (nil, nil) when the id is unknown; Delete and SetImageURL
// report false when no row was affected.
type NewsRepository interface {
	Create(ctx context.Context, n *entity.News) error
	GetByID(ctx context.Context, id int64) (*entity.News, error)
	List(ctx context.Context, limit, offset int) ([]entity.News, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SetImageURL(ctx context.Context, id int64, url string) (bool, error)
}
