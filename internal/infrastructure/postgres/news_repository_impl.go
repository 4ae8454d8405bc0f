package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gr36/clubactiv/internal/domain/entity"
	"github.com/gr36/clubactiv/internal/domain/repository"
)

type NewsRepository struct {
	pool *pgxpool.Pool
}

func NewNewsRepository(pool *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{pool: pool}
}

func (r *NewsRepository) Create(ctx context.Context, n *entity.News) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO news (title, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, n.Title, n.Description, n.CreatedBy)

	return row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*entity.News, error) {
	n := &entity.News{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, description, created_by, image_url, created_at, updated_at
		FROM news
		WHERE id = $1
	`, id).Scan(&n.ID, &n.Title, &n.Description, &n.CreatedBy, &n.ImageURL, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return n, nil
}

func (r *NewsRepository) List(ctx context.Context, limit, offset int) ([]entity.News, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, created_by, image_url, created_at, updated_at
		FROM news
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.News, error) {
		var n entity.News
		err := row.Scan(&n.ID, &n.Title, &n.Description, &n.CreatedBy, &n.ImageURL, &n.CreatedAt, &n.UpdatedAt)
		return n, err
	})
}

func (r *NewsRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *NewsRepository) SetImageURL(ctx context.Context, id int64, url string) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE news
		SET image_url = $1, updated_at = now()
		WHERE id = $2
	`, url, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.NewsRepository = (*NewsRepository)(nil)
