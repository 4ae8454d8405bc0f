package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/gr36/clubactiv/internal/domain/entity"
	"github.com/gr36/clubactiv/internal/domain/repository"
	"github.com/gr36/clubactiv/pkg/helpers"
)

// CachedRoleRepository is a read-through Redis cache in front of a RoleRepository.
// Only found roles are cached so a re-seeded role is picked up on the next lookup.
// Redis failures fall through to the wrapped repository.
type CachedRoleRepository struct {
	Next   repository.RoleRepository
	Redis  *redis.Client
	TTL    time.Duration
	Logger *logrus.Logger
}

func NewCachedRoleRepository(next repository.RoleRepository, rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) repository.RoleRepository {
	if rdb == nil || ttl <= 0 {
		return next
	}
	return &CachedRoleRepository{Next: next, Redis: rdb, TTL: ttl, Logger: logger}
}

func roleKey(name string) string {
	return "role:name:" + name
}

func (c *CachedRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var cached entity.Role
	hit, err := helpers.RedisGetJSON(ctx, c.Redis, roleKey(name), &cached)
	if err != nil {
		c.warn(err, name, "role cache read failed")
	} else if hit {
		return &cached, nil
	}

	role, err := c.Next.FindByName(ctx, name)
	if err != nil || role == nil {
		return role, err
	}
	if err := helpers.RedisSetJSON(ctx, c.Redis, roleKey(name), role, c.TTL); err != nil {
		c.warn(err, name, "role cache write failed")
	}
	return role, nil
}

func (c *CachedRoleRepository) List(ctx context.Context) ([]entity.Role, error) {
	return c.Next.List(ctx)
}

// Invalidate drops cached entries for the given role names.
func (c *CachedRoleRepository) Invalidate(ctx context.Context, names ...string) error {
	return InvalidateRoles(ctx, c.Redis, names...)
}

// InvalidateRoles drops cached role entries. cmd/seed calls it after
// re-inserting roles, since a re-inserted role gets a new ID.
func InvalidateRoles(ctx context.Context, rdb *redis.Client, names ...string) error {
	if rdb == nil || len(names) == 0 {
		return nil
	}
	keys := make([]string, 0, len(names))
	for _, n := range names {
		keys = append(keys, roleKey(n))
	}
	return helpers.RedisDel(ctx, rdb, keys...)
}

func (c *CachedRoleRepository) warn(err error, name, msg string) {
	if c.Logger != nil {
		c.Logger.WithError(err).WithField("role", name).Warn(msg)
	}
}
