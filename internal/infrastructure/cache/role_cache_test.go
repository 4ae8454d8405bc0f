package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gr36/clubactiv/internal/domain/entity"
	"github.com/gr36/clubactiv/internal/domain/repository/mocks"
	"github.com/gr36/clubactiv/pkg/helpers"
)

func newCache(t *testing.T, next *mocks.RoleRepository) (*CachedRoleRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo, ok := NewCachedRoleRepository(next, rdb, time.Minute, helpers.NewNopLogger()).(*CachedRoleRepository)
	require.True(t, ok)
	return repo, mr
}

func TestNewCachedRoleRepositoryWithoutRedisReturnsNext(t *testing.T) {
	next := new(mocks.RoleRepository)

	assert.Same(t, next, NewCachedRoleRepository(next, nil, time.Minute, nil))
}

func TestNewCachedRoleRepositoryZeroTTLReturnsNext(t *testing.T) {
	next := new(mocks.RoleRepository)
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer func() { _ = rdb.Close() }()

	assert.Same(t, next, NewCachedRoleRepository(next, rdb, 0, nil))
}

func TestFindByNameServesSecondLookupFromRedis(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.RoleRepository)
	admin := &entity.Role{ID: "r-1", Name: entity.RoleAdmin}
	next.On("FindByName", ctx, entity.RoleAdmin).Return(admin, nil).Once()
	repo, mr := newCache(t, next)

	first, err := repo.FindByName(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	second, err := repo.FindByName(ctx, entity.RoleAdmin)
	require.NoError(t, err)

	assert.Same(t, admin, first)
	assert.Equal(t, admin.ID, second.ID)
	assert.Equal(t, admin.Name, second.Name)
	next.AssertNumberOfCalls(t, "FindByName", 1)

	assert.True(t, mr.Exists(roleKey(entity.RoleAdmin)))
	assert.Equal(t, time.Minute, mr.TTL(roleKey(entity.RoleAdmin)))
}

func TestFindByNameAbsentIsNotCached(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.RoleRepository)
	next.On("FindByName", ctx, entity.RoleUser).Return(nil, nil).Twice()
	repo, mr := newCache(t, next)

	for i := 0; i < 2; i++ {
		got, err := repo.FindByName(ctx, entity.RoleUser)
		require.NoError(t, err)
		assert.Nil(t, got)
	}

	assert.False(t, mr.Exists(roleKey(entity.RoleUser)))
	next.AssertExpectations(t)
}

func TestFindByNameExpiredEntryReloads(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.RoleRepository)
	next.On("FindByName", ctx, entity.RoleUser).Return(&entity.Role{ID: "r-2", Name: entity.RoleUser}, nil).Twice()
	repo, mr := newCache(t, next)

	_, err := repo.FindByName(ctx, entity.RoleUser)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = repo.FindByName(ctx, entity.RoleUser)
	require.NoError(t, err)

	next.AssertExpectations(t)
}

func TestInvalidateRemovesEntries(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.RoleRepository)
	next.On("FindByName", ctx, entity.RoleAdmin).Return(&entity.Role{ID: "old", Name: entity.RoleAdmin}, nil).Once()
	next.On("FindByName", ctx, entity.RoleAdmin).Return(&entity.Role{ID: "new", Name: entity.RoleAdmin}, nil).Once()
	repo, mr := newCache(t, next)

	got, err := repo.FindByName(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "old", got.ID)

	require.NoError(t, repo.Invalidate(ctx, entity.RoleAdmin, entity.RoleUser))
	assert.False(t, mr.Exists(roleKey(entity.RoleAdmin)))

	got, err = repo.FindByName(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
}

func TestInvalidateRolesWithoutRedis(t *testing.T) {
	assert.NoError(t, InvalidateRoles(context.Background(), nil, entity.RoleAdmin))
}

// An unreachable Redis must not hide the database answer.
func TestFindByNameFallsThroughWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.RoleRepository)
	admin := &entity.Role{ID: "r-1", Name: entity.RoleAdmin}
	next.On("FindByName", ctx, entity.RoleAdmin).Return(admin, nil).Twice()
	repo, mr := newCache(t, next)
	mr.Close()

	for i := 0; i < 2; i++ {
		got, err := repo.FindByName(ctx, entity.RoleAdmin)
		require.NoError(t, err)
		assert.Same(t, admin, got)
	}
	next.AssertExpectations(t)
}

func TestFindByNameCorruptEntryFallsThrough(t *testing.T) {
	ctx := context.Background()
	next := new(mocks.RoleRepository)
	admin := &entity.Role{ID: "r-1", Name: entity.RoleAdmin}
	next.On("FindByName", ctx, entity.RoleAdmin).Return(admin, nil).Once()
	repo, mr := newCache(t, next)
	require.NoError(t, mr.Set(roleKey(entity.RoleAdmin), "{not json"))

	got, err := repo.FindByName(ctx, entity.RoleAdmin)

	require.NoError(t, err)
	assert.Same(t, admin, got)
	next.AssertExpectations(t)
}

func TestRoleKey(t *testing.T) {
	assert.Equal(t, "role:name:ROLE_ADMIN", roleKey(entity.RoleAdmin))
}
