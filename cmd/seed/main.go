package main

import (
	"context"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/gr36/clubactiv/config"
	"github.com/gr36/clubactiv/internal/application"
	"github.com/gr36/clubactiv/internal/domain/entity"
	"github.com/gr36/clubactiv/internal/infrastructure/cache"
	pginfra "github.com/gr36/clubactiv/internal/infrastructure/postgres"
	"github.com/gr36/clubactiv/pkg/helpers"
)

// seed restores the two seed roles and creates the bootstrap admin account.
// Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBMaxConnLife,
		AppName:         cfg.AppName + "-seed",
	})
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	for _, name := range []string{entity.RoleAdmin, entity.RoleUser} {
		var id string
		if err := pool.QueryRow(ctx, `
			INSERT INTO roles (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
			RETURNING id
		`, name).Scan(&id); err != nil {
			logger.Fatalf("failed to upsert role %s: %v", name, err)
		}
		logger.WithFields(logrus.Fields{"role": name, "id": id}).Info("role ensured")
	}

	// a re-inserted role gets a new id; drop whatever the API cached
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	if err := cache.InvalidateRoles(ctx, rdb, entity.RoleAdmin, entity.RoleUser); err != nil {
		logger.WithError(err).Warn("role cache not invalidated, API may serve stale roles until ROLE_CACHE_TTL")
	}

	roles := application.NewRoleService(pginfra.NewRoleRepository(pool), logger)
	if err := roles.VerifySeedData(ctx); err != nil {
		logger.Fatalf("seed roles still missing: %v", err)
	}
	admin, err := roles.AdminRole(ctx)
	if err != nil {
		logger.Fatalf("resolve admin role: %v", err)
	}
	member, err := roles.UserRole(ctx)
	if err != nil {
		logger.Fatalf("resolve user role: %v", err)
	}

	users := pginfra.NewUserRepository(pool)
	email := strings.ToLower(strings.TrimSpace(cfg.SeedAdminEmail))
	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		logger.Fatalf("lookup admin user: %v", err)
	}
	if u == nil {
		hash, err := helpers.HashPassword(cfg.SeedAdminPassword)
		if err != nil {
			logger.Fatalf("failed to hash password: %v", err)
		}
		u = &entity.User{Email: email, Password: hash, Name: "Administrator"}
		if err := users.CreateWithRole(ctx, u, member.ID); err != nil {
			logger.Fatalf("failed to create admin user: %v", err)
		}
		logger.WithField("email", email).Info("admin user created")
	}

	for _, role := range []*entity.Role{member, admin} {
		if err := users.AssignRole(ctx, u.ID, role.ID); err != nil {
			logger.Fatalf("failed to assign %s: %v", role.Name, err)
		}
	}
	logger.WithFields(logrus.Fields{"user_id": u.ID, "email": email}).Info("admin user ready")
}
