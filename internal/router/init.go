package router

import (
	"github.com/gr36/clubactiv/internal/application"
	"github.com/gr36/clubactiv/internal/container"
	"github.com/gr36/clubactiv/internal/infrastructure/cache"
	pginfra "github.com/gr36/clubactiv/internal/infrastructure/postgres"
	"github.com/gr36/clubactiv/internal/infrastructure/search"
	handlers "github.com/gr36/clubactiv/internal/interface/http"
	"github.com/gr36/clubactiv/internal/router/modules"
	"github.com/gr36/clubactiv/pkg/helpers"
)

type Services struct {
	Roles *application.RoleService
	// SeedCheck reads roles straight from Postgres so health and startup
	// checks see a deleted seed role immediately.
	SeedCheck *application.RoleService
	News  *application.NewsService
	Users *application.UserService
}

// BuildServices wires the application services from the container singletons.
func BuildServices() Services {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	pgRoles := pginfra.NewRoleRepository(pool)
	roles := application.NewRoleService(cache.NewCachedRoleRepository(pgRoles, container.GetRedis(), cfg.RoleCacheTTL, logger), logger)
	seedCheck := application.NewRoleService(pgRoles, logger)

	// keep the interfaces nil (not typed-nil) when a backend is not configured
	var index application.NewsIndex
	if es := container.GetES(); es != nil {
		index = search.NewNewsIndex(es, cfg.ESNewsIndex)
	}
	var events application.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		events = pub
	}
	var images application.ImageStore
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		images = helpers.NewGCSBucket(gcs, cfg.GCSBucket)
	}

	news := application.NewNewsService(pginfra.NewNewsRepository(pool), index, events, images, logger)
	users := application.NewUserService(pginfra.NewUserRepository(pool), roles, logger)

	return Services{Roles: roles, SeedCheck: seedCheck, News: news, Users: users}
}

// InitModules registers every feature module with the registry.
// Call once during startup, after the container is populated.
func InitModules(r *Registry, svc Services) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	rdb := container.GetRedis()

	r.Add(modules.NewNewsModule(handlers.NewNewsHandler(svc.News, logger), rdb))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(svc.Users, logger), rdb))
	r.Add(modules.NewRoleModule(handlers.NewRoleHandler(svc.Roles, logger), handlers.NewRoleHandler(svc.SeedCheck, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
}
