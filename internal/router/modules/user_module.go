package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/gr36/clubactiv/internal/interface/http"
	"github.com/gr36/clubactiv/internal/interface/middleware"
)

// UserModule serves registration and default role assignment.
// POST /users, GET /users/:id, POST /users/:id/admin
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.GET("/users/:id", m.Handler.Get)
	rg.POST("/users/:id/admin", m.Handler.GrantAdmin)
}
