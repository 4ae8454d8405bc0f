package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/gr36/clubactiv/internal/interface/http"
)

// RoleModule exposes GET /api/roles and the seed-data health check at /healthz.
// Health should be built on an uncached role repository.
type RoleModule struct {
	Handler *handlers.RoleHandler
	Health  *handlers.RoleHandler
}

func NewRoleModule(h, health *handlers.RoleHandler) *RoleModule {
	return &RoleModule{Handler: h, Health: health}
}

func (m *RoleModule) Register(rg *gin.RouterGroup) {
	rg.GET("/roles", m.Handler.List)
}

func (m *RoleModule) RegisterRoot(engine *gin.Engine) {
	engine.GET("/healthz", m.Health.Health)
}
