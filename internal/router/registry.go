package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them on a gin engine.
// Module routes live under /api; RootModule routes are mounted on the engine
// itself and do not see the /api middleware.
type Registry struct {
	Engine *gin.Engine
	API    *gin.RouterGroup

	apiMiddleware []gin.HandlerFunc
	modules       []Module
	mounted       bool
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use adds middleware applied to /api routes only.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.apiMiddleware = append(r.apiMiddleware, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll mounts every module once and returns the number of routes served.
func (r *Registry) RegisterAll() int {
	if !r.mounted {
		r.API.Use(r.apiMiddleware...)
		for _, m := range r.modules {
			m.Register(r.API)
			if root, ok := m.(RootModule); ok {
				root.RegisterRoot(r.Engine)
			}
		}
		r.mounted = true
	}
	return len(r.Engine.Routes())
}
