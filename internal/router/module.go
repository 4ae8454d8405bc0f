package router

import "github.com/gin-gonic/gin"

// Module describes a feature module that can register its routes on a RouterGroup
type Module interface {
	Register(rg *gin.RouterGroup)
}

// RootModule is implemented by modules that also serve paths outside /api
// (health checks, Prometheus scraping).
type RootModule interface {
	RegisterRoot(engine *gin.Engine)
}
