package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/gr36/clubactiv/internal/interface/http"
	"github.com/gr36/clubactiv/internal/interface/middleware"
)

// NewsModule serves /api/news.
// Reads: GET /news, GET /news/search, GET /news/:id
// Writes: POST /news, DELETE /news/:id, POST /news/:id/image
type NewsModule struct {
	Handler *handlers.NewsHandler
	Redis   *redis.Client
}

func NewNewsModule(h *handlers.NewsHandler, rdb *redis.Client) *NewsModule {
	return &NewsModule{Handler: h, Redis: rdb}
}

func (m *NewsModule) Register(rg *gin.RouterGroup) {
	reads := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), nil)
	search := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIPAndPath(), nil)
	writes := middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/news", reads, m.Handler.List)
	rg.GET("/news/search", search, m.Handler.Search)
	rg.GET("/news/:id", reads, m.Handler.Get)

	rg.POST("/news", writes, m.Handler.Create)
	rg.DELETE("/news/:id", writes, m.Handler.Delete)
	rg.POST("/news/:id/image", writes, m.Handler.UploadImage)
}
