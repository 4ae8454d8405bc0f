package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gr36/clubactiv/internal/application"
	"github.com/gr36/clubactiv/pkg/response"
)

type RoleHandler struct {
	Svc    *application.RoleService
	Logger *logrus.Logger
}

func NewRoleHandler(svc *application.RoleService, logger *logrus.Logger) *RoleHandler {
	return &RoleHandler{Svc: svc, Logger: logger}
}

func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, roles, "roles", nil)
}

// Health reports 503 while either seed role is missing.
func (h *RoleHandler) Health(c *gin.Context) {
	if err := h.Svc.VerifySeedData(c.Request.Context()); err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("health check failed")
		}
		detail := "database unavailable"
		if errors.Is(err, application.ErrConfigurationDefect) {
			detail = err.Error()
		}
		response.Error[any](c, http.StatusServiceUnavailable, "unhealthy", detail)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"seed_roles": "ok"}, "healthy", nil)
}
