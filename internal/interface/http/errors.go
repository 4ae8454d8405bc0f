package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gr36/clubactiv/internal/application"
	"github.com/gr36/clubactiv/pkg/response"
)

// writeServiceError maps application errors onto HTTP responses.
// Not-found errors carry their message to the client; configuration
// defects are logged and hidden behind a generic 500.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound), errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrStorageNotConfigured):
		response.Error[any](c, http.StatusServiceUnavailable, "image storage unavailable", nil)
	case errors.Is(err, application.ErrConfigurationDefect):
		if logger != nil {
			logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("configuration defect")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("unhandled service error")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
