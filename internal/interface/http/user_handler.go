package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gr36/clubactiv/internal/application"
	"github.com/gr36/clubactiv/internal/domain/entity"
	"github.com/gr36/clubactiv/pkg/response"
	"github.com/gr36/clubactiv/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"max=255"`
}

func userView(u *entity.User) gin.H {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"roles":      roles,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, userView(u), "user registered", nil)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "user", nil)
}

func (h *UserHandler) GrantAdmin(c *gin.Context) {
	u, err := h.Svc.GrantAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "admin role granted", nil)
}
