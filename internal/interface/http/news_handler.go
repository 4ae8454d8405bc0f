package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gr36/clubactiv/internal/application"
	"github.com/gr36/clubactiv/pkg/response"
	"github.com/gr36/clubactiv/pkg/validation"
)

const maxImageSize = 5 << 20

type NewsHandler struct {
	Svc    *application.NewsService
	Logger *logrus.Logger
}

func NewNewsHandler(svc *application.NewsService, logger *logrus.Logger) *NewsHandler {
	return &NewsHandler{Svc: svc, Logger: logger}
}

type createNewsRequest struct {
	Title       string `json:"title" binding:"required,headline"`
	Description string `json:"description" binding:"required"`
	CreatedBy   string `json:"createdBy" binding:"max=255"`
}

type listNewsQuery struct {
	Limit  int `form:"limit" binding:"gte=0,lte=100"`
	Offset int `form:"offset" binding:"gte=0"`
}

type searchNewsQuery struct {
	Q    string `form:"q" binding:"required"`
	Size int    `form:"size" binding:"gte=0,lte=50"`
}

func newsID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid news id", map[string]string{"id": "must be an integer"})
		return 0, false
	}
	return id, true
}

func (h *NewsHandler) List(c *gin.Context) {
	var q listNewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	items, err := h.Svc.List(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "news", response.Page{Count: len(items), Limit: q.Limit, Offset: q.Offset})
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := newsID(c)
	if !ok {
		return
	}
	n, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, n, "news", nil)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req createNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	n, err := h.Svc.Create(c.Request.Context(), application.CreateNewsInput{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, n, "news created", nil)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := newsID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true, "id": id}, "news deleted", nil)
}

func (h *NewsHandler) Search(c *gin.Context) {
	var q searchNewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	items, err := h.Svc.Search(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "search results", response.Page{Count: len(items), Limit: q.Size})
}

// UploadImage accepts a multipart "image" field.
func (h *NewsHandler) UploadImage(c *gin.Context) {
	id, ok := newsID(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image is required", nil)
		return
	}
	if fh.Size > maxImageSize {
		response.Error[any](c, http.StatusRequestEntityTooLarge, "image too large", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable image", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), id, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"image_url": url}, "image uploaded", nil)
}
