package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/andriwibowo/blognest/internal/application"
	"github.com/andriwibowo/blognest/internal/interface/middleware"
	"github.com/andriwibowo/blognest/pkg/response"
	"github.com/andriwibowo/blognest/pkg/validation"
)

type BlogHandler struct {
	Svc    *application.BlogService
	Logger *logrus.Logger
}

func NewBlogHandler(svc *application.BlogService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Logger: logger}
}

type createBlogRequest struct {
	Title      string `json:"title" binding:"required"`
	Caption    string `json:"caption" binding:"required"`
	Desc       string `json:"desc" binding:"required"`
	Pic        string `json:"pic" binding:"omitempty,url"`
	Category   string `json:"category" binding:"required,category"`
	AuthorName string `json:"authorName"`
}

// updateBlogRequest accepts any subset of blog fields; empty ones keep
// their stored values.
type updateBlogRequest struct {
	Title      string `json:"title"`
	Caption    string `json:"caption"`
	Desc       string `json:"desc"`
	Pic        string `json:"pic" binding:"omitempty,url"`
	Category   string `json:"category" binding:"omitempty,category"`
	AuthorName string `json:"authorName"`
}

func (h *BlogHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrBlogNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrMissingFields), errors.Is(err, application.ErrInvalidCategory):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		h.Logger.WithError(err).Error("blog operation failed")
		response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
	}
}

// Create POST /api/blogs/create
func (h *BlogHandler) Create(c *gin.Context) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.CreateBlogInput{
		Title:      req.Title,
		Caption:    req.Caption,
		Desc:       req.Desc,
		Pic:        req.Pic,
		Category:   req.Category,
		AuthorName: req.AuthorName,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b, "blog created")
}

// ListMine GET /api/blogs
func (h *BlogHandler) ListMine(c *gin.Context) {
	blogs, err := h.Svc.ListMine(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, blogs, "blogs")
}

// ListGlobal GET /api/blogs/global — the only unauthenticated blog read.
func (h *BlogHandler) ListGlobal(c *gin.Context) {
	blogs, err := h.Svc.ListGlobal(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, blogs, "blogs")
}

// GetByID GET /api/blogs/:id
func (h *BlogHandler) GetByID(c *gin.Context) {
	b, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b, "blog")
}

// Update PUT /api/blogs/:id
func (h *BlogHandler) Update(c *gin.Context) {
	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	b, err := h.Svc.Update(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserIDKey), application.UpdateBlogInput{
		Title:      req.Title,
		Caption:    req.Caption,
		Desc:       req.Desc,
		Pic:        req.Pic,
		Category:   req.Category,
		AuthorName: req.AuthorName,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b, "blog updated")
}

// Delete DELETE /api/blogs/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserIDKey)); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "blog deleted")
}
