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

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type createProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	Career    string `json:"career" binding:"required"`
	Bio       string `json:"bio" binding:"required"`
	Work      string `json:"work" binding:"required"`
	Education string `json:"education" binding:"required"`
	Skill     string `json:"skill" binding:"required"`
	ProfPic   string `json:"prof_pic" binding:"omitempty,url"`
}

type updateProfileRequest struct {
	Name      string `json:"name"`
	Career    string `json:"career"`
	Bio       string `json:"bio"`
	Work      string `json:"work"`
	Education string `json:"education"`
	Skill     string `json:"skill"`
	ProfPic   string `json:"prof_pic" binding:"omitempty,url"`
}

func (h *ProfileHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrProfileNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrProfileExists), errors.Is(err, application.ErrMissingFields):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		h.Logger.WithError(err).Error("profile operation failed")
		response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
	}
}

// GetByUser GET /api/profile/:userId — public read; a 404 for the
// caller's own id means "no profile yet".
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	p, err := h.Svc.GetByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile")
}

// Create POST /api/profile/create
func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.CreateProfileInput{
		Name:      req.Name,
		Career:    req.Career,
		Bio:       req.Bio,
		Work:      req.Work,
		Education: req.Education,
		Skill:     req.Skill,
		ProfPic:   req.ProfPic,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "profile created")
}

// Update PUT /api/profile/edit — always scoped to the caller's own profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.UpdateProfileInput{
		Name:      req.Name,
		Career:    req.Career,
		Bio:       req.Bio,
		Work:      req.Work,
		Education: req.Education,
		Skill:     req.Skill,
		ProfPic:   req.ProfPic,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile updated")
}

// Delete DELETE /api/profile/delete
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey)); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "profile deleted")
}
