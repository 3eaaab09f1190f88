package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andriwibowo/blognest/internal/container"
	"github.com/andriwibowo/blognest/internal/domain/repository"
	handlers "github.com/andriwibowo/blognest/internal/interface/http"
	"github.com/andriwibowo/blognest/internal/interface/middleware"
)

// ProfileModule wires the profile routes.
// Public: GET /api/profile/:userId
// Protected: POST /api/profile/create, PUT /api/profile/edit, DELETE /api/profile/delete
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Users   repository.UserRepository
}

func NewProfileModule(h *handlers.ProfileHandler, users repository.UserRepository) *ProfileModule {
	return &ProfileModule{Handler: h, Users: users}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/profile/:userId", readLimiter, m.Handler.GetByUser)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, container.GetTokens()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/profile/create", m.Handler.Create)
		auth.PUT("/profile/edit", m.Handler.Update)
		auth.DELETE("/profile/delete", m.Handler.Delete)
	}
}
