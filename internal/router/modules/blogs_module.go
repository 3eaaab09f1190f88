package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andriwibowo/blognest/internal/container"
	"github.com/andriwibowo/blognest/internal/domain/repository"
	handlers "github.com/andriwibowo/blognest/internal/interface/http"
	"github.com/andriwibowo/blognest/internal/interface/middleware"
)

// BlogsModule wires the blog CRUD routes.
// Public: GET /api/blogs/global
// Protected: GET /api/blogs, GET/PUT/DELETE /api/blogs/:id, POST /api/blogs/create
type BlogsModule struct {
	Handler *handlers.BlogHandler
	Users   repository.UserRepository
}

func NewBlogsModule(h *handlers.BlogHandler, users repository.UserRepository) *BlogsModule {
	return &BlogsModule{Handler: h, Users: users}
}

func (m *BlogsModule) Register(rg *gin.RouterGroup) {
	globalLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/blogs/global", globalLimiter, m.Handler.ListGlobal)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, container.GetTokens()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/blogs", m.Handler.ListMine)
		auth.GET("/blogs/:id", m.Handler.GetByID)
		auth.POST("/blogs/create", m.Handler.Create)
		auth.PUT("/blogs/:id", m.Handler.Update)
		auth.DELETE("/blogs/:id", m.Handler.Delete)
	}
}
