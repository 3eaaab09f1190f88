package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andriwibowo/blognest/internal/container"
	handlers "github.com/andriwibowo/blognest/internal/interface/http"
	"github.com/andriwibowo/blognest/internal/interface/middleware"
)

// UsersModule wires registration and login.
// Public: POST /api/users/register, POST /api/users/login
type UsersModule struct {
	Handler *handlers.UserHandler
}

func NewUsersModule(h *handlers.UserHandler) *UsersModule {
	return &UsersModule{Handler: h}
}

func (m *UsersModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/users/register", registerLimiter, m.Handler.Register)
	rg.POST("/users/login", loginLimiter, m.Handler.Login)
}
