package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andriwibowo/blognest/pkg/response"
)

// HealthModule exposes the keepalive endpoint external uptime pingers hit.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		response.Success[any](c, http.StatusOK, gin.H{"ok": true}, "healthy")
	})
}
