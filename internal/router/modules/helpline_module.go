package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cybertrain-io/cybertrain/internal/container"
	handlers "github.com/cybertrain-io/cybertrain/internal/interface/http"
	"github.com/cybertrain-io/cybertrain/internal/interface/middleware"
	"github.com/cybertrain-io/cybertrain/pkg/helpers"
)

type HelplineModule struct {
	Handler *handlers.HelplineHandler
	JWT     *helpers.JWTManager
}

func NewHelplineModule(h *handlers.HelplineHandler, jwt *helpers.JWTManager) *HelplineModule {
	return &HelplineModule{Handler: h, JWT: jwt}
}

func (m *HelplineModule) Register(rg *gin.RouterGroup) {
	// Tight per-user limit since the form accepts free-form text
	limiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.POST("/helpline", limiter, m.Handler.Submit)
	}
}
