package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cybertrain-io/cybertrain/internal/container"
	handlers "github.com/cybertrain-io/cybertrain/internal/interface/http"
	"github.com/cybertrain-io/cybertrain/internal/interface/middleware"
	"github.com/cybertrain-io/cybertrain/pkg/helpers"
)

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	avatarLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.GET("/profile", m.Handler.Get)
		auth.PUT("/profile", m.Handler.Update)
		auth.POST("/profile/avatar", avatarLimiter, m.Handler.UploadAvatar)
	}
}
