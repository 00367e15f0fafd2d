package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cybertrain-io/cybertrain/internal/container"
	handlers "github.com/cybertrain-io/cybertrain/internal/interface/http"
	"github.com/cybertrain-io/cybertrain/internal/interface/middleware"
	"github.com/cybertrain-io/cybertrain/pkg/helpers"
)

type CommunityModule struct {
	Handler *handlers.CommunityHandler
	JWT     *helpers.JWTManager
}

func NewCommunityModule(h *handlers.CommunityHandler, jwt *helpers.JWTManager) *CommunityModule {
	return &CommunityModule{Handler: h, JWT: jwt}
}

func (m *CommunityModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.GET("/community", m.Handler.List)
		auth.GET("/community/search", m.Handler.Search)
		auth.POST("/community/post", writeLimiter, m.Handler.CreatePost)
		auth.POST("/community/reply/:postId", writeLimiter, m.Handler.Reply)
	}
}
