package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cybertrain-io/cybertrain/internal/container"
	handlers "github.com/cybertrain-io/cybertrain/internal/interface/http"
	"github.com/cybertrain-io/cybertrain/internal/interface/middleware"
	"github.com/cybertrain-io/cybertrain/pkg/helpers"
)

type TrainingModule struct {
	Handler *handlers.TrainingHandler
	JWT     *helpers.JWTManager
}

func NewTrainingModule(h *handlers.TrainingHandler, jwt *helpers.JWTManager) *TrainingModule {
	return &TrainingModule{Handler: h, JWT: jwt}
}

func (m *TrainingModule) Register(rg *gin.RouterGroup) {
	// Leaderboards are public; results carry no per-user secrets
	lbLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/training/leaderboard", lbLimiter, m.Handler.Leaderboard)
	rg.GET("/training/leaderboard/:gameType", lbLimiter, m.Handler.Leaderboard)

	saveLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	{
		auth.POST("/training/save-session", saveLimiter, m.Handler.SaveSession)
		auth.GET("/training/progress", m.Handler.Progress)
	}
}
