package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cybertrain-io/cybertrain/internal/container"
	handlers "github.com/cybertrain-io/cybertrain/internal/interface/http"
	"github.com/cybertrain-io/cybertrain/internal/interface/middleware"
	"github.com/cybertrain-io/cybertrain/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	// Already-authenticated browsers are bounced back home
	guest := rg.Group("/")
	guest.Use(middleware.RedirectIfAuthenticated(m.JWT))
	{
		guest.POST("/auth/signup", signupLimiter, m.Handler.Signup)
		guest.POST("/auth/login", loginLimiter, m.Handler.Login)
	}

	// Logout is idempotent; clearing the cookie does not require a valid token
	rg.GET("/auth/logout", m.Handler.Logout)
	rg.POST("/auth/logout", m.Handler.Logout)
}
