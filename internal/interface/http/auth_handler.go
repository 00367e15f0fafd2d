package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cybertrain-io/cybertrain/config"
	"github.com/cybertrain-io/cybertrain/internal/application"
	"github.com/cybertrain-io/cybertrain/pkg/helpers"
	"github.com/cybertrain-io/cybertrain/pkg/mailer"
	"github.com/cybertrain-io/cybertrain/pkg/mailer/templates"
	"github.com/cybertrain-io/cybertrain/pkg/response"
	"github.com/cybertrain-io/cybertrain/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cfg     *config.Config
	Pub     *helpers.RabbitPublisher
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *AuthHandler {
	return &AuthHandler{
		Svc:     svc,
		Logger:  logger,
		Cfg:     cfg,
		Pub:     pub,
		Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
	}
}

type signupRequest struct {
	Name      string `json:"name" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	Location  string `json:"location" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:      req.Name,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Location:  req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrMissingFields), errors.Is(err, application.ErrPasswordTooShort):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, application.ErrEmailTaken):
			// generic wording; do not confirm which accounts exist
			response.Error[any](c, http.StatusBadRequest, "unable to create account with these details", nil)
		default:
			h.Logger.WithError(err).Error("signup failed")
			response.Error[any](c, http.StatusInternalServerError, "server error occurred", nil)
		}
		return
	}

	h.enqueueWelcomeEmail(c, u.Email, u.Name)
	response.Success(c, http.StatusCreated, gin.H{"id": u.ID, "email": u.Email}, "account created, please log in", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "server error occurred", nil)
		return
	}

	h.Cookies.SetSession(c, token, exp)
	response.Success(c, http.StatusOK, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	}, "login successful", map[string]any{"expires_at": exp})
}

// Logout GET/POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

func (h *AuthHandler) enqueueWelcomeEmail(c *gin.Context, to, name string) {
	if h.Pub == nil || h.Cfg == nil || !h.Cfg.MailSendEnabled {
		return
	}
	job := mailer.EmailJob{To: to, Template: templates.Welcome, Data: map[string]any{"Name": name}}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("failed to publish welcome email job")
	}
}
