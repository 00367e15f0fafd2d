package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cybertrain-io/cybertrain/internal/application"
	"github.com/cybertrain-io/cybertrain/internal/interface/middleware"
	"github.com/cybertrain-io/cybertrain/pkg/response"
	"github.com/cybertrain-io/cybertrain/pkg/validation"
)

type TrainingHandler struct {
	Svc    *application.TrainingService
	Logger *logrus.Logger
}

func NewTrainingHandler(svc *application.TrainingService, logger *logrus.Logger) *TrainingHandler {
	return &TrainingHandler{Svc: svc, Logger: logger}
}

type saveSessionRequest struct {
	GameType            string          `json:"game_type" binding:"required"`
	Score               int64           `json:"score" binding:"gte=0"`
	Level               int             `json:"level" binding:"omitempty,gte=1"`
	TimeSpent           int64           `json:"time_spent" binding:"gte=0"`
	CompletedChallenges []string        `json:"completed_challenges"`
	GameData            json.RawMessage `json:"game_data"`
}

// SaveSession POST /api/training/save-session
func (h *TrainingHandler) SaveSession(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		response.Error[any](c, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}

	var req saveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	sessionID, err := h.Svc.SaveSession(c.Request.Context(), uid, c.GetString(middleware.CtxUserNameKey), application.SaveSessionInput{
		GameType:            req.GameType,
		Score:               req.Score,
		Level:               req.Level,
		TimeSpent:           req.TimeSpent,
		CompletedChallenges: req.CompletedChallenges,
		GameData:            req.GameData,
	})
	if err != nil {
		if errors.Is(err, application.ErrUnknownGameType) {
			response.Error[any](c, http.StatusBadRequest, "unknown game type", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("failed to save game session")
		response.Error[any](c, http.StatusInternalServerError, "failed to save game session", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session_id": sessionID}, "game session saved", nil)
}

// Progress GET /api/training/progress
func (h *TrainingHandler) Progress(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		response.Error[any](c, http.StatusUnauthorized, "user not authenticated", nil)
		return
	}

	view, err := h.Svc.GetProgress(c.Request.Context(), uid, c.GetString(middleware.CtxUserNameKey))
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("failed to fetch user progress")
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch user progress", nil)
		return
	}
	response.Success(c, http.StatusOK, view, "user progress", nil)
}

// Leaderboard GET /api/training/leaderboard and /api/training/leaderboard/:gameType
func (h *TrainingHandler) Leaderboard(c *gin.Context) {
	gameType := c.Param("gameType")
	entries, err := h.Svc.Leaderboard(c.Request.Context(), gameType)
	if err != nil {
		if errors.Is(err, application.ErrUnknownGameType) {
			response.Error[any](c, http.StatusBadRequest, "unknown game type", nil)
			return
		}
		h.Logger.WithError(err).Error("failed to fetch leaderboard")
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch leaderboard", nil)
		return
	}
	if gameType == "" {
		gameType = application.LeaderboardOverall
	}
	response.Success(c, http.StatusOK, entries, "leaderboard", map[string]any{"game_type": gameType})
}
