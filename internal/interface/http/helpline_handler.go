package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cybertrain-io/cybertrain/internal/application"
	"github.com/cybertrain-io/cybertrain/pkg/response"
	"github.com/cybertrain-io/cybertrain/pkg/validation"
)

type HelplineHandler struct {
	Svc    *application.HelplineService
	Logger *logrus.Logger
}

func NewHelplineHandler(svc *application.HelplineService, logger *logrus.Logger) *HelplineHandler {
	return &HelplineHandler{Svc: svc, Logger: logger}
}

type helplineRequest struct {
	Name             string `json:"name" binding:"required"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	IssueDescription string `json:"issue_description" binding:"required"`
}

// Submit POST /api/helpline
func (h *HelplineHandler) Submit(c *gin.Context) {
	var req helplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	r, err := h.Svc.Submit(c.Request.Context(), req.Name, req.PhoneNumber, req.IssueDescription)
	if err != nil {
		if errors.Is(err, application.ErrMissingFields) {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("failed to save helpline request")
		response.Error[any](c, http.StatusInternalServerError, "server error occurred", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": r.ID}, "helpline request submitted", nil)
}
