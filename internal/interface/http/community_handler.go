package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cybertrain-io/cybertrain/internal/application"
	"github.com/cybertrain-io/cybertrain/internal/interface/middleware"
	"github.com/cybertrain-io/cybertrain/pkg/response"
	"github.com/cybertrain-io/cybertrain/pkg/validation"
)

type CommunityHandler struct {
	Svc    *application.CommunityService
	Logger *logrus.Logger
}

func NewCommunityHandler(svc *application.CommunityService, logger *logrus.Logger) *CommunityHandler {
	return &CommunityHandler{Svc: svc, Logger: logger}
}

type postRequest struct {
	Text string `json:"text" binding:"required,posttext"`
}

type replyRequest struct {
	Text string `json:"text" binding:"required,replytext"`
}

// List GET /api/community
func (h *CommunityHandler) List(c *gin.Context) {
	posts, err := h.Svc.ListPosts(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("failed to load community posts")
		response.Error[any](c, http.StatusInternalServerError, "failed to load posts", nil)
		return
	}
	response.Success(c, http.StatusOK, posts, "community posts", map[string]any{"count": len(posts)})
}

// CreatePost POST /api/community/post
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	author := c.GetString(middleware.CtxUserNameKey)
	if _, err := h.Svc.CreatePost(c.Request.Context(), author, req.Text); err != nil {
		h.writeCommunityError(c, err, "failed to create post")
		return
	}
	c.Redirect(http.StatusSeeOther, "/api/community")
}

// Reply POST /api/community/reply/:postId
func (h *CommunityHandler) Reply(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	author := c.GetString(middleware.CtxUserNameKey)
	if err := h.Svc.Reply(c.Request.Context(), c.Param("postId"), author, req.Text); err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.writeCommunityError(c, err, "failed to reply")
		return
	}
	c.Redirect(http.StatusSeeOther, "/api/community")
}

// Search GET /api/community/search?q=...
func (h *CommunityHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	hits, err := h.Svc.SearchPosts(c.Request.Context(), q, 10)
	if err != nil {
		h.Logger.WithError(err).Error("post search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

func (h *CommunityHandler) writeCommunityError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, application.ErrEmptyText), errors.Is(err, application.ErrTextTooLong):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error[any](c, http.StatusInternalServerError, "server error, please try again later", nil)
	}
}
