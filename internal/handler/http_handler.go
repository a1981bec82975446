package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/service"
	pkglog "github.com/yeabnoah/nerdspace/social-graph-service/pkg/log"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/middleware"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/response"
)

// Handler handles HTTP requests for the social graph service.
type Handler struct {
	svc            service.GraphService
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler creates a new HTTP handler.
func NewHandler(svc service.GraphService, authMiddleware *middleware.AuthMiddleware) *Handler {
	return &Handler{
		svc:            svc,
		authMiddleware: authMiddleware,
	}
}

// RegisterRoutes registers all routes onto the Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	auth := h.authMiddleware.RequireAuth()

	api := r.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.POST("/:user_id/follow", auth, h.ToggleFollow)
			users.PUT("/:user_id/follow", auth, h.actionFollow(domain.ActionAdd))
			users.DELETE("/:user_id/follow", auth, h.actionFollow(domain.ActionRemove))
			users.GET("/:user_id/followers", h.ListFollowers)
			users.GET("/:user_id/following", h.ListFollowing)
			users.GET("/:user_id/follow-counts", h.GetFollowCounts)
			users.POST("/:user_id/following/status", h.BatchIsFollowing)
		}

		api.GET("/recommendations/users", auth, h.RecommendUsers)

		api.POST("/projects/:project_id/follow", auth, h.toggleEdge(domain.KindProjectFollow, "project_id"))
		api.POST("/projects/:project_id/star", auth, h.toggleEdge(domain.KindProjectStar, "project_id"))
		api.POST("/posts/:post_id/like", auth, h.toggleEdge(domain.KindPostLike, "post_id"))
	}
}

// toggleRequest is the optional body of the toggle routes.
type toggleRequest struct {
	Action string `json:"action"`
}

// bindAction reads the optional {"action": ...} body. An empty body toggles.
func bindAction(c *gin.Context) (domain.Action, bool) {
	if c.Request.ContentLength == 0 {
		return domain.ActionToggle, true
	}
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.ActionToggle, true
		}
		response.BadRequest(c, "invalid request body")
		return "", false
	}
	action, ok := domain.ParseAction(req.Action)
	if !ok {
		response.BadRequest(c, "invalid action")
		return "", false
	}
	return action, true
}

// ToggleFollow handles POST /api/v1/users/:user_id/follow.
// The authenticated user follows the target user, or unfollows if already following.
func (h *Handler) ToggleFollow(c *gin.Context) {
	action, ok := bindAction(c)
	if !ok {
		return
	}
	h.follow(c, action)
}

// actionFollow handles PUT (follow) and DELETE (unfollow) on /api/v1/users/:user_id/follow.
func (h *Handler) actionFollow(action domain.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.follow(c, action)
	}
}

func (h *Handler) follow(c *gin.Context, action domain.Action) {
	ctx := c.Request.Context()

	actorID := middleware.GetUserID(c)
	if actorID == "" {
		response.Unauthorized(c, "unauthorized")
		return
	}

	targetID := c.Param("user_id")
	if targetID == "" {
		response.BadRequest(c, "user_id is required")
		return
	}

	res, err := h.svc.ToggleFollow(ctx, actorID, targetID, action)
	if err != nil {
		writeError(c, err, "failed to update follow")
		return
	}

	response.Success(c, res)
}

// toggleEdge handles the non-user edge kinds.
func (h *Handler) toggleEdge(kind domain.EdgeKind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		actorID := middleware.GetUserID(c)
		if actorID == "" {
			response.Unauthorized(c, "unauthorized")
			return
		}

		action, ok := bindAction(c)
		if !ok {
			return
		}

		res, err := h.svc.ToggleEdge(ctx, kind, actorID, c.Param(param), action)
		if err != nil {
			writeError(c, err, "failed to update "+string(kind))
			return
		}

		response.Success(c, res)
	}
}

// ListFollowers handles GET /api/v1/users/:user_id/followers.
func (h *Handler) ListFollowers(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	page, err := h.svc.ListFollowers(c.Request.Context(), c.Param("user_id"), c.Query("cursor"), limit)
	if err != nil {
		writeError(c, err, "failed to list followers")
		return
	}

	response.Success(c, page)
}

// ListFollowing handles GET /api/v1/users/:user_id/following.
func (h *Handler) ListFollowing(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	page, err := h.svc.ListFollowing(c.Request.Context(), c.Param("user_id"), c.Query("cursor"), limit)
	if err != nil {
		writeError(c, err, "failed to list following")
		return
	}

	response.Success(c, page)
}

// RecommendUsers handles GET /api/v1/recommendations/users.
func (h *Handler) RecommendUsers(c *gin.Context) {
	actorID := middleware.GetUserID(c)
	if actorID == "" {
		response.Unauthorized(c, "unauthorized")
		return
	}

	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	page, err := h.svc.RecommendUsers(c.Request.Context(), actorID, c.Query("cursor"), limit)
	if err != nil {
		writeError(c, err, "failed to load recommendations")
		return
	}

	response.Success(c, page)
}

// GetFollowCounts handles GET /api/v1/users/:user_id/follow-counts.
func (h *Handler) GetFollowCounts(c *gin.Context) {
	counts, err := h.svc.GetFollowCounts(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err, "failed to get follow counts")
		return
	}

	response.Success(c, counts)
}

// followingStatusRequest is the request body for POST /users/:user_id/following/status.
type followingStatusRequest struct {
	TargetIDs []string `json:"target_ids" binding:"required"`
}

// BatchIsFollowing handles POST /api/v1/users/:user_id/following/status.
func (h *Handler) BatchIsFollowing(c *gin.Context) {
	ctx := c.Request.Context()
	l := pkglog.Ctx(ctx)

	followerID := c.Param("user_id")
	if followerID == "" {
		response.BadRequest(c, "user_id is required")
		return
	}

	var req followingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid following status request")
		response.BadRequest(c, err.Error())
		return
	}

	results, err := h.svc.BatchIsFollowing(ctx, followerID, req.TargetIDs)
	if err != nil {
		writeError(c, err, "failed to check following status")
		return
	}

	response.Success(c, gin.H{"results": results})
}

func parseLimit(c *gin.Context) (int, bool) {
	limitStr := c.Query("limit")
	if limitStr == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		response.BadRequest(c, "limit must be a positive integer")
		return 0, false
	}
	return limit, true
}

// writeError maps service errors onto the response envelope.
func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrSelfFollow):
		response.BadRequest(c, "cannot follow yourself")
	case errors.Is(err, service.ErrInvalidCursor):
		response.BadRequest(c, "invalid cursor")
	case errors.Is(err, service.ErrTooManyTargets):
		response.BadRequest(c, "too many target ids")
	case errors.Is(err, service.ErrInvalidOperation):
		response.BadRequest(c, "invalid request")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, service.ErrProjectNotFound):
		response.NotFound(c, "project not found")
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "not found")
	case errors.Is(err, service.ErrTransient):
		response.Unavailable(c, "service busy, please try again")
	default:
		l := pkglog.Ctx(c.Request.Context())
		l.Error().Err(err).Str(pkglog.FieldPath, c.FullPath()).Msg(fallback)
		response.InternalError(c, "something went wrong, please try again")
	}
}
