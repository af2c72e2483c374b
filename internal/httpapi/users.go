package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/set-night/phonechat/internal/config"
	"github.com/set-night/phonechat/internal/domain"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.svc.Users.Create(c.Request.Context(), domain.NewUser{
		Name:        req.Name,
		Language:    req.Language,
		Preferences: req.Preferences,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.svc.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) ListConversations(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	limit := config.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	ctx := c.Request.Context()
	if _, err := h.svc.Users.GetByID(ctx, id); err != nil {
		writeError(c, err)
		return
	}

	convs, err := h.svc.Conversations.ListByUser(ctx, id, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]conversationResponse, 0, len(convs))
	for _, conv := range convs {
		out = append(out, conversationResponse{
			ID:        conv.ID,
			UserID:    conv.UserID,
			Message:   conv.Message,
			Response:  conv.Response,
			Timestamp: conv.Timestamp,
		})
	}
	c.JSON(http.StatusOK, out)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
