package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/krishavya/ufresher/internal/common"
	"github.com/krishavya/ufresher/internal/server/services"
)

func (a *API) callerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(ctxUserID))
	if err != nil {
		unauthorized(c, "invalid token")
		return uuid.Nil, false
	}
	return id, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (a *API) messages(c *gin.Context) {
	roomID, ok := pathID(c)
	if !ok {
		return
	}

	list, err := a.content.Messages(c.Request.Context(), roomID)
	if err != nil {
		a.logger.Error(c.Request.Context(), "list messages failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]messageView, 0, len(list))
	for i := range list {
		out = append(out, toMessageView(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (a *API) sendMessage(c *gin.Context) {
	roomID, ok := pathID(c)
	if !ok {
		return
	}
	senderID, ok := a.callerID(c)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
		Flagged bool   `json:"flagged"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := a.content.SendMessage(c.Request.Context(), senderID, roomID, req.Content, req.Flagged)
	if err != nil {
		a.logger.Error(c.Request.Context(), "send message failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toMessageView(msg))
}

// queryID parses an optional uuid query parameter. An absent parameter
// yields (nil, true).
func queryID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return &id, true
}

func (a *API) posts(c *gin.Context) {
	communityID, ok := queryID(c, "community_id")
	if !ok {
		return
	}
	clubID, ok := queryID(c, "club_id")
	if !ok {
		return
	}

	list, err := a.content.Posts(c.Request.Context(), communityID, clubID)
	if err != nil {
		a.logger.Error(c.Request.Context(), "list posts failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]postView, 0, len(list))
	for i := range list {
		out = append(out, toPostView(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (a *API) createPost(c *gin.Context) {
	authorID, ok := a.callerID(c)
	if !ok {
		return
	}

	var req struct {
		Content     string     `json:"content" binding:"required"`
		CommunityID *uuid.UUID `json:"community_id"`
		ClubID      *uuid.UUID `json:"club_id"`
		Flagged     bool       `json:"flagged"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CommunityID != nil && req.ClubID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post targets either a community or a club, not both"})
		return
	}

	post, err := a.content.CreatePost(c.Request.Context(), authorID, services.CreatePostParams{
		CommunityID: req.CommunityID,
		ClubID:      req.ClubID,
		Content:     req.Content,
		Flagged:     req.Flagged,
	})
	if err != nil {
		a.logger.Error(c.Request.Context(), "create post failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toPostView(post))
}

func (a *API) classify(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict, err := a.content.Classify(c.Request.Context(), req.Content)
	if err != nil {
		if errors.Is(err, common.ErrClassifierDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "classifier disabled"})
			return
		}
		a.logger.Error(c.Request.Context(), "classify failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, verdict)
}

func (a *API) setFlagged(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Flagged *bool `json:"flagged" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := a.content.SetFlagged(c.Request.Context(), c.Param("kind"), id, *req.Flagged)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownContentKind):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, common.ErrorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		default:
			a.logger.Error(c.Request.Context(), "set flagged failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
