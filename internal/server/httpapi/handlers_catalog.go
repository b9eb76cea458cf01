package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *API) communities(c *gin.Context) {
	list, err := a.catalog.Communities(c.Request.Context())
	if err != nil {
		a.logger.Error(c.Request.Context(), "list communities failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]communityView, 0, len(list))
	for _, m := range list {
		out = append(out, communityView{ID: m.ID, Name: m.Name, Description: m.Description})
	}
	c.JSON(http.StatusOK, out)
}

func (a *API) clubs(c *gin.Context) {
	list, err := a.catalog.Clubs(c.Request.Context())
	if err != nil {
		a.logger.Error(c.Request.Context(), "list clubs failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]clubView, 0, len(list))
	for _, m := range list {
		out = append(out, clubView{ID: m.ID, Name: m.Name, Description: m.Description})
	}
	c.JSON(http.StatusOK, out)
}

func (a *API) chatRooms(c *gin.Context) {
	list, err := a.catalog.ChatRooms(c.Request.Context())
	if err != nil {
		a.logger.Error(c.Request.Context(), "list rooms failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]chatRoomView, 0, len(list))
	for _, m := range list {
		out = append(out, chatRoomView{ID: m.ID, Name: m.Name})
	}
	c.JSON(http.StatusOK, out)
}
