package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/krishavya/ufresher/internal/server/auth"
	"github.com/krishavya/ufresher/internal/server/models"
)

const ctxUserID = "user_id"

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
	c.Abort()
}

// authRequired validates the Authorization bearer token and stores the
// caller's account id in the request context.
func (a *API) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, []byte(a.config.SecretKey))
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

// adminRequired loads the caller's account and rejects non-admins. It
// must run after authRequired.
func (a *API) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, err := a.identity.AccountByID(c.Request.Context(), c.GetString(ctxUserID))
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}
		if account.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
