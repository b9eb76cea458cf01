package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishavya/ufresher/internal/common"
	"github.com/krishavya/ufresher/internal/server/models"
	"github.com/krishavya/ufresher/internal/server/services"
)

type signUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Age      string `json:"age"`
	College  string `json:"college"`
	Stream   string `json:"stream"`
	Role     string `json:"role" binding:"required"`
	Avatar   string `json:"avatar"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *API) authOK(c *gin.Context, account *models.Account, token string) {
	c.JSON(http.StatusOK, gin.H{
		"account": toAccountView(account),
		"token":   token,
	})
}

func (a *API) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, token, err := a.identity.SignUp(c.Request.Context(), services.SignUpParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
		College:  req.College,
		Stream:   req.Stream,
		Role:     req.Role,
		Avatar:   req.Avatar,
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already taken"})
			return
		}
		a.logger.Error(c.Request.Context(), "sign up failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	a.authOK(c, account, token)
}

func (a *API) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, token, err := a.identity.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			// The exact message distinguishes a bad login from an
			// expired token on the client side.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		a.logger.Error(c.Request.Context(), "sign in failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	a.authOK(c, account, token)
}

func (a *API) googleConsent(c *gin.Context) {
	url, err := a.identity.GoogleConsentURL()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google sign-in is not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (a *API) googleExchange(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, token, err := a.identity.GoogleExchange(c.Request.Context(), req.Code)
	if err != nil {
		a.logger.Error(c.Request.Context(), "google exchange failed", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "google sign-in failed"})
		return
	}

	a.authOK(c, account, token)
}

// signOut exists so clients have a single call that ends a session. The
// API is stateless; revocation would need a token denylist.
func (a *API) signOut(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

func (a *API) currentUser(c *gin.Context) {
	account, err := a.identity.AccountByID(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		unauthorized(c, "invalid token")
		return
	}
	c.JSON(http.StatusOK, toAccountView(account))
}
