package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/krishavya/ufresher/internal/logging"
	"github.com/krishavya/ufresher/internal/server/config"
	"github.com/krishavya/ufresher/internal/server/services"
)

// API holds the handler dependencies.
type API struct {
	identity *services.IdentityService
	catalog  *services.CatalogService
	content  *services.ContentService
	config   *config.Config
	logger   logging.Logger
}

func NewAPI(identity *services.IdentityService, catalog *services.CatalogService,
	content *services.ContentService, cfg *config.Config, logger logging.Logger) *API {
	return &API{
		identity: identity,
		catalog:  catalog,
		content:  content,
		config:   cfg,
		logger:   logger,
	}
}

// NewRouter builds the gin engine with all routes registered.
func (a *API) NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/v1/health", a.health)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/signup", a.signUp)
		auth.POST("/signin", a.signIn)
		auth.GET("/google/consent", a.googleConsent)
		auth.POST("/google/exchange", a.googleExchange)
	}

	// Directory and feed reads are open. Anything that writes or
	// identifies the caller needs a bearer token.
	public := r.Group("/v1")
	{
		public.GET("/communities", a.communities)
		public.GET("/clubs", a.clubs)
		public.GET("/rooms", a.chatRooms)
		public.GET("/rooms/:id/messages", a.messages)
		public.GET("/posts", a.posts)
		public.POST("/moderation/classify", a.classify)
	}

	authed := r.Group("/v1", a.authRequired())
	{
		authed.POST("/auth/signout", a.signOut)
		authed.GET("/auth/user", a.currentUser)

		authed.POST("/rooms/:id/messages", a.sendMessage)
		authed.POST("/posts", a.createPost)

		authed.PATCH("/moderation/:kind/:id", a.adminRequired(), a.setFlagged)
	}

	return r
}
