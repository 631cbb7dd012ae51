package api

import (
	"github.com/gin-gonic/gin"

	"github.com/axellelanca/linkbundles/internal/auth"
	"github.com/axellelanca/linkbundles/internal/services"
)

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(service *services.BundleService, tokens *auth.TokenService) *gin.Engine {
	router := gin.New()
	// Vanity URLs may contain "/"; clients send it as %2F.
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(gin.Recovery(), RequestLogger(), auth.Authenticate(tokens))
	SetupRoutes(router, NewBundleHandler(service))
	return router
}

// SetupRoutes configures the health check and the bundle routes.
func SetupRoutes(router *gin.Engine, h *BundleHandler) {
	router.GET("/health", HealthCheckHandler)

	links := router.Group("/links")
	{
		links.GET("", h.ListAll)
		links.POST("", h.Create)
		links.GET("/user/:userId", h.ListByUser)
		links.GET("/:vanityUrl", h.GetByVanityURL)
		links.DELETE("/:vanityUrl", h.Delete)
		links.PATCH("/:vanityUrl", h.Patch)
	}
}
