// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	MediaHandler   *handler.MediaHandler
	LoyaltyHandler *handler.LoyaltyHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	mediaHandler   *handler.MediaHandler
	loyaltyHandler *handler.LoyaltyHandler
	authMiddleware *middleware.AuthMiddleware
	adminRole      entity.Role
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	adminRole := entity.RoleAdmin
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.AdminRole != "" {
		adminRole = entity.Role(params.Config.Auth.AdminRole)
	}

	return &router{
		sessionHandler: params.SessionHandler,
		mediaHandler:   params.MediaHandler,
		loyaltyHandler: params.LoyaltyHandler,
		authMiddleware: params.AuthMiddleware,
		adminRole:      adminRole,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/me", r.sessionHandler.Me, r.authMiddleware.Authenticate)

	requireAdmin := r.authMiddleware.RequireRole(r.adminRole)

	// Slots are read by the storefront without a session; changes require the admin role
	slotsGroup := apiV1.Group("/slots")
	{
		slotsGroup.GET("/:key", r.mediaHandler.GetSlot)
		slotsGroup.PUT("/:key/asset", r.mediaHandler.ReplaceSlotAsset, r.authMiddleware.Authenticate, requireAdmin)
		slotsGroup.DELETE("/:key", r.mediaHandler.DeleteSlot, r.authMiddleware.Authenticate, requireAdmin)
	}

	// Galleries are public to read; product images require the admin role, review images belong to their author
	apiV1.GET("/galleries/:key", r.mediaHandler.GetGallery)

	productsGroup := apiV1.Group("/products")
	productsGroup.Use(r.authMiddleware.Authenticate)
	productsGroup.Use(requireAdmin)
	{
		productsGroup.PUT("/:id/images", r.mediaHandler.ReplaceProductImages)
		productsGroup.DELETE("/:id/images", r.mediaHandler.DeleteProductImages)
	}

	reviewsGroup := apiV1.Group("/reviews")
	reviewsGroup.Use(r.authMiddleware.Authenticate)
	{
		reviewsGroup.PUT("/:id/images", r.mediaHandler.ReplaceReviewImages)
		reviewsGroup.DELETE("/:id/images", r.mediaHandler.DeleteReviewImages)
	}

	// Media editing routes (require admin role)
	mediaGroup := apiV1.Group("/media")
	mediaGroup.Use(r.authMiddleware.Authenticate)
	mediaGroup.Use(requireAdmin)
	{
		mediaGroup.POST("/inspect", r.mediaHandler.InspectSource)
		mediaGroup.POST("/crop", r.mediaHandler.AdjustCrop)
	}

	// Loyalty routes for the signed-in customer
	loyaltyGroup := apiV1.Group("/loyalty")
	loyaltyGroup.Use(r.authMiddleware.Authenticate)
	{
		loyaltyGroup.POST("/account", r.loyaltyHandler.OpenAccount)
		loyaltyGroup.GET("/account", r.loyaltyHandler.GetProgress)
		loyaltyGroup.POST("/account/events", r.loyaltyHandler.RecordReviewEvent)

		// Manual adjustments of any account (require admin role)
		loyaltyGroup.POST("/accounts/:userId/adjustments", r.loyaltyHandler.AdjustPoints, requireAdmin)
	}
}
