// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	OfferHandler   *handler.OfferHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	StatsHandler   *handler.StatsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	offerHandler   *handler.OfferHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	statsHandler   *handler.StatsHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		offerHandler:   params.OfferHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		statsHandler:   params.StatsHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account and session routes, no authentication required
	api.POST("/registration", r.userHandler.Register)
	api.POST("/login", r.userHandler.Login)
	api.POST("/token/refresh", r.userHandler.RefreshToken)
	api.POST("/logout", r.userHandler.Logout)

	// Public statistics and the open offer listing
	api.GET("/base-info", r.statsHandler.BaseInfo)
	api.GET("/offers", r.offerHandler.List)

	// Everything below requires a valid access token
	authed := api.Group("", r.authMiddleware.Authenticate)

	// Profiles
	authed.GET("/profile/:id", r.profileHandler.Get)
	authed.PATCH("/profile/:id", r.profileHandler.Patch)
	authed.POST("/profile/avatar", r.profileHandler.UploadAvatar)
	authed.GET("/profiles/business", r.profileHandler.ListBusiness)
	authed.GET("/profiles/customer", r.profileHandler.ListCustomer)

	// Offer catalog
	authed.POST("/offers", r.offerHandler.Create)
	authed.GET("/offers/:id", r.offerHandler.Get)
	authed.PATCH("/offers/:id", r.offerHandler.Patch)
	authed.DELETE("/offers/:id", r.offerHandler.Delete)
	authed.POST("/offers/image", r.offerHandler.UploadImage)
	authed.GET("/offerdetails/:id", r.offerHandler.GetDetail)
	authed.PATCH("/offerdetails/:id", r.offerHandler.PatchDetail)
	authed.DELETE("/offerdetails/:id", r.offerHandler.DeleteDetail)

	// Order lifecycle
	authed.POST("/orders", r.orderHandler.Create)
	authed.GET("/orders", r.orderHandler.List)
	authed.GET("/orders/:id", r.orderHandler.Get)
	authed.PATCH("/orders/:id", r.orderHandler.UpdateStatus)
	authed.DELETE("/orders/:id", r.orderHandler.Delete)
	authed.GET("/order-count/:business_user_id", r.orderHandler.CountInProgress)
	authed.GET("/completed-order-count/:business_user_id", r.orderHandler.CountCompleted)

	// Review ledger
	authed.POST("/reviews", r.reviewHandler.Create)
	authed.GET("/reviews", r.reviewHandler.List)
	authed.GET("/reviews/:id", r.reviewHandler.Get)
	authed.PATCH("/reviews/:id", r.reviewHandler.Patch)
	authed.DELETE("/reviews/:id", r.reviewHandler.Delete)
}
