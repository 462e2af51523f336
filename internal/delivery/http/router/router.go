// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"playfinder/internal/delivery/http/middleware"
	"playfinder/internal/delivery/http/router/handler"
	"playfinder/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	SearchHandler       *handler.SearchHandler
	VenueHandler        *handler.VenueHandler
	ReviewHandler       *handler.ReviewHandler
	FavoriteHandler     *handler.FavoriteHandler
	OfferHandler        *handler.OfferHandler
	ClaimHandler        *handler.ClaimHandler
	UserHandler         *handler.UserHandler
	AdminHandler        *handler.AdminHandler
	NewsletterHandler   *handler.NewsletterHandler
	RefdataHandler      *handler.RefdataHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.Use(p.RequestIDMiddleware.Process)

	e.GET("/health", handler.HealthCheck)

	// Public directory surface
	e.GET("/search", p.SearchHandler.Search)
	e.GET("/categories", p.RefdataHandler.ListCategories)
	e.GET("/locations", p.RefdataHandler.ListLocations)
	e.GET("/venue/:slug", p.VenueHandler.GetVenue, p.AuthMiddleware.OptionalAuthenticate)
	e.GET("/venue/:slug/poster.png", p.VenueHandler.Poster)
	e.GET("/venues/:id/reviews", p.ReviewHandler.ListVenueReviews)
	e.GET("/venues/:id/offers", p.OfferHandler.ListVenueOffers)
	e.POST("/newsletter/subscribe", p.NewsletterHandler.Subscribe)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.RefreshToken)
		authGroup.POST("/logout", p.UserHandler.Logout)
	}

	// Signed-in user routes
	userGroup := e.Group("/user")
	userGroup.Use(p.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
		userGroup.PUT("/profile", p.UserHandler.UpdateProfile)
		userGroup.GET("/favorites", p.FavoriteHandler.ListFavorites)
		userGroup.GET("/venues", p.VenueHandler.ListMyVenues)
	}

	// Actions on venues that require a signed-in user
	venueGroup := e.Group("/venues")
	venueGroup.Use(p.AuthMiddleware.Authenticate)
	{
		venueGroup.POST("", p.VenueHandler.SubmitVenue)
		venueGroup.PUT("/:id", p.VenueHandler.UpdateVenue)
		venueGroup.POST("/:id/favorite", p.FavoriteHandler.ToggleFavorite)
		venueGroup.POST("/:id/reviews", p.ReviewHandler.CreateReview)
		venueGroup.POST("/:id/offers", p.OfferHandler.CreateOffer)
		venueGroup.POST("/:id/claims", p.ClaimHandler.SubmitClaim)
		venueGroup.POST("/:id/photos", p.VenueHandler.UploadPhotos)
		venueGroup.PUT("/:id/photos/order", p.VenueHandler.ReorderPhotos)
	}

	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(p.AuthMiddleware.Authenticate)
	{
		reviewGroup.POST("/:id/response", p.ReviewHandler.RespondToReview)
		reviewGroup.DELETE("/:id", p.ReviewHandler.DeleteReview)
	}

	offerGroup := e.Group("/offers")
	offerGroup.Use(p.AuthMiddleware.Authenticate)
	{
		offerGroup.PUT("/:id", p.OfferHandler.UpdateOffer)
		offerGroup.DELETE("/:id", p.OfferHandler.DeleteOffer)
	}

	photoGroup := e.Group("/photos")
	photoGroup.Use(p.AuthMiddleware.Authenticate)
	{
		photoGroup.DELETE("/:id", p.VenueHandler.DeletePhoto)
	}

	// Moderation routes, admin role required
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/venues/stats", p.AdminHandler.ModerationStats)
		adminGroup.GET("/venues/pending", p.AdminHandler.ListPendingVenues)
		adminGroup.POST("/venues/:id/approve", p.AdminHandler.ApproveVenue)
		adminGroup.POST("/venues/:id/reject", p.AdminHandler.RejectVenue)
		adminGroup.GET("/claims/pending", p.AdminHandler.ListPendingClaims)
		adminGroup.POST("/claims/:id/approve", p.AdminHandler.ApproveClaim)
		adminGroup.POST("/claims/:id/reject", p.AdminHandler.RejectClaim)
	}
}
