// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"prwatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	ReviewHandler  *handler.ReviewHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
	reviewHandler  *handler.ReviewHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		reviewHandler:  params.ReviewHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Address resolution routes
	addressGroup := e.Group("/addresses")
	{
		addressGroup.POST("/lookup", r.addressHandler.ResolveLookup)
		addressGroup.POST("", r.addressHandler.ResolveAddress)
		addressGroup.GET("/:id", r.addressHandler.GetAddressDetail)
		addressGroup.GET("/lookup/:lookupID/similar", r.addressHandler.ListSimilarAddresses)
	}

	// Review routes
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.POST("", r.reviewHandler.SubmitReview)
		reviewGroup.GET("/:id", r.reviewHandler.GetReview)
	}

	// Email confirmation link. GET because it is clicked from a mail client.
	e.GET("/activate/:uid/:rid/:token", r.reviewHandler.ActivateReview)
}
