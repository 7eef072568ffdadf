// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/router/handler"
	"beacon/internal/delivery/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FriendshipHandler *handler.FriendshipHandler
	LocationHandler   *handler.LocationHandler
	Gateway           *ws.Gateway
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	friendshipHandler *handler.FriendshipHandler
	locationHandler   *handler.LocationHandler
	gateway           *ws.Gateway
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		friendshipHandler: params.FriendshipHandler,
		locationHandler:   params.LocationHandler,
		gateway:           params.Gateway,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Realtime gateway; the gateway authenticates the connection itself
	// because websocket clients cannot always set headers.
	e.GET("/ws", r.gateway.HandleConnection)

	// Friendship graph routes
	friendGroup := e.Group("/friends")
	friendGroup.Use(r.authMiddleware.Authenticate)
	{
		friendGroup.GET("", r.friendshipHandler.ListFriends)
		friendGroup.DELETE("/:id", r.friendshipHandler.RemoveFriend)
		friendGroup.PATCH("/:id", r.friendshipHandler.UpdateShareSettings)

		friendGroup.GET("/requests", r.friendshipHandler.ListPendingRequests)
		friendGroup.POST("/requests", r.friendshipHandler.SendRequest)
		friendGroup.POST("/requests/:id/accept", r.friendshipHandler.AcceptRequest)
		friendGroup.POST("/requests/:id/decline", r.friendshipHandler.DeclineRequest)

		friendGroup.GET("/invite/qr", r.friendshipHandler.GenerateInviteQR)
	}

	// Location routes
	locationGroup := e.Group("/location")
	locationGroup.Use(r.authMiddleware.Authenticate)
	{
		locationGroup.POST("", r.locationHandler.ReportLocation)
		locationGroup.GET("/friends", r.locationHandler.GetFriendsLocations)
		locationGroup.GET("/friends/:id", r.locationHandler.GetFriendLocation)
	}
}
