// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authd/internal/delivery/http/middleware"
	"authd/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	TwoFactorHandler *handler.TwoFactorHandler
	RegisterHandler  *handler.RegisterHandler
	RecoveryHandler  *handler.RecoveryHandler
	SessionHandler   *handler.SessionHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	twoFactorHandler *handler.TwoFactorHandler
	registerHandler  *handler.RegisterHandler
	recoveryHandler  *handler.RecoveryHandler
	sessionHandler   *handler.SessionHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		twoFactorHandler: params.TwoFactorHandler,
		registerHandler:  params.RegisterHandler,
		recoveryHandler:  params.RecoveryHandler,
		sessionHandler:   params.SessionHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/owner", r.authHandler.Owner)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Second-factor routes; add and link require a live session
	twoFactorGroup := e.Group("/2fa")
	{
		twoFactorGroup.POST("/add", r.twoFactorHandler.Setup, r.authMiddleware.Authenticate)
		twoFactorGroup.POST("/link", r.twoFactorHandler.Link, r.authMiddleware.Authenticate)
		twoFactorGroup.POST("/login", r.twoFactorHandler.ConfirmLogin)
	}

	// Registration routes; confirm is reached from the mailed link
	e.POST("/register", r.registerHandler.Register)
	e.GET("/register/confirm", r.registerHandler.Confirm)

	// Recovery routes
	recoveryGroup := e.Group("/recovery")
	{
		recoveryGroup.POST("", r.recoveryHandler.Initiate)
		recoveryGroup.GET("/exist", r.recoveryHandler.Exists)
		recoveryGroup.POST("/confirm", r.recoveryHandler.Confirm)
	}

	// Session listing requires authentication
	sessionGroup := e.Group("/sessions")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("/:id", r.sessionHandler.List)
	}
}
