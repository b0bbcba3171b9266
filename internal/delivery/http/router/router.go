// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	CommentHandler *handler.CommentHandler
	OrderHandler   *handler.OrderHandler
	CouponHandler  *handler.CouponHandler
	AdminHandler   *handler.AdminHandler
	SeedHandler    *handler.SeedHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	commentHandler *handler.CommentHandler
	orderHandler   *handler.OrderHandler
	couponHandler  *handler.CouponHandler
	adminHandler   *handler.AdminHandler
	seedHandler    *handler.SeedHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		commentHandler: params.CommentHandler,
		orderHandler:   params.OrderHandler,
		couponHandler:  params.CouponHandler,
		adminHandler:   params.AdminHandler,
		seedHandler:    params.SeedHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Demo fixtures. Idempotent, so leaving it open is harmless.
	e.POST("/seed", r.seedHandler.Seed)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me)
	}

	// Catalog routes. Browsing requires a session; writes require admin.
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.GET("/:id/comments", r.commentHandler.List)
		productGroup.POST("/:id/comments", r.commentHandler.Create)

		adminOnly := productGroup.Group("", r.authMiddleware.RequireAdmin)
		adminOnly.POST("", r.productHandler.Create)
		adminOnly.PUT("/:id", r.productHandler.Update)
		adminOnly.DELETE("/:id", r.productHandler.Delete)
	}

	// Checkout and order history
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.List)
	}

	// Coupon reads
	couponGroup := e.Group("/coupons")
	couponGroup.Use(r.authMiddleware.Authenticate)
	{
		couponGroup.GET("", r.couponHandler.ListActive)
		couponGroup.GET("/user/:userId", r.couponHandler.ListStatuses)
		couponGroup.GET("/:code/qr", r.couponHandler.QR)
	}

	// Moderation routes that require authentication and the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users/:id/approve", r.adminHandler.ApproveUser)
		adminGroup.POST("/users/:id/block", r.adminHandler.BlockUser)
		adminGroup.GET("/security-logs", r.adminHandler.ListSecurityLogs)
	}
}
