// Package router wires the API handlers to their routes.
package router

import (
	"strconv"

	"enginex/config"
	"enginex/internal/delivery/api/middleware"
	"enginex/internal/delivery/api/router/handler"
	"enginex/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// multipartOverhead covers the multipart envelope around an uploaded image.
const multipartOverhead = 64 << 10

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ListingHandler      *handler.ListingHandler
	CatalogHandler      *handler.CatalogHandler
	ImageHandler        *handler.ImageHandler
	ProfileHandler      *handler.ProfileHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	listingHandler      *handler.ListingHandler
	catalogHandler      *handler.CatalogHandler
	imageHandler        *handler.ImageHandler
	profileHandler      *handler.ProfileHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		listingHandler:      params.ListingHandler,
		catalogHandler:      params.CatalogHandler,
		imageHandler:        params.ImageHandler,
		profileHandler:      params.ProfileHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	jsonLimit := echomiddleware.BodyLimit(r.config.HTTP.MaxRequestBodySize)
	uploadLimit := echomiddleware.BodyLimit(strconv.FormatInt(r.config.Storage.MaxUploadSize+multipartOverhead, 10) + "B")

	apiV1 := e.Group("/api/v1")

	// Anonymous visitors browse and publish; a valid token only adds ownership.
	public := apiV1.Group("", r.authMiddleware.OptionalAuthenticate)
	{
		public.GET("/categories", r.catalogHandler.ListCategories)
		public.GET("/equipment-types", r.catalogHandler.ListEquipmentTypes)
		public.GET("/regions", r.catalogHandler.ListRegions)

		public.GET("/listings", r.listingHandler.SearchListings)
		public.GET("/listings/featured", r.listingHandler.FeaturedListings)
		public.GET("/listings/:id", r.listingHandler.GetListing)
		public.GET("/listings/:id/qr", r.listingHandler.ShareQRCode)
		public.POST("/listings", r.listingHandler.PublishListing, jsonLimit)

		public.POST("/images", r.imageHandler.UploadImage, uploadLimit)
	}

	authGroup := apiV1.Group("/auth", jsonLimit)
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/password/forgot", r.authHandler.RequestPasswordReset)
		authGroup.POST("/password/verify", r.authHandler.VerifyResetCode)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword)
	}

	// Routes below require a signed-in user.
	me := apiV1.Group("/me", r.authMiddleware.Authenticate, jsonLimit)
	{
		me.GET("", r.profileHandler.GetProfile)
		me.PATCH("", r.profileHandler.UpdateProfile)
		me.POST("/subscription", r.profileHandler.Subscribe)
		me.GET("/dashboard", r.profileHandler.Dashboard)

		me.GET("/listings", r.listingHandler.MyListings)
		me.DELETE("/listings/:id", r.listingHandler.DeleteMyListing)
		me.PATCH("/listings/:id/active", r.listingHandler.SetMyListingActive)

		me.DELETE("/images", r.imageHandler.DeleteImage)
	}

	notificationsGroup := apiV1.Group("/notifications", r.authMiddleware.Authenticate, jsonLimit)
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.PATCH("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	devicesGroup := apiV1.Group("/devices", r.authMiddleware.Authenticate, jsonLimit)
	{
		devicesGroup.POST("", r.deviceHandler.Register)
		devicesGroup.GET("", r.deviceHandler.List)
		devicesGroup.PUT("/:id/token", r.deviceHandler.RotateToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.Unregister)
	}

	adminGroup := apiV1.Group("/admin",
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
		jsonLimit,
	)
	{
		adminGroup.GET("/stats", r.adminHandler.Stats)
		adminGroup.GET("/profiles", r.adminHandler.ListProfiles)
		adminGroup.GET("/listings", r.adminHandler.ListListings)
		adminGroup.POST("/listings", r.adminHandler.CreateListing)
		adminGroup.PATCH("/listings/:id/status", r.adminHandler.ModerateListing)
		adminGroup.PATCH("/listings/:id/badge", r.adminHandler.SetBadge)
		adminGroup.DELETE("/listings/:id", r.adminHandler.DeleteListing)
	}
}
