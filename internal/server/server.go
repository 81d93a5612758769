package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ardelia/gigpass/config"
	"github.com/ardelia/gigpass/internal/clock"
	"github.com/ardelia/gigpass/internal/handlers"
	"github.com/ardelia/gigpass/internal/middleware"
	"github.com/ardelia/gigpass/internal/models"
	"github.com/ardelia/gigpass/internal/services"
	"github.com/ardelia/gigpass/internal/store"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, store.NewGormStore(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, st store.Store) {
	bookingSvc := services.NewBookingService(st)
	qrSvc := services.NewQRService(st)
	ticketSvc := services.NewTicketService(st, clock.System())
	eventSvc := services.NewEventService(st)
	adminSvc := services.NewAdminService(st)

	authHandler := handlers.NewAuthHandler(st)
	profileHandler := handlers.NewProfileHandler(st)
	eventHandler := handlers.NewEventHandler(eventSvc)
	bookingHandler := handlers.NewBookingHandler(bookingSvc)
	qrHandler := handlers.NewQRHandler(qrSvc)
	scanHandler := handlers.NewScanHandler(ticketSvc)
	adminHandler := handlers.NewAdminHandler(adminSvc)

	public := r.Group("/v1")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
		public.GET("/events", eventHandler.ListEvents)
		public.GET("/events/:id", eventHandler.GetEvent)

		// Pollable by booking id without authentication; callers needing
		// privacy must add an authorization layer in front.
		public.GET("/scan/public/status/:bookingId", scanHandler.Status)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.GET("/profile", profileHandler.GetProfile)

		userOnly := protected.Group("")
		userOnly.Use(middleware.RequireRole(models.RoleUser))
		{
			userOnly.POST("/bookings", bookingHandler.CreateBooking)
			userOnly.GET("/bookings", bookingHandler.MyBookings)
			userOnly.DELETE("/bookings/:id", bookingHandler.DeleteBooking)
			userOnly.GET("/bookings/:id/tickets", bookingHandler.ListTickets)
			userOnly.POST("/qr/generate/:bookingId", qrHandler.GenerateQR)
			userOnly.GET("/qr/image/:bookingId/:ticketNumber", qrHandler.TicketImage)
		}

		checkerOnly := protected.Group("/scan")
		checkerOnly.Use(middleware.RequireRole(models.RoleTicketChecker))
		{
			checkerOnly.POST("/validate", scanHandler.ValidateTicket)
			checkerOnly.GET("/status/:bookingId", scanHandler.Status)
		}

		adminOnly := protected.Group("")
		adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminOnly.POST("/events", eventHandler.CreateEvent)
			adminOnly.PUT("/events/:id", eventHandler.UpdateEvent)
			adminOnly.DELETE("/events/:id", eventHandler.DeleteEvent)

			adminOnly.GET("/admin/bookings", adminHandler.ListBookings)
			adminOnly.GET("/admin/users", adminHandler.ListUsers)
			adminOnly.GET("/admin/users/:role", adminHandler.ListUsersByRole)
			adminOnly.GET("/admin/ticket-checkers", adminHandler.ListTicketCheckers)
		}
	}
}
