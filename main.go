// File: salonbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	bookingRepo "salonbook/database/repository/booking"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/availability"
	"salonbook/services/booking"
	"salonbook/services/tasks"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	store := availability.NewStore()
	paymentProcessor := booking.NewStripePaymentProcessor(logger)
	reminderQueue := tasks.NewReminderQueue()

	bookingService := &booking.DefaultBookingService{
		Store:     store,
		Repo:      bookings,
		Payments:  paymentProcessor,
		Catalog:   booking.NewFixedSlotCatalog(config.AppConfig.BusinessHours),
		Reminders: reminderQueue,
		Currency:  config.AppConfig.Currency,
		Logger:    logger,
	}

	warmCtx, warmCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bookingService.WarmStore(warmCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to warm availability index: %v", err)
	}
	warmCancel()

	bookingHandler := handlers.NewBookingHandler(
		bookingService,
		paymentProcessor,
		utils.GetCacheClient(),
		logger,
	)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler)

	// Background workers.
	cron.InitReminderWorker()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
