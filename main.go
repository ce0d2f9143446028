package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripserver/config"
	"tripserver/database"
	bookingRepo "tripserver/database/repository/booking"
	packageBookingRepo "tripserver/database/repository/packagebooking"
	reviewRepo "tripserver/database/repository/review"
	"tripserver/handlers"
	"tripserver/middleware"
	"tripserver/routes"
	"tripserver/services/invoice"
	"tripserver/services/notification"
	"tripserver/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	client, err := database.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := client.Database(cfg.DatabaseName)

	if err := os.MkdirAll(cfg.PublicDir, 0o755); err != nil {
		logger.Sugar().Fatalf("main: failed to create public dir: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// repositories.
	tripRepo := bookingRepo.NewMongoBookingRepo(db)
	pkgRepo := packageBookingRepo.NewMongoPackageBookingRepo(db)
	revRepo := reviewRepo.NewMongoReviewRepo(db)

	// services.
	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	})
	renderer := invoice.NewChromeRenderer(cfg.InvoiceTemplate, cfg.PublicDir, cfg.PublicBaseURL, cfg.RenderTimeout())

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:        handlers.NewBookingHandler(tripRepo),
		PackageBooking: handlers.NewPackageBookingHandler(pkgRepo, mailer, cfg.AdminEmail),
		Review:         handlers.NewReviewHandler(revRepo),
		Invoice:        handlers.NewInvoiceHandler(renderer),
		Notification:   handlers.NewNotificationHandler(mailer),
	}

	routes.RegisterRoutes(router, handlerBundle, cfg.PublicDir)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "5500"
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
	if err := client.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
