package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-reservations/config"
	"hotel-reservations/controllers"
	"hotel-reservations/queue"
	"hotel-reservations/routes"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

func main() {
	// Load .env (optional)
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := utils.InitLogger(cfg.Log.Dir, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info(".env not loaded, using process environment")
	}
	gin.SetMode(cfg.Server.GinMode)

	db, err := config.ConnectDatabase(cfg.DB, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	logger.Info("database ready", zap.String("driver", cfg.DB.Driver))

	rdb := config.NewRedisClient(cfg.Redis, logger)
	publisher := queue.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
	defer func() { _ = publisher.Close() }()

	clock := utils.NewRealClock()

	// Initialize services
	availabilityService := services.NewAvailabilityService(db, logger)
	reservationService := services.NewReservationService(db, clock, cfg.Booking, publisher, logger)
	categoryService := services.NewCategoryService(db, logger)
	roomService := services.NewRoomService(db, logger)
	authService := services.NewAuthService(db, cfg.JWT, clock, logger)
	adminService := services.NewAdminService(db, logger)

	// Initialize controllers
	ctrls := routes.Controllers{
		Availability: controllers.NewAvailabilityController(availabilityService, clock, logger),
		Reservation:  controllers.NewReservationController(reservationService, logger),
		Category:     controllers.NewCategoryController(categoryService, logger),
		Room:         controllers.NewRoomController(roomService, logger),
		Auth:         controllers.NewAuthController(authService, logger),
		Admin:        controllers.NewAdminController(adminService, logger),
	}

	router := routes.SetupRouter(cfg, ctrls, authService, rdb, logger)

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
}
