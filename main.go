package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hoteldesk-backend/config"
	"hoteldesk-backend/controllers"
	"hoteldesk-backend/routes"
	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not found, continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Point-in-time copy of the store file before any operation runs.
	if cfg.Backup.Enable && strings.EqualFold(cfg.Database.Driver, "sqlite") {
		if _, err := os.Stat(cfg.Database.Path); err == nil {
			path, err := utils.BackupFile(cfg.Database.Path, cfg.Backup.Dir)
			if err != nil {
				log.Warn().Err(err).Msg("database backup failed")
			} else {
				log.Info().Str("path", path).Msg("database backed up")
			}
		}
	}

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("database connected, migrations applied")

	// Services
	authService := services.NewAuthService(db, cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	clientService := services.NewClientService(db)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	invoiceService := services.NewInvoiceService(db)
	userService := services.NewUserService(db)
	statsService := services.NewStatsService(db)

	// Controllers
	authController := controllers.NewAuthController(authService)
	clientController := controllers.NewClientController(clientService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService, invoiceService)
	userController := controllers.NewUserController(userService)
	dashboardController := controllers.NewDashboardController(statsService)

	router := routes.SetupRouter(cfg, authService,
		authController, clientController, roomController,
		bookingController, userController, dashboardController)

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
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server stopped gracefully")
}
