package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"climed-service/internal/app/config"
	"climed-service/internal/app/delivery/http/controllers"
	"climed-service/internal/app/delivery/http/middlewares"
	"climed-service/internal/app/delivery/http/routers"
	"climed-service/internal/app/drivers/httpclient"
	"climed-service/internal/app/drivers/logger"
	"climed-service/internal/app/services/clinic_api"
	"climed-service/internal/app/services/core/frontdesk"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		HTTPClient:     httpclient.NewHTTPClient(driverConfig),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("address", internalConfig.App.Port),
			zap.String("clinic_api", internalConfig.ClinicAPI.BaseUrl),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Clinic API
	clinicAPIClient := clinic_api.NewClinicApiClient(
		bootstrap.InternalConfig.ClinicAPI.BaseUrl,
		bootstrap.HTTPClient,
		bootstrap.Logger,
	)

	// Front desk
	frontDeskUsecase := frontdesk.NewFrontDeskUsecase(clinicAPIClient, bootstrap.Logger)
	frontDeskController := controllers.NewFrontDeskController(
		bootstrap.Logger,
		frontDeskUsecase,
		bootstrap.InternalConfig.App.Env,
		bootstrap.DriverConfig.HTTPClient.RequestTimeout,
	)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance, frontDeskController)
}
