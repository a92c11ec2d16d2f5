package main

import (
	"fmt"
	"net/http"
	"os"

	"climed-service/internal/app/config"
	"climed-service/internal/app/delivery/cli"
	"climed-service/internal/app/drivers/httpclient"
	"climed-service/internal/app/drivers/logger"
	"climed-service/internal/app/services/clinic_api"
	"climed-service/internal/app/services/core/frontdesk"

	"go.uber.org/zap"
)

func main() {
	var (
		zapLogger  *zap.Logger
		httpClient *http.Client
	)

	rootCmd := cli.NewRootCommand(func(verbose bool) (*cli.Dependencies, error) {
		driverConfig := config.NewDriverConfig()
		internalConfig := config.NewInternalConfig()
		if err := internalConfig.Validate(); err != nil {
			return nil, err
		}

		zapLogger = logger.NewCLILogger(driverConfig, verbose)
		httpClient = httpclient.NewHTTPClient(driverConfig)

		clinicAPIClient := clinic_api.NewClinicApiClient(internalConfig.ClinicAPI.BaseUrl, httpClient, zapLogger)
		return &cli.Dependencies{
			FrontDeskUsecase: frontdesk.NewFrontDeskUsecase(clinicAPIClient, zapLogger),
			RequestTimeout:   driverConfig.HTTPClient.RequestTimeout,
		}, nil
	})

	err := rootCmd.Execute()

	if httpClient != nil {
		httpClient.CloseIdleConnections()
	}
	if zapLogger != nil {
		_ = zapLogger.Sync()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
