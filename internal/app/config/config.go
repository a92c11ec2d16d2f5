package config

import (
	"climed-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "climed.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "climed_error.log"),
		},
		HTTPClient: HTTPClient{
			RequestTimeout: utils.GetEnvSeconds("APP_API_REQUEST_TIMEOUT_IN_SECONDS", 15),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                utils.GetEnvString("APP_ENV", "development"),
			Port:               utils.GetEnvString("APP_PORT", ":8080"),
			Version:            utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:     utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:        utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeout:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			CorsAllowedOrigins: utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		ClinicAPI: ClinicAPI{
			BaseUrl: strings.TrimRight(utils.GetEnvString("API_URL", ""), "/"),
		},
	}
}
