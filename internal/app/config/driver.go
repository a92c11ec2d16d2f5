package config

import "time"

type (
	DriverConfig struct {
		Logger     Logger
		HTTPClient HTTPClient
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	HTTPClient struct {
		RequestTimeout time.Duration
	}
)
