package config

import "climed-service/internal/pkg/exceptions"

type InternalConfig struct {
	App       App
	ClinicAPI ClinicAPI
}

type App struct {
	Env                string
	Port               string
	Version            string
	EndpointPrefix     string
	MaxRequests        int
	ShutdownTimeout    int
	CorsAllowedOrigins []string
}

// ClinicAPI points at the external clinic API every front desk operation
// is forwarded to.
type ClinicAPI struct {
	BaseUrl string
}

// Validate reports settings the process cannot start without.
func (c *InternalConfig) Validate() error {
	if c.ClinicAPI.BaseUrl == "" {
		return exceptions.ErrMissingConfig("API_URL")
	}
	return nil
}
