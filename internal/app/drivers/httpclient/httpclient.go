package httpclient

import (
	"climed-service/internal/app/config"
	"net/http"
	"time"
)

// NewHTTPClient returns the client shared by every clinic API call. The
// timeout bounds the whole exchange, body included.
func NewHTTPClient(driverConfig *config.DriverConfig) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10
	transport.IdleConnTimeout = 90 * time.Second

	return &http.Client{
		Timeout:   driverConfig.HTTPClient.RequestTimeout,
		Transport: transport,
	}
}
