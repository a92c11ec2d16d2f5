package config

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	HTTPClient     *http.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.HTTPClient != nil {
		b.HTTPClient.CloseIdleConnections()
		log.Println("Successfully closing idle clinic API connections")
	}

	// Sync on stdout/stderr returns EINVAL on some platforms; nothing to flush there.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
