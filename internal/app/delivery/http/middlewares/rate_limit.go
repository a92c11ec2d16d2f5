package middlewares

import (
	"net/http"
	"time"

	"climed-service/internal/pkg/exceptions"
	"climed-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit allows APP_MAX_REQUESTS requests per second per client IP and
// answers the rest with a 429 error body.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil), m.InternalConfig.App.Env)
		}),
	)
}
