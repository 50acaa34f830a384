// internal/server/timeouts.go
//
// HTTP server helper with explicit timeouts.
//
//   • ReadTimeout   – abort slow-loris headers (default 10 s)
//   • WriteTimeout  – cap total response time (default 15 s)
//   • IdleTimeout   – close keep-alives on idle clients (default 60 s)
//
// Values come from the `http` config section; zero values fall back to the
// defaults above.
//

package server

import (
	"net/http"
	"time"

	"github.com/yanizio/adept-llmstxt/internal/config"
)

// Default timeouts applied when the config leaves a value at zero.
const (
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
)

// New constructs an *http.Server for handler using cfg's listen address and
// timeouts.
func New(cfg config.HTTP, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadTimeout:       orDefault(cfg.ReadTimeout, DefaultReadTimeout),
		ReadHeaderTimeout: orDefault(cfg.ReadTimeout, DefaultReadTimeout),
		WriteTimeout:      orDefault(cfg.WriteTimeout, DefaultWriteTimeout),
		IdleTimeout:       orDefault(cfg.IdleTimeout, DefaultIdleTimeout),
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
