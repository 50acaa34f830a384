// internal/requestinfo/middleware.go
//
// HTTP middleware that attaches *Info to each request.
//
/*
Context
--------
Enrich sits after security headers and before the exact-path dispatch, so
the llms.txt handler can label its metrics without reparsing the header.

Instrumentation
---------------
At debug level each request logs browser, device, bot flag, crawler name,
and path.
*/
package requestinfo

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Enrich wraps an http.Handler, attaches *Info, and forwards.
func Enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := Parse(r.UserAgent())
		info.Path = r.URL.Path
		info.Timestamp = time.Now().UTC()

		zap.L().Debug("request info",
			zap.String("browser", info.Browser),
			zap.String("device", info.Device),
			zap.Bool("bot", info.Bot),
			zap.String("crawler", info.Crawler),
			zap.String("path", info.Path),
		)

		next.ServeHTTP(w, r.WithContext(WithInfo(r.Context(), &info)))
	})
}
