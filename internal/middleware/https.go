// Package middleware holds small, composable HTTP wrappers.
package middleware

import (
	"net"
	"net/http"
)

// ForceHTTPS wraps h.  When enabled and the request arrived over plain HTTP
// for a host other than localhost, the wrapper issues a 308 Permanent
// Redirect to the HTTPS version of the same URL.  Requests forwarded by a
// TLS-terminating proxy (X-Forwarded-Proto: https) pass through.
func ForceHTTPS(enabled bool, h http.Handler) http.Handler {
	if !enabled {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" || isLocal(r.Host) {
			h.ServeHTTP(w, r)
			return
		}
		http.Redirect(w, r, "https://"+r.Host+r.URL.RequestURI(), http.StatusPermanentRedirect)
	})
}

// isLocal reports whether host (with or without port) is a loopback name.
func isLocal(host string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	switch host {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}
