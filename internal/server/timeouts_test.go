package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/yanizio/adept-llmstxt/internal/config"
)

func TestNew(t *testing.T) {
	srv := New(config.HTTP{ListenAddr: ":9090", WriteTimeout: 5 * time.Second}, http.NotFoundHandler())

	if srv.Addr != ":9090" {
		t.Errorf("Addr = %q", srv.Addr)
	}
	if srv.ReadTimeout != DefaultReadTimeout || srv.IdleTimeout != DefaultIdleTimeout {
		t.Errorf("defaults not applied: read=%v idle=%v", srv.ReadTimeout, srv.IdleTimeout)
	}
	if srv.WriteTimeout != 5*time.Second {
		t.Errorf("WriteTimeout = %v, want 5s", srv.WriteTimeout)
	}
}
