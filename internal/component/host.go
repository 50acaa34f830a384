// internal/component/host.go
//
// Process-wide Host and the boot sequence shared by cmd/web and
// cmd/llmstxt.
//
// Boot walks All() in name order: migrations (when requested), Init, and
// Activate for Activators.  The first failure stops the walk and
// deactivates whatever was already activated.  Shutdown deactivates in
// reverse order and logs, but does not return, individual failures.

package component

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yanizio/adept-llmstxt/internal/config"
	"github.com/yanizio/adept-llmstxt/internal/database"
	"github.com/yanizio/adept-llmstxt/internal/sitemap"
)

// StaticHost is the Host used by the binaries.
type StaticHost struct {
	db       *sqlx.DB
	cfg      *config.Config
	sitemaps *sitemap.Registry
}

// NewHost returns a Host over db and cfg with a fresh sitemap registry.
func NewHost(db *sqlx.DB, cfg *config.Config) *StaticHost {
	return &StaticHost{db: db, cfg: cfg, sitemaps: sitemap.NewRegistry()}
}

func (h *StaticHost) DB() *sqlx.DB                { return h.db }
func (h *StaticHost) Config() *config.Config      { return h.cfg }
func (h *StaticHost) Sitemaps() *sitemap.Registry { return h.sitemaps }

// BootOptions selects optional boot steps.
type BootOptions struct {
	Migrate  bool // run Migrations() first
	Activate bool // call Activate() on Activators
}

// Boot prepares every registered component and returns them in boot order.
func Boot(ctx context.Context, host Host, o BootOptions) ([]Component, error) {
	comps := All()
	var activated []Component

	fail := func(err error) ([]Component, error) {
		Shutdown(activated)
		return nil, err
	}

	for _, c := range comps {
		if o.Migrate {
			if err := database.Migrate(ctx, host.DB(), c.Migrations()); err != nil {
				return fail(fmt.Errorf("component %s: %w", c.Name(), err))
			}
		}
		if err := c.Init(host); err != nil {
			return fail(fmt.Errorf("component %s init: %w", c.Name(), err))
		}
		if a, ok := c.(Activator); ok && o.Activate {
			if err := a.Activate(); err != nil {
				return fail(fmt.Errorf("component %s activate: %w", c.Name(), err))
			}
			activated = append(activated, c)
		}
		zap.L().Info("component ready", zap.String("component", c.Name()))
	}
	return comps, nil
}

// Shutdown deactivates comps in reverse order.
func Shutdown(comps []Component) {
	for i := len(comps) - 1; i >= 0; i-- {
		a, ok := comps[i].(Activator)
		if !ok {
			continue
		}
		if err := a.Deactivate(); err != nil {
			zap.L().Warn("component deactivate", zap.String("component", comps[i].Name()), zap.Error(err))
		}
	}
}

// Merge copies every route of src onto dst.  Components all mount at "/",
// which chi's Mount allows only once per router.
func Merge(dst chi.Router, src chi.Routes) error {
	return chi.Walk(src, func(method, route string, h http.Handler, mws ...func(http.Handler) http.Handler) error {
		dst.With(mws...).Method(method, route, h)
		return nil
	})
}
