// cmd/web/main.go
//
// llms.txt service – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Bootstrap a console logger so config loading can log.
//
//  2. Load configuration (defaults → conf/.env → conf/global.yaml →
//     ADEPT_ env, Vault references resolved).
//
//  3. Start the daily rotating logger (tees to console in a TTY).
//
//  4. Open the site DB and boot every registered component: migrations,
//     Init, and Activate.
//
//  5. Build the handler chain:
//
//     • ForceHTTPS               – 308 to HTTPS when enabled
//     • Security headers
//     • requestinfo.Enrich       – UA parse, crawler class
//     • module.Dispatch          – exact-path terminal handlers (/llms.txt)
//     • chi router               – /metrics, sitemap, component routes
//
//  6. Serve until SIGINT/SIGTERM, then shut down gracefully and deactivate
//     components.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/adept-llmstxt/internal/component"
	"github.com/yanizio/adept-llmstxt/internal/config"
	"github.com/yanizio/adept-llmstxt/internal/database"
	"github.com/yanizio/adept-llmstxt/internal/llmstxt"
	"github.com/yanizio/adept-llmstxt/internal/logger"
	"github.com/yanizio/adept-llmstxt/internal/middleware"
	"github.com/yanizio/adept-llmstxt/internal/module"
	"github.com/yanizio/adept-llmstxt/internal/requestinfo"
	"github.com/yanizio/adept-llmstxt/internal/server"
	"github.com/yanizio/adept-llmstxt/internal/site"

	_ "github.com/yanizio/adept-llmstxt/components/llmstxt"
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	logger.Bootstrap()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Config + logger ─────────────────────────────────────────────
	//
	cfg, err := config.LoadContext(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logOut, err := logger.New(logger.Options{
		Root:  cfg.Paths.Root,
		Name:  "web",
		Level: cfg.Log.Level,
		Tee:   runningInTTY(),
	})
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	//
	// ── 2.  Database + components ───────────────────────────────────────
	//
	db, err := database.Open(cfg.Database.DSN())
	if err != nil {
		logOut.Fatalw("connect database", "err", err)
	}
	defer db.Close()
	logOut.Infow("database online", "site_id", cfg.Site.ID)

	host := component.NewHost(db, cfg)
	comps, err := component.Boot(ctx, host, component.BootOptions{Migrate: true, Activate: true})
	if err != nil {
		logOut.Fatalw("boot components", "err", err)
	}
	defer component.Shutdown(comps)

	//
	// ── 3.  Router ──────────────────────────────────────────────────────
	//
	sites := site.NewRepository(db, cfg.Site.ID)
	siteRoot := func(ctx context.Context) (string, error) {
		rec, err := sites.Record(ctx)
		if err != nil {
			return "", err
		}
		return llmstxt.SiteRoot(rec.URL), nil
	}

	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	if err := component.Merge(r, host.Sitemaps().Routes(cfg.LLMSTxt.SitemapPath, siteRoot)); err != nil {
		logOut.Fatalw("mount sitemap", "err", err)
	}
	for _, c := range comps {
		if routes := c.Routes(); routes != nil {
			if err := component.Merge(r, routes); err != nil {
				logOut.Fatalw("mount component", "component", c.Name(), "err", err)
			}
		}
	}

	var root http.Handler = module.Dispatch(r)
	root = requestinfo.Enrich(root)
	root = middleware.Security(root)
	root = middleware.ForceHTTPS(cfg.HTTP.ForceHTTPS, root)

	//
	// ── 4.  Serve ───────────────────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP, root)
	go func() {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr, "paths", module.Paths())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logOut.Errorw("http server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	zap.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logOut.Warnw("graceful shutdown", "err", err)
	}
}
