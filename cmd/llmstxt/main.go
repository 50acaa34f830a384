// cmd/llmstxt/main.go
//
// Operator CLI for the llms.txt component.
//
//	llmstxt generate            print the current document
//	llmstxt settings show       print the resolved settings
//	llmstxt settings set ...    update settings from flags
//	llmstxt migrate             create the component tables
//
// Every command loads the same configuration as cmd/web and boots the
// registered components without activating them, so nothing is added to
// the dispatch table or the sitemap.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	llmscomp "github.com/yanizio/adept-llmstxt/components/llmstxt"
	"github.com/yanizio/adept-llmstxt/internal/component"
	"github.com/yanizio/adept-llmstxt/internal/config"
	"github.com/yanizio/adept-llmstxt/internal/database"
	"github.com/yanizio/adept-llmstxt/internal/logger"
)

// env is what a booted command works with.
type env struct {
	cfg  *config.Config
	db   *sqlx.DB
	comp *llmscomp.Component
}

func (e *env) Close() {
	if e.db != nil {
		_ = e.db.Close()
	}
}

// boot loads config, opens the database, and initialises components.
func boot(ctx context.Context, migrate bool) (*env, error) {
	cfg, err := config.LoadContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if _, err := logger.New(logger.Options{Root: cfg.Paths.Root, Name: "cli", Level: cfg.Log.Level}); err != nil {
		return nil, fmt.Errorf("start logger: %w", err)
	}

	db, err := database.OpenWithOptions(ctx, cfg.Database.DSN(), database.Options{
		MaxOpenConns: 2,
		MaxIdleConns: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	e := &env{cfg: cfg, db: db}
	if _, err := component.Boot(ctx, component.NewHost(db, cfg), component.BootOptions{Migrate: migrate}); err != nil {
		e.Close()
		return nil, err
	}

	c, ok := component.Get(llmscomp.Name)
	if !ok {
		e.Close()
		return nil, fmt.Errorf("component %s not registered", llmscomp.Name)
	}
	e.comp = c.(*llmscomp.Component)
	return e, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "llmstxt",
		Short:         "Inspect and manage the llms.txt document",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.Bootstrap()
		},
	}
	root.AddCommand(newGenerateCmd(), newSettingsCmd(), newMigrateCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the site, site_option, and content tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := boot(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer e.Close()
			zap.L().Info("migrations applied")
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
