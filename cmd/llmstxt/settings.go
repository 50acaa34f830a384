// cmd/llmstxt/settings.go
//
// settings show / settings set.
//
// `set` reads the current settings, overlays only the flags given on the
// command line, and submits the full record.  That matches what the admin
// form posts, so unspecified flags and counts keep their values instead of
// falling back to the update defaults.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yanizio/adept-llmstxt/internal/settings"
)

// settingsStore is satisfied by *settings.Store.
type settingsStore interface {
	Read(ctx context.Context) (settings.Configuration, error)
	Update(ctx context.Context, in settings.Input) (settings.Configuration, error)
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the llms.txt settings",
	}
	cmd.AddCommand(newSettingsShowCmd(), newSettingsSetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := boot(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer e.Close()
			cfg, err := e.comp.Store().Read(cmd.Context())
			if err != nil {
				return err
			}
			return printSettings(cmd.OutOrStdout(), cfg, format)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}

func newSettingsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings; omitted flags keep their current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := boot(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer e.Close()

			cfg, err := runSet(cmd.Context(), e.comp.Store(), changedFlags(cmd))
			if err != nil {
				return err
			}
			return printSettings(cmd.OutOrStdout(), cfg, "yaml")
		},
	}

	f := cmd.Flags()
	f.String(settings.FieldSiteDescription, "", "site description (markup is stripped)")
	f.String(settings.FieldContactEmail, "", "contact email; invalid addresses are saved as empty")
	f.String(settings.FieldContactURL, "", "contact page URL; must be absolute")
	f.Bool(settings.FieldIncludePages, true, "list important pages")
	f.Bool(settings.FieldIncludePosts, true, "list recent posts")
	f.Int(settings.FieldMaxPages, settings.DefaultMaxItems, "maximum pages listed")
	f.Int(settings.FieldMaxPosts, settings.DefaultMaxItems, "maximum posts listed")
	return cmd
}

// changedFlags returns the flags set on the command line as raw strings.
func changedFlags(cmd *cobra.Command) map[string]string {
	out := map[string]string{}
	for _, name := range []string{
		settings.FieldSiteDescription, settings.FieldContactEmail, settings.FieldContactURL,
		settings.FieldIncludePages, settings.FieldIncludePosts,
		settings.FieldMaxPages, settings.FieldMaxPosts,
	} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			out[name] = f.Value.String()
		}
	}
	return out
}

// runSet overlays changed onto the current settings and saves the result.
func runSet(ctx context.Context, store settingsStore, changed map[string]string) (settings.Configuration, error) {
	cur, err := store.Read(ctx)
	if err != nil {
		return settings.Configuration{}, err
	}

	in := settings.Input{
		settings.FieldSiteDescription: cur.SiteDescription,
		settings.FieldContactEmail:    cur.ContactEmail,
		settings.FieldContactURL:      cur.ContactURL,
		settings.FieldIncludePages:    cur.IncludePages,
		settings.FieldIncludePosts:    cur.IncludePosts,
		settings.FieldMaxPages:        strconv.Itoa(cur.MaxPages),
		settings.FieldMaxPosts:        strconv.Itoa(cur.MaxPosts),
	}
	for k, v := range changed {
		in[k] = v
	}
	return store.Update(ctx, in)
}

func printSettings(w io.Writer, cfg settings.Configuration, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
