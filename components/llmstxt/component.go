// components/llmstxt/component.go
//
// llms.txt component – endpoint, sitemap entry, and settings page.
//
// Lifecycle
// ---------
//  1. init() registers a default instance.  Hosts that need the document
//     filter register their own New(WithFilter(f)), which replaces it.
//  2. Migrations() creates the site, site_option, and content tables.
//  3. Init(host) wires the settings store, content repository, generator,
//     binding, sitemap provider, and admin page.
//  4. Activate() registers "/{endpoint}" in the exact-path dispatch table
//     and the "llms" sitemap provider.  Deactivate() removes both.
//
//------------------------------------------------------------------------------

package llmstxt

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/adept-llmstxt/internal/component"
	"github.com/yanizio/adept-llmstxt/internal/content"
	"github.com/yanizio/adept-llmstxt/internal/form"
	gen "github.com/yanizio/adept-llmstxt/internal/llmstxt"
	"github.com/yanizio/adept-llmstxt/internal/module"
	"github.com/yanizio/adept-llmstxt/internal/routing"
	"github.com/yanizio/adept-llmstxt/internal/settings"
	"github.com/yanizio/adept-llmstxt/internal/site"
	"github.com/yanizio/adept-llmstxt/internal/sitemap"
)

// Name is the component key.
const Name = "llmstxt"

//go:embed forms/settings.yaml
var formsFS embed.FS

// Compile-time assertions.
var (
	_ component.Component = (*Component)(nil)
	_ component.Activator = (*Component)(nil)
)

// Component serves llms.txt for the configured site.
type Component struct {
	filter gen.Filter

	mu       sync.Mutex
	active   bool
	sitemaps *sitemap.Registry
	store    *settings.Store
	service  *gen.Service
	binding  *Binding
	provider *Provider
	admin    *Admin
	adminAt  string
}

// Option configures a Component.
type Option func(*Component)

// WithFilter installs the post-processing hook run on every document.
func WithFilter(f gen.Filter) Option {
	return func(c *Component) { c.filter = f }
}

// New returns an uninitialised Component.
func New(opts ...Option) *Component {
	c := &Component{}
	for _, o := range opts {
		o(c)
	}
	return c
}

func init() { component.Register(New()) }

/*────────────────── component.Component methods ───────────────────────────*/

// Name returns the canonical component key.
func (c *Component) Name() string { return Name }

// Migrations returns the DDL for every table the component reads.
func (c *Component) Migrations() []string {
	out := make([]string, 0, len(site.Schema)+len(content.Schema))
	out = append(out, site.Schema...)
	return append(out, content.Schema...)
}

// Init wires collaborators from host.
func (c *Component) Init(host component.Host) error {
	cfg := host.Config()
	if cfg == nil || host.DB() == nil {
		return errors.New("llmstxt: host has no config or database")
	}
	db := host.DB()
	opts := cfg.LLMSTxt

	sites := site.NewRepository(db, cfg.Site.ID)
	baseURL := func(ctx context.Context) (string, error) {
		rec, err := sites.Record(ctx)
		if err != nil {
			return "", err
		}
		return gen.SiteRoot(rec.URL), nil
	}
	defaults := func(ctx context.Context) (settings.Defaults, error) {
		rec, err := sites.Record(ctx)
		if err != nil {
			return settings.Defaults{}, err
		}
		return settings.Defaults{SiteDescription: rec.Tagline, ContactEmail: rec.AdminEmail}, nil
	}
	meta := func(ctx context.Context) (gen.Site, error) {
		rec, err := sites.Record(ctx)
		if err != nil {
			return gen.Site{}, err
		}
		return gen.Site{Name: rec.Name, URL: rec.URL}, nil
	}

	def, err := form.LoadFS(formsFS, "forms/settings.yaml")
	if err != nil {
		return fmt.Errorf("llmstxt: %w", err)
	}
	form.Register(def)

	store := settings.NewStore(site.NewOptions(db, cfg.Site.ID), opts.OptionName, defaults)
	generator := gen.New(gen.WithSitemapPath(opts.SitemapPath), gen.WithFilter(c.filter))
	service := gen.NewService(store, gen.SiteFunc(meta), content.NewRepository(db, baseURL), generator)
	binding := NewBinding(opts.Endpoint, service)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sitemaps = host.Sitemaps()
	c.store = store
	c.service = service
	c.binding = binding
	c.provider = NewProvider(baseURL, binding.Path())
	c.adminAt = opts.AdminPath
	c.admin = &Admin{
		path:    opts.AdminPath,
		liveURL: func(ctx context.Context) (string, error) {
			root, err := baseURL(ctx)
			if err != nil {
				return "", err
			}
			return routing.JoinURL(root, binding.Path()), nil
		},
		store: store,
		def:   def,
	}
	return nil
}

// Routes mounts the settings page.
func (c *Component) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get(c.adminAt, c.admin.ServeGet)
	r.Post(c.adminAt, c.admin.ServePost)
	return r
}

/*──────────────────── component.Activator methods ─────────────────────────*/

// Activate registers the endpoint and the sitemap provider.
func (c *Component) Activate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return nil
	}
	if c.binding == nil {
		return errors.New("llmstxt: Activate before Init")
	}

	if err := module.Register(c.binding.Path(), c.binding.ServeHTTP); err != nil {
		return fmt.Errorf("llmstxt: %w", err)
	}
	if c.sitemaps != nil {
		if err := c.sitemaps.Register(ProviderName, c.provider); err != nil {
			module.Unregister(c.binding.Path())
			return fmt.Errorf("llmstxt: %w", err)
		}
	}
	c.active = true
	return nil
}

// Deactivate removes what Activate registered.
func (c *Component) Deactivate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return nil
	}
	module.Unregister(c.binding.Path())
	if c.sitemaps != nil {
		c.sitemaps.Unregister(ProviderName)
	}
	c.active = false
	return nil
}

/*──────────────────────────── accessors ────────────────────────────────────*/

// Store returns the Configuration Store built by Init.
func (c *Component) Store() *settings.Store { return c.store }

// Service returns the document service built by Init.
func (c *Component) Service() *gen.Service { return c.service }

// Binding returns the route binding built by Init.
func (c *Component) Binding() *Binding { return c.binding }
