// internal/component/registry.go
//
// Component registry (cycle-free).
//
// Each concrete component lives under components/<name> and calls
// component.Register() in an init() function.  cmd/web and cmd/llmstxt
// import the components they ship for side effects, then walk All():
//
//  1. Migrations() run once against the site database.
//  2. Init(host) hands the component its collaborators.
//  3. Routes() is mounted at "/" on the chi router.
//  4. Activate() runs when the component implements Activator.  Shutdown
//     calls Deactivate() in reverse order.
package component

import (
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/yanizio/adept-llmstxt/internal/config"
	"github.com/yanizio/adept-llmstxt/internal/sitemap"
)

// Host exposes process-wide resources to Components during Init.
type Host interface {
	DB() *sqlx.DB
	Config() *config.Config
	Sitemaps() *sitemap.Registry
}

// Component contract.
//
// Migrations() may return nil if the component has no schema changes.
// Routes() may return nil when the component only serves exact-path
// handlers.
type Component interface {
	Name() string
	Migrations() []string
	Init(Host) error
	Routes() chi.Router
}

// Activator is optional.  Activate installs side effects that live outside
// the router (exact-path handlers, sitemap providers); Deactivate undoes
// them.
type Activator interface {
	Activate() error
	Deactivate() error
}

var (
	mu       sync.RWMutex
	registry = map[string]Component{}
)

// Register is invoked from component init() functions.  A second
// registration under the same name replaces the first.
func Register(c Component) {
	mu.Lock()
	registry[c.Name()] = c
	mu.Unlock()
}

// Get returns the component registered as name.
func Get(name string) (Component, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registry[name]
	return c, ok
}

// All returns every registered component sorted by name.
func All() []Component {
	mu.RLock()
	out := make([]Component, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
