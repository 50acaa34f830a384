// Package sitemap aggregates URL providers into an XML sitemap.
//
// Context
// -------
// Components contribute entries by registering a Provider under a short
// lower-case name.  The Registry serves:
//
//	/{index}.xml                  sitemap index, one <sitemap> per provider page
//	/{index}-{name}-{page}.xml    <urlset> for one provider page (1-based)
//
// where {index} is the configured index filename without ".xml"
// (default "wp-sitemap").  The names posts, taxonomies, and users are
// reserved for built-in listings.
//
// Notes
// -----
//   - Providers are rendered in name order so the index is stable.
//   - A page outside 1..MaxNumPages answers 404.
package sitemap

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"
)

// Sentinel errors returned by Register.
var (
	ErrReservedName = errors.New("sitemap: provider name is reserved")
	ErrDuplicate    = errors.New("sitemap: provider already registered")
	ErrInvalidName  = errors.New("sitemap: provider name must be lower-case letters")
)

var (
	reserved  = map[string]bool{"posts": true, "taxonomies": true, "users": true}
	validName = regexp.MustCompile(`^[a-z]+$`)
)

// Entry is one <url> of a provider page.
type Entry struct {
	Loc      string
	LastMod  time.Time
	Priority float64
}

// Provider supplies sitemap entries page by page.  Pages are 1-based and
// URLList is only called for pages in 1..MaxNumPages.
type Provider interface {
	URLList(ctx context.Context, page int) ([]Entry, error)
	MaxNumPages() int
}

// Registry holds the registered providers.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{providers: map[string]Provider{}}
}

// Register adds p under name.
func (r *Registry) Register(name string, p Provider) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if reserved[name] {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.providers[name] = p
	return nil
}

// Unregister removes name.  Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.providers, name)
	r.mu.Unlock()
}

// Lookup returns the provider registered under name.
func (r *Registry) Lookup(name string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	return p, ok
}

// Names returns the registered provider names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.providers))
	for n := range r.providers {
		names = append(names, n)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
