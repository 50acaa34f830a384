package llmstxt

import (
	"context"
	"fmt"
	"time"

	"github.com/yanizio/adept-llmstxt/internal/routing"
	"github.com/yanizio/adept-llmstxt/internal/sitemap"
)

// ProviderName is the sitemap provider key.  It avoids the built-in
// posts, taxonomies, and users names.
const ProviderName = "llms"

// Priority of the llms.txt sitemap entry.
const Priority = 0.8

// BaseURLFunc returns the absolute site root.
type BaseURLFunc func(ctx context.Context) (string, error)

// Provider contributes the endpoint URL to the sitemap.
type Provider struct {
	base     BaseURLFunc
	endpoint string
	now      func() time.Time
}

// NewProvider returns a Provider listing base + endpoint.
func NewProvider(base BaseURLFunc, endpoint string) *Provider {
	return &Provider{base: base, endpoint: endpoint, now: time.Now}
}

// URLList returns the single entry.  Every page yields the same entry.
func (p *Provider) URLList(ctx context.Context, _ int) ([]sitemap.Entry, error) {
	root, err := p.base(ctx)
	if err != nil {
		return nil, fmt.Errorf("llms sitemap: %w", err)
	}
	return []sitemap.Entry{{
		Loc:      routing.JoinURL(root, p.endpoint),
		LastMod:  p.now(),
		Priority: Priority,
	}}, nil
}

// MaxNumPages is always 1.
func (p *Provider) MaxNumPages() int { return 1 }
