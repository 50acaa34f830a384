// internal/llmstxt/service.go
//
// Document assembly with collaborators.
//
// Workflow
// --------
//  1. Read the Configuration (defaults applied field by field).
//  2. Read the site name and URL.
//  3. List published pages and posts, but only for sections that are
//     enabled.  The stored caps are passed through; the content layer
//     bounds them.
//  4. Hand everything to the Generator.
//
// Notes
// -----
//   - Collaborator errors are returned wrapped and never masked.
//   - Nothing is cached between calls.
package llmstxt

import (
	"context"
	"fmt"
	"time"

	"github.com/yanizio/adept-llmstxt/internal/content"
	"github.com/yanizio/adept-llmstxt/internal/metrics"
	"github.com/yanizio/adept-llmstxt/internal/settings"
)

// ConfigReader yields the current Configuration.  *settings.Store
// satisfies it.
type ConfigReader interface {
	Read(ctx context.Context) (settings.Configuration, error)
}

// SiteReader yields the site name and root URL.
type SiteReader interface {
	Site(ctx context.Context) (Site, error)
}

// SiteFunc adapts a function to SiteReader.
type SiteFunc func(ctx context.Context) (Site, error)

// Site implements SiteReader.
func (f SiteFunc) Site(ctx context.Context) (Site, error) { return f(ctx) }

// ContentLister lists published content.  *content.Repository satisfies it.
type ContentLister interface {
	ListPublishedPages(ctx context.Context, limit int) ([]content.Item, error)
	ListPublishedPosts(ctx context.Context, limit int) ([]content.Item, error)
}

// Service produces llms.txt documents from live data.
type Service struct {
	cfg     ConfigReader
	site    SiteReader
	content ContentLister
	gen     *Generator
}

// NewService wires a Service.  A nil gen selects New().
func NewService(cfg ConfigReader, site SiteReader, cl ContentLister, gen *Generator) *Service {
	if gen == nil {
		gen = New()
	}
	return &Service{cfg: cfg, site: site, content: cl, gen: gen}
}

// Document builds the current llms.txt.
func (s *Service) Document(ctx context.Context) (string, error) {
	start := time.Now()

	cfg, err := s.cfg.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("read settings: %w", err)
	}
	site, err := s.site.Site(ctx)
	if err != nil {
		return "", fmt.Errorf("read site: %w", err)
	}

	var pages, posts []content.Item
	if cfg.IncludePages {
		if pages, err = s.content.ListPublishedPages(ctx, cfg.MaxPages); err != nil {
			return "", fmt.Errorf("list pages: %w", err)
		}
	}
	if cfg.IncludePosts {
		if posts, err = s.content.ListPublishedPosts(ctx, cfg.MaxPosts); err != nil {
			return "", fmt.Errorf("list posts: %w", err)
		}
	}

	doc := s.gen.Generate(cfg, site, pages, posts)

	metrics.GenerateSeconds.Observe(time.Since(start).Seconds())
	metrics.DocumentBytes.Set(float64(len(doc)))
	return doc, nil
}
