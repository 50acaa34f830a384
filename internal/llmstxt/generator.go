// Package llmstxt assembles the llms.txt discovery document.
//
// Layout
// ------
//
//	# {site name}
//	> {description}                      (when non-empty)
//	## Contact                           (when email or URL is set)
//	## Site
//	## Sitemap
//	## Important Pages                   (when enabled and non-empty)
//	## Recent Posts                      (when enabled and non-empty)
//
// Every section ends with one blank line, the last one included.  Generate
// performs no I/O; callers read settings and content first and pass them in.
// The optional Filter runs once on the finished document.
package llmstxt

import (
	"strings"

	"github.com/yanizio/adept-llmstxt/internal/content"
	"github.com/yanizio/adept-llmstxt/internal/settings"
)

// DefaultSitemapPath is the sitemap index filename relative to the site root.
const DefaultSitemapPath = "wp-sitemap.xml"

// Site carries the metadata heading the document.
type Site struct {
	Name string
	URL  string
}

// Filter rewrites the assembled document.
type Filter func(doc string) string

// Generator renders llms.txt documents.  The zero value is not usable;
// construct with New.
type Generator struct {
	sitemapPath string
	filter      Filter
}

// Option configures a Generator.
type Option func(*Generator)

// WithSitemapPath overrides DefaultSitemapPath.  An empty path is ignored.
func WithSitemapPath(p string) Option {
	return func(g *Generator) {
		if p = strings.TrimLeft(p, "/"); p != "" {
			g.sitemapPath = p
		}
	}
}

// WithFilter installs the post-processing hook.
func WithFilter(f Filter) Option {
	return func(g *Generator) { g.filter = f }
}

// New returns a Generator with opts applied.
func New(opts ...Option) *Generator {
	g := &Generator{sitemapPath: DefaultSitemapPath}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate builds the document for cfg and site from the already capped and
// ordered page and post lists.
func (g *Generator) Generate(cfg settings.Configuration, site Site, pages, posts []content.Item) string {
	var b strings.Builder
	root := SiteRoot(site.URL)

	section(&b, "# "+site.Name)

	if cfg.SiteDescription != "" {
		section(&b, "> "+cfg.SiteDescription)
	}

	if cfg.ContactEmail != "" || cfg.ContactURL != "" {
		lines := []string{"## Contact", ""}
		if cfg.ContactEmail != "" {
			lines = append(lines, "- Email: "+cfg.ContactEmail)
		}
		if cfg.ContactURL != "" {
			lines = append(lines, "- Contact Form: "+cfg.ContactURL)
		}
		section(&b, lines...)
	}

	section(&b, "## Site", "", "- "+root)
	section(&b, "## Sitemap", "", "- "+root+g.sitemapPath)

	if cfg.IncludePages && len(pages) > 0 {
		section(&b, list("## Important Pages", pages)...)
	}
	if cfg.IncludePosts && len(posts) > 0 {
		section(&b, list("## Recent Posts", posts)...)
	}

	doc := b.String()
	if g.filter != nil {
		doc = g.filter(doc)
	}
	return doc
}

// SiteRoot returns url with exactly one trailing slash.  An empty url stays
// empty apart from the slash.
func SiteRoot(url string) string {
	return strings.TrimRight(url, "/") + "/"
}

func section(b *strings.Builder, lines ...string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func list(heading string, items []content.Item) []string {
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, heading, "")
	for _, it := range items {
		lines = append(lines, "- "+it.Permalink+" # "+it.Title)
	}
	return lines
}
