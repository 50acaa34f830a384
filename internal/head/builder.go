// internal/head/builder.go
//
// Builder collects the tags rendered inside an HTML page's <head>.  It is
// scoped to one render call: handlers push tags, the page template emits
// them through Title, Metas, and Links.
//
// Features
// --------
//   - SetTitle    – single <title> tag (last call wins).
//   - Meta, Link  – name/content and rel/href pairs, deduplicated.
//   - Robots      – shorthand for the robots meta tag.
//
// Attribute values are escaped here; the returned template.HTML is safe to
// emit as is.
package head

import (
	"html/template"
	"strings"
	"sync"
)

// Builder is safe for concurrent use, though one goroutine per page is the
// usual case.
type Builder struct {
	mu sync.Mutex

	title string
	metas []string
	links []string
	seen  map[string]struct{}
}

func New() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// SetTitle overrides the page <title>.
func (b *Builder) SetTitle(t string) {
	b.mu.Lock()
	b.title = t
	b.mu.Unlock()
}

// Title returns a fully formed <title> tag or "".
func (b *Builder) Title() template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.title == "" {
		return ""
	}
	return template.HTML("<title>" + template.HTMLEscapeString(b.title) + "</title>")
}

// Meta adds <meta name=… content=…>.  A second call with the same name is
// ignored.
func (b *Builder) Meta(name, content string) {
	tag := `<meta name="` + template.HTMLEscapeString(name) +
		`" content="` + template.HTMLEscapeString(content) + `">`
	b.add("meta:"+name, &b.metas, tag)
}

// Robots sets the robots directive.
func (b *Builder) Robots(directive string) { b.Meta("robots", directive) }

// Link adds <link rel=… href=…> with an optional MIME type.  Empty hrefs are
// skipped.
func (b *Builder) Link(rel, href, typ string) {
	if href == "" {
		return
	}
	var sb strings.Builder
	sb.WriteString(`<link rel="`)
	sb.WriteString(template.HTMLEscapeString(rel))
	sb.WriteString(`" href="`)
	sb.WriteString(template.HTMLEscapeString(href))
	sb.WriteString(`"`)
	if typ != "" {
		sb.WriteString(` type="`)
		sb.WriteString(template.HTMLEscapeString(typ))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	b.add("link:"+rel+" "+href, &b.links, sb.String())
}

func (b *Builder) add(key string, tgt *[]string, tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.seen[key]; dup {
		return
	}
	b.seen[key] = struct{}{}
	*tgt = append(*tgt, tag)
}

func (b *Builder) Metas() template.HTML { return b.concat(b.metas) }
func (b *Builder) Links() template.HTML { return b.concat(b.links) }

func (b *Builder) concat(sl []string) template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()
	return template.HTML(strings.Join(sl, "\n"))
}
