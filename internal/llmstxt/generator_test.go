package llmstxt

import (
	"strings"
	"testing"

	"github.com/yanizio/adept-llmstxt/internal/content"
	"github.com/yanizio/adept-llmstxt/internal/settings"
)

var acme = Site{Name: "Acme", URL: "https://acme.com"}

func TestGenerate_EndToEnd(t *testing.T) {
	cfg := settings.Configuration{
		SiteDescription: "We sell widgets",
		ContactEmail:    "hi@acme.com",
		IncludePages:    true,
		IncludePosts:    false,
		MaxPages:        10,
		MaxPosts:        10,
	}
	pages := []content.Item{{Permalink: "https://acme.com/about", Title: "About"}}
	posts := []content.Item{{Permalink: "https://acme.com/blog/launch", Title: "Launch"}}

	got := New().Generate(cfg, acme, pages, posts)
	want := "# Acme\n\n" +
		"> We sell widgets\n\n" +
		"## Contact\n\n- Email: hi@acme.com\n\n" +
		"## Site\n\n- https://acme.com/\n\n" +
		"## Sitemap\n\n- https://acme.com/wp-sitemap.xml\n\n" +
		"## Important Pages\n\n- https://acme.com/about # About\n\n"
	if got != want {
		t.Fatalf("document mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestGenerate_MinimalDocument(t *testing.T) {
	got := New().Generate(settings.Configuration{}, Site{Name: "Acme", URL: "https://acme.com/"}, nil, nil)
	want := "# Acme\n\n## Site\n\n- https://acme.com/\n\n## Sitemap\n\n- https://acme.com/wp-sitemap.xml\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerate_ContactOrder(t *testing.T) {
	cfg := settings.Configuration{ContactEmail: "hi@acme.com", ContactURL: "https://acme.com/contact"}
	got := New().Generate(cfg, acme, nil, nil)
	email := strings.Index(got, "- Email: hi@acme.com")
	form := strings.Index(got, "- Contact Form: https://acme.com/contact")
	if email < 0 || form < 0 || email > form {
		t.Fatalf("contact lines missing or out of order:\n%s", got)
	}

	urlOnly := New().Generate(settings.Configuration{ContactURL: "https://acme.com/contact"}, acme, nil, nil)
	if !strings.Contains(urlOnly, "## Contact\n\n- Contact Form: https://acme.com/contact\n\n") {
		t.Fatalf("url-only contact section wrong:\n%s", urlOnly)
	}
}

func TestGenerate_SectionOmission(t *testing.T) {
	pages := []content.Item{{Permalink: "/a", Title: "A"}}
	posts := []content.Item{{Permalink: "/p", Title: "P"}}

	off := New().Generate(settings.Configuration{IncludePages: false, IncludePosts: false}, acme, pages, posts)
	if strings.Contains(off, "Important Pages") || strings.Contains(off, "Recent Posts") {
		t.Errorf("disabled sections rendered:\n%s", off)
	}

	empty := New().Generate(settings.Configuration{IncludePages: true, IncludePosts: true}, acme, nil, []content.Item{})
	if strings.Contains(empty, "Important Pages") || strings.Contains(empty, "Recent Posts") {
		t.Errorf("empty sections rendered:\n%s", empty)
	}

	noDesc := New().Generate(settings.Configuration{}, acme, nil, nil)
	if strings.Contains(noDesc, ">") || strings.Contains(noDesc, "## Contact") {
		t.Errorf("empty description or contact rendered:\n%s", noDesc)
	}
}

func TestGenerate_OrderPreserved(t *testing.T) {
	cfg := settings.Configuration{IncludePages: true, IncludePosts: true}
	pages := []content.Item{{Permalink: "/a", Title: "A"}, {Permalink: "/b", Title: "B"}}
	posts := []content.Item{{Permalink: "/z", Title: "Z"}, {Permalink: "/y", Title: "Y"}}

	got := New().Generate(cfg, acme, pages, posts)
	a, b := strings.Index(got, "- /a # A"), strings.Index(got, "- /b # B")
	z, y := strings.Index(got, "- /z # Z"), strings.Index(got, "- /y # Y")
	if a < 0 || b < a {
		t.Errorf("pages out of order:\n%s", got)
	}
	if z < 0 || y < z {
		t.Errorf("posts out of order:\n%s", got)
	}
	if strings.Index(got, "## Important Pages") > strings.Index(got, "## Recent Posts") {
		t.Errorf("pages section after posts section:\n%s", got)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := settings.Configuration{SiteDescription: "d", ContactEmail: "e@x.io", IncludePages: true}
	pages := []content.Item{{Permalink: "/a", Title: "A"}}
	g := New()
	first := g.Generate(cfg, acme, pages, nil)
	for i := 0; i < 3; i++ {
		if got := g.Generate(cfg, acme, pages, nil); got != first {
			t.Fatalf("run %d differs:\n%q\n%q", i, got, first)
		}
	}
}

func TestGenerate_FilterRunsOnceOnFinalDocument(t *testing.T) {
	calls := 0
	var seen string
	g := New(WithFilter(func(doc string) string {
		calls++
		seen = doc
		return doc + "## Extra\n\n"
	}))

	got := g.Generate(settings.Configuration{}, acme, nil, nil)
	if calls != 1 {
		t.Fatalf("filter called %d times, want 1", calls)
	}
	if !strings.HasSuffix(seen, "## Sitemap\n\n- https://acme.com/wp-sitemap.xml\n\n") {
		t.Errorf("filter saw partial document: %q", seen)
	}
	if !strings.HasSuffix(got, "## Extra\n\n") {
		t.Errorf("filter result not returned: %q", got)
	}
}

func TestGenerate_PassesThroughEmptySite(t *testing.T) {
	got := New(WithSitemapPath("/sitemap.xml")).Generate(settings.Configuration{}, Site{}, nil, nil)
	want := "# \n\n## Site\n\n- /\n\n## Sitemap\n\n- /sitemap.xml\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
