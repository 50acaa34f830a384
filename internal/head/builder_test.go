package head

import (
	"strings"
	"testing"
)

func TestBuilder(t *testing.T) {
	b := New()
	if b.Title() != "" {
		t.Fatalf("empty builder title = %q", b.Title())
	}

	b.SetTitle("draft")
	b.SetTitle(`LLMs.txt <Settings>`)
	b.Robots("noindex, nofollow")
	b.Robots("index")
	b.Link("alternate", "https://acme.com/llms.txt?a=1&b=2", "text/plain")
	b.Link("alternate", "https://acme.com/llms.txt?a=1&b=2", "text/plain")
	b.Link("help", "", "")

	if got, want := string(b.Title()), "<title>LLMs.txt &lt;Settings&gt;</title>"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	if got, want := string(b.Metas()), `<meta name="robots" content="noindex, nofollow">`; got != want {
		t.Errorf("Metas = %q, want %q", got, want)
	}
	links := string(b.Links())
	if strings.Count(links, "<link") != 1 {
		t.Fatalf("Links not deduplicated: %q", links)
	}
	if !strings.Contains(links, `href="https://acme.com/llms.txt?a=1&amp;b=2" type="text/plain"`) {
		t.Errorf("Links = %q", links)
	}
}
