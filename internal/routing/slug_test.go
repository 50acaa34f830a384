// internal/routing/slug_test.go
package routing

import (
	"strings"
	"testing"
)

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"About Us":             "about-us",
		"  Contact Us!  ":      "contact-us",
		"Fish & Chips -- 2024": "fish-chips-2024",
		"Café":                 "caf",
		"!!!":                  "item",
		"":                     "item",
	}
	for in, want := range cases {
		if got := MakeSlug(in); got != want {
			t.Errorf("MakeSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeSlug_Truncates(t *testing.T) {
	long := strings.Repeat("ab ", 60)
	got := MakeSlug(long)
	if len(got) > MaxSlugLen {
		t.Fatalf("len = %d, want <= %d", len(got), MaxSlugLen)
	}
	if strings.HasSuffix(got, "-") {
		t.Fatalf("slug %q ends with a dash", got)
	}
}

func TestBuildPath(t *testing.T) {
	cases := []struct {
		parts []string
		want  string
	}{
		{nil, "/"},
		{[]string{"", ""}, "/"},
		{[]string{"", "about"}, "/about"},
		{[]string{"/about/", "/team"}, "/about/team"},
		{[]string{"blog", ""}, "/blog"},
	}
	for _, c := range cases {
		if got := BuildPath(c.parts...); got != c.want {
			t.Errorf("BuildPath(%q) = %q, want %q", c.parts, got, c.want)
		}
	}
}

func TestJoinURL(t *testing.T) {
	if got := JoinURL("https://acme.com/", "llms.txt"); got != "https://acme.com/llms.txt" {
		t.Errorf("JoinURL = %q", got)
	}
	if got := JoinURL("https://acme.com", "about", "team"); got != "https://acme.com/about/team" {
		t.Errorf("JoinURL = %q", got)
	}
}
