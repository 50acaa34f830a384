package llmstxt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yanizio/adept-llmstxt/internal/content"
	"github.com/yanizio/adept-llmstxt/internal/settings"
)

type fakeConfig struct {
	cfg settings.Configuration
	err error
}

func (f fakeConfig) Read(context.Context) (settings.Configuration, error) { return f.cfg, f.err }

type fakeContent struct {
	pages, posts         []content.Item
	pageLimit, postLimit int
	pageCalls, postCalls int
	err                  error
}

func (f *fakeContent) ListPublishedPages(_ context.Context, limit int) ([]content.Item, error) {
	f.pageCalls++
	f.pageLimit = limit
	return f.pages, f.err
}

func (f *fakeContent) ListPublishedPosts(_ context.Context, limit int) ([]content.Item, error) {
	f.postCalls++
	f.postLimit = limit
	return f.posts, f.err
}

func acmeSite(context.Context) (Site, error) { return acme, nil }

func TestDocument_PassesCapsAndSkipsDisabled(t *testing.T) {
	cfg := settings.Configuration{IncludePages: true, MaxPages: 3, MaxPosts: 7}
	cl := &fakeContent{pages: []content.Item{{Permalink: "https://acme.com/about", Title: "About"}}}

	doc, err := NewService(fakeConfig{cfg: cfg}, SiteFunc(acmeSite), cl, nil).Document(context.Background())
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if cl.pageLimit != 3 {
		t.Errorf("page limit = %d, want 3", cl.pageLimit)
	}
	if cl.postCalls != 0 {
		t.Errorf("posts listed %d times while disabled", cl.postCalls)
	}
	if !strings.Contains(doc, "- https://acme.com/about # About") {
		t.Errorf("page missing:\n%s", doc)
	}
}

func TestDocument_Errors(t *testing.T) {
	boom := errors.New("boom")
	ok := settings.Configuration{IncludePages: true, IncludePosts: true}

	cases := map[string]*Service{
		"settings": NewService(fakeConfig{err: boom}, SiteFunc(acmeSite), &fakeContent{}, nil),
		"site": NewService(fakeConfig{cfg: ok}, SiteFunc(func(context.Context) (Site, error) {
			return Site{}, boom
		}), &fakeContent{}, nil),
		"content": NewService(fakeConfig{cfg: ok}, SiteFunc(acmeSite), &fakeContent{err: boom}, nil),
	}
	for name, svc := range cases {
		if _, err := svc.Document(context.Background()); !errors.Is(err, boom) {
			t.Errorf("%s: err = %v, want boom", name, err)
		}
	}
}
