package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yanizio/adept-llmstxt/internal/settings"
)

type docFunc func(context.Context) (string, error)

func (f docFunc) Document(ctx context.Context) (string, error) { return f(ctx) }

type memStore struct {
	cfg settings.Configuration
	in  settings.Input
}

func (m *memStore) Read(context.Context) (settings.Configuration, error) { return m.cfg, nil }

func (m *memStore) Update(_ context.Context, in settings.Input) (settings.Configuration, error) {
	m.in = in
	return m.cfg, nil
}

func TestRunGenerate(t *testing.T) {
	var buf bytes.Buffer
	err := runGenerate(context.Background(), &buf, docFunc(func(context.Context) (string, error) {
		return "# Acme\n\n", nil
	}))
	if err != nil {
		t.Fatalf("runGenerate: %v", err)
	}
	if buf.String() != "# Acme\n\n" {
		t.Errorf("output = %q", buf.String())
	}

	boom := errors.New("db down")
	if err := runGenerate(context.Background(), &buf, docFunc(func(context.Context) (string, error) {
		return "", boom
	})); !errors.Is(err, boom) {
		t.Errorf("err = %v, want db down", err)
	}
}

func TestRunSet_OverlaysChangedFlags(t *testing.T) {
	store := &memStore{cfg: settings.Configuration{
		SiteDescription: "Old",
		ContactEmail:    "hi@acme.com",
		IncludePages:    true,
		IncludePosts:    true,
		MaxPages:        4,
		MaxPosts:        6,
	}}

	cmd := newSettingsSetCmd()
	if err := cmd.Flags().Parse([]string{"--include_posts=false", "--max_pages=20"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := runSet(context.Background(), store, changedFlags(cmd)); err != nil {
		t.Fatalf("runSet: %v", err)
	}

	in := store.in
	if in[settings.FieldSiteDescription] != "Old" || in[settings.FieldContactEmail] != "hi@acme.com" {
		t.Errorf("text fields not carried over: %#v", in)
	}
	if in[settings.FieldIncludePages] != true || settings.Truthy(in[settings.FieldIncludePosts]) {
		t.Errorf("flags wrong: %#v", in)
	}
	if settings.AbsInt(in[settings.FieldMaxPages]) != 20 || settings.AbsInt(in[settings.FieldMaxPosts]) != 6 {
		t.Errorf("counts wrong: %#v", in)
	}
}

func TestPrintSettings(t *testing.T) {
	cfg := settings.Configuration{ContactEmail: "hi@acme.com", MaxPages: 10}

	var y bytes.Buffer
	if err := printSettings(&y, cfg, "yaml"); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(y.String(), "contact_email: hi@acme.com") || !strings.Contains(y.String(), "max_pages: 10") {
		t.Errorf("yaml output:\n%s", y.String())
	}

	var j bytes.Buffer
	if err := printSettings(&j, cfg, "json"); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(j.String(), `"contact_email": "hi@acme.com"`) {
		t.Errorf("json output:\n%s", j.String())
	}

	if err := printSettings(&j, cfg, "toml"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{{"generate"}, {"migrate"}, {"settings", "show"}, {"settings", "set"}} {
		if c, _, err := root.Find(path); err != nil || c.Name() != path[len(path)-1] {
			t.Errorf("command %v not found: %v", path, err)
		}
	}
}
