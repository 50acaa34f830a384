// internal/config/loader_test.go
//
// Unit-tests for the layered loader.
//
// Each test builds a throwaway root with conf/global.yaml, points
// ADEPT_ROOT at it, and asserts the merged result.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "conf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "conf", "global.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("ADEPT_ROOT", root)
	return root
}

type fakeVault map[string]string

func (f fakeVault) GetKV(_ context.Context, path, key string, _ time.Duration) (string, error) {
	return f[path+"#"+key], nil
}

func TestLoad_DefaultsAndYAML(t *testing.T) {
	root := writeYAML(t, `
database:
  global_dsn: "adept:pw@tcp(127.0.0.1:3306)/adept?parseTime=true"
llmstxt:
  admin_path: /settings/llms
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLMSTxt.Endpoint != "llms.txt" {
		t.Errorf("endpoint = %q, want llms.txt", cfg.LLMSTxt.Endpoint)
	}
	if cfg.LLMSTxt.AdminPath != "/settings/llms" {
		t.Errorf("admin_path = %q", cfg.LLMSTxt.AdminPath)
	}
	if cfg.HTTP.WriteTimeout != 15*time.Second {
		t.Errorf("write_timeout = %v", cfg.HTTP.WriteTimeout)
	}
	if cfg.Site.ID != 1 {
		t.Errorf("site.id = %d, want 1", cfg.Site.ID)
	}
	if cfg.Paths.Root != root {
		t.Errorf("root = %q, want %q", cfg.Paths.Root, root)
	}
	if Get() != cfg {
		t.Errorf("Get() did not return the cached config")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	writeYAML(t, `
database:
  global_dsn: "dsn"
`)
	t.Setenv("ADEPT_LLMSTXT__ENDPOINT", "ai.txt")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLMSTxt.Endpoint != "ai.txt" {
		t.Fatalf("endpoint = %q, want ai.txt", cfg.LLMSTxt.Endpoint)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	writeYAML(t, `
database:
  global_dsn: "dsn"
llmstxt:
  endpoint: "nested/llms.txt"
`)
	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for endpoint containing a slash")
	}
}

func TestLoad_VaultReference(t *testing.T) {
	writeYAML(t, `
database:
  global_dsn: "adept:%s@tcp(127.0.0.1:3306)/adept"
  global_password: "vault:kv/adept/db#password"
`)
	orig := newSecretGetter
	newSecretGetter = func(context.Context) (secretGetter, error) {
		return fakeVault{"kv/adept/db#password": "s3cret"}, nil
	}
	t.Cleanup(func() { newSecretGetter = orig })

	cfg, err := LoadContext(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Database.DSN(); got != "adept:s3cret@tcp(127.0.0.1:3306)/adept" {
		t.Fatalf("DSN = %q", got)
	}
}

func TestParseVaultRef(t *testing.T) {
	cases := []struct {
		in        string
		path, key string
		ok        bool
	}{
		{"vault:kv/adept/db#password", "kv/adept/db", "password", true},
		{"vault:kv/adept/db", "", "", false},
		{"vault:#password", "", "", false},
		{"vault:kv/db#", "", "", false},
	}
	for _, c := range cases {
		p, k, err := parseVaultRef(c.in)
		if (err == nil) != c.ok {
			t.Errorf("%q: err = %v, want ok=%v", c.in, err, c.ok)
			continue
		}
		if p != c.path || k != c.key {
			t.Errorf("%q: got (%q, %q)", c.in, p, k)
		}
	}
}
