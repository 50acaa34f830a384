// internal/config/model.go
//
// Typed configuration model for the llms.txt service.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                         – dotenv values,
//   • `conf/global.yaml`                      – primary static file,
//   • `ADEPT_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client *before* unmarshalling, so the model never
// stores Vault URIs, only plain strings.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.  Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import (
	"fmt"
	"strings"
	"time"
)

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr   string        `koanf:"listen_addr"   validate:"required,hostname_port"`
	ForceHTTPS   bool          `koanf:"force_https"`
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"gte=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"  validate:"gte=0"`
}

//
// Database section
//

// Database holds the DSN template and its secret.
//
// The *template* (`GlobalDSN`) is kept in YAML so operators can tweak
// host, port, or flags without touching Vault.  When it contains a `%s`
// verb the *secret* (`GlobalPassword`, usually a `vault:` reference) is
// substituted at runtime, keeping credentials out of flat files.
type Database struct {
	GlobalDSN      string `koanf:"global_dsn"      validate:"required"`
	GlobalPassword string `koanf:"global_password"`
}

// DSN returns the connection string with the password filled in.
func (d Database) DSN() string {
	if strings.Contains(d.GlobalDSN, "%s") {
		return fmt.Sprintf(d.GlobalDSN, d.GlobalPassword)
	}
	return d.GlobalDSN
}

//
// Site section
//

// Site identifies the `site` row whose metadata feeds llms.txt.
type Site struct {
	ID uint64 `koanf:"id" validate:"required"`
}

//
// LLMSTxt section
//

// LLMSTxt configures the endpoint, the sitemap filename referenced by the
// document, the option key used for persistence, and the admin page path.
type LLMSTxt struct {
	Endpoint    string `koanf:"endpoint"     validate:"required,excludes=/"`
	SitemapPath string `koanf:"sitemap_path" validate:"required"`
	OptionName  string `koanf:"option_name"  validate:"required"`
	AdminPath   string `koanf:"admin_path"   validate:"required,startswith=/"`
}

//
// Log section
//

// Log selects the minimum zap level ("debug", "info", "warn", "error").
type Log struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.  The loader
// discovers `Root` (repo root or ADEPT_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // ADEPT_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Site     Site     `koanf:"site"`
	LLMSTxt  LLMSTxt  `koanf:"llmstxt"`
	Log      Log      `koanf:"log"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}

// defaults seeds values that YAML may omit.  Loaded before the file layer
// so every later layer overrides them.
func defaults() map[string]any {
	return map[string]any{
		"http.listen_addr":     ":8080",
		"http.read_timeout":    "10s",
		"http.write_timeout":   "15s",
		"http.idle_timeout":    "60s",
		"site.id":              1,
		"llmstxt.endpoint":     "llms.txt",
		"llmstxt.sitemap_path": "wp-sitemap.xml",
		"llmstxt.option_name":  "llms_txt_options",
		"llmstxt.admin_path":   "/admin/llms-txt",
		"log.level":            "info",
	}
}
