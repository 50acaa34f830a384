// internal/settings/model.go
//
// llms.txt configuration record.
//
// Context
// -------
// Configuration is the fully populated view callers work with.  The store
// persists a sparse copy (`record`) whose pointer fields tell "never saved"
// apart from "saved as empty", so defaults apply field by field and never
// record-wide.
//
// Two defaults are not constants: the description falls back to the site
// tagline and the contact email to the site admin email.  Both come from a
// DefaultsFunc supplied by the caller.
package settings

import "context"

// DefaultMaxItems is the page and post cap used when nothing is stored and
// when an update omits the field.
const DefaultMaxItems = 10

// OptionName is the default persistence key holding the whole record.
const OptionName = "llms_txt_options"

// Field names shared by the store, the admin form, and the CLI.
const (
	FieldSiteDescription = "site_description"
	FieldContactEmail    = "contact_email"
	FieldContactURL      = "contact_url"
	FieldIncludePages    = "include_pages"
	FieldIncludePosts    = "include_posts"
	FieldMaxPages        = "max_pages"
	FieldMaxPosts        = "max_posts"
)

// Configuration controls which sections llms.txt contains.
type Configuration struct {
	SiteDescription string `json:"site_description" yaml:"site_description"`
	ContactEmail    string `json:"contact_email"    yaml:"contact_email"`
	ContactURL      string `json:"contact_url"      yaml:"contact_url"`
	IncludePages    bool   `json:"include_pages"    yaml:"include_pages"`
	IncludePosts    bool   `json:"include_posts"    yaml:"include_posts"`
	MaxPages        int    `json:"max_pages"        yaml:"max_pages"`
	MaxPosts        int    `json:"max_posts"        yaml:"max_posts"`
}

// Defaults carries the metadata-derived fallbacks.
type Defaults struct {
	SiteDescription string
	ContactEmail    string
}

// DefaultsFunc loads Defaults from site metadata.
type DefaultsFunc func(ctx context.Context) (Defaults, error)

// StaticDefaults returns a DefaultsFunc that always yields d.
func StaticDefaults(d Defaults) DefaultsFunc {
	return func(context.Context) (Defaults, error) { return d, nil }
}

// Input is the raw update mapping posted by the admin form or CLI.  Values
// are strings or bools; anything else is coerced the same way a form value
// would be.
type Input map[string]any

// record is the persisted, sparse form of Configuration.
type record struct {
	SiteDescription *string `json:"site_description,omitempty"`
	ContactEmail    *string `json:"contact_email,omitempty"`
	ContactURL      *string `json:"contact_url,omitempty"`
	IncludePages    *bool   `json:"include_pages,omitempty"`
	IncludePosts    *bool   `json:"include_posts,omitempty"`
	MaxPages        *int    `json:"max_pages,omitempty"`
	MaxPosts        *int    `json:"max_posts,omitempty"`
}

// needsSiteDefaults reports whether resolving r touches metadata defaults.
func (r record) needsSiteDefaults() bool {
	return r.SiteDescription == nil || r.ContactEmail == nil
}

// resolve fills every nil field from d and the static defaults.
func (r record) resolve(d Defaults) Configuration {
	return Configuration{
		SiteDescription: strOr(r.SiteDescription, d.SiteDescription),
		ContactEmail:    strOr(r.ContactEmail, d.ContactEmail),
		ContactURL:      strOr(r.ContactURL, ""),
		IncludePages:    boolOr(r.IncludePages, true),
		IncludePosts:    boolOr(r.IncludePosts, true),
		MaxPages:        intOr(r.MaxPages, DefaultMaxItems),
		MaxPosts:        intOr(r.MaxPosts, DefaultMaxItems),
	}
}

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
