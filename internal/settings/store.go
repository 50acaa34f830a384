// internal/settings/store.go
//
// Configuration Store: read with defaults, update with merge.
//
// Workflow
// --------
//  1. Read loads the blob stored under the option name, decodes it into the
//     sparse record, and resolves every absent field against Defaults.  An
//     unreadable blob is logged and treated as empty so generation always
//     has a complete Configuration.
//  2. Update loads the same sparse record, applies the normalised Input
//     fields, and writes the blob back in one upsert.  Text fields absent
//     from Input keep their stored value.  Flags absent from Input become
//     false and counts absent from Input become DefaultMaxItems, because
//     the settings form always posts all of them.
//
// Notes
// -----
//   - Persistence errors are returned untouched apart from wrapping; the
//     store never hides a failing collaborator.
//   - Single writer, last-writer-wins.  No locking.
package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Persistence is the key/value collaborator.  *site.Options satisfies it.
type Persistence interface {
	Get(ctx context.Context, name string) ([]byte, bool, error)
	Set(ctx context.Context, name string, blob []byte) error
}

// Store reads and updates the llms.txt Configuration.
type Store struct {
	p        Persistence
	name     string
	defaults DefaultsFunc
}

// NewStore returns a Store persisting under name.  An empty name selects
// OptionName; a nil defaults func yields empty metadata defaults.
func NewStore(p Persistence, name string, defaults DefaultsFunc) *Store {
	if name == "" {
		name = OptionName
	}
	if defaults == nil {
		defaults = StaticDefaults(Defaults{})
	}
	return &Store{p: p, name: name, defaults: defaults}
}

// Read returns the current Configuration with every unset field defaulted.
func (s *Store) Read(ctx context.Context) (Configuration, error) {
	rec, err := s.load(ctx)
	if err != nil {
		return Configuration{}, err
	}
	return s.resolve(ctx, rec)
}

// Update normalises in, merges it into the stored record, persists it, and
// returns the resulting Configuration.
func (s *Store) Update(ctx context.Context, in Input) (Configuration, error) {
	rec, err := s.load(ctx)
	if err != nil {
		return Configuration{}, err
	}

	apply(&rec, in)

	blob, err := json.Marshal(rec)
	if err != nil {
		return Configuration{}, fmt.Errorf("encode %s: %w", s.name, err)
	}
	if err := s.p.Set(ctx, s.name, blob); err != nil {
		return Configuration{}, fmt.Errorf("save %s: %w", s.name, err)
	}
	zap.L().Debug("settings saved", zap.String("option", s.name), zap.Int("bytes", len(blob)))

	return s.resolve(ctx, rec)
}

func (s *Store) load(ctx context.Context) (record, error) {
	var rec record
	blob, found, err := s.p.Get(ctx, s.name)
	if err != nil {
		return rec, fmt.Errorf("load %s: %w", s.name, err)
	}
	if !found || len(blob) == 0 {
		return rec, nil
	}
	if err := json.Unmarshal(blob, &rec); err != nil {
		zap.L().Warn("stored settings unreadable, using defaults",
			zap.String("option", s.name), zap.Error(err))
		return record{}, nil
	}
	return rec, nil
}

func (s *Store) resolve(ctx context.Context, rec record) (Configuration, error) {
	var d Defaults
	if rec.needsSiteDefaults() {
		var err error
		if d, err = s.defaults(ctx); err != nil {
			return Configuration{}, fmt.Errorf("site defaults: %w", err)
		}
	}
	return rec.resolve(d), nil
}

// apply merges normalised input into rec.
func apply(rec *record, in Input) {
	if raw, ok := in[FieldSiteDescription]; ok {
		v := SanitizeDescription(asString(raw))
		rec.SiteDescription = &v
	}
	if raw, ok := in[FieldContactEmail]; ok {
		v := SanitizeEmail(asString(raw))
		rec.ContactEmail = &v
	}
	if raw, ok := in[FieldContactURL]; ok {
		v := SanitizeURL(asString(raw))
		rec.ContactURL = &v
	}

	pages := Truthy(in[FieldIncludePages])
	posts := Truthy(in[FieldIncludePosts])
	rec.IncludePages = &pages
	rec.IncludePosts = &posts

	maxPages := countOr(in, FieldMaxPages)
	maxPosts := countOr(in, FieldMaxPosts)
	rec.MaxPages = &maxPages
	rec.MaxPosts = &maxPosts
}

func countOr(in Input, field string) int {
	raw, ok := in[field]
	if !ok || raw == nil {
		return DefaultMaxItems
	}
	return AbsInt(raw)
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		if len(t) == 0 {
			return ""
		}
		return t[0]
	default:
		return fmt.Sprint(t)
	}
}
