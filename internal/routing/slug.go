// internal/routing/slug.go
//
// Permalink helpers shared by the content repository and the sitemap.
//
//   - MakeSlug(title) derives a URL-safe slug for rows saved without one.
//   - BuildPath(parts...) joins path segments with single slashes.
//   - JoinURL(base, parts...) appends a built path to an absolute root URL.
//
// Slug rules
// ----------
//  1. Lower-case, then keep ASCII letters and digits.
//  2. Every other run of runes becomes one "-".
//  3. Leading and trailing "-" are dropped and the result is cut at
//     MaxSlugLen bytes.
//  4. An empty result becomes "item".
//
// Non-ASCII titles are not transliterated.
package routing

import "strings"

// MaxSlugLen bounds derived slugs.
const MaxSlugLen = 100

// MakeSlug converts title to lower-kebab ASCII.
func MakeSlug(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	slug := b.String()
	if len(slug) > MaxSlugLen {
		slug = strings.TrimRight(slug[:MaxSlugLen], "-")
	}
	if slug == "" {
		return "item"
	}
	return slug
}

// BuildPath joins parts with exactly one leading slash and no empty
// segments.  BuildPath() and BuildPath("", "") both return "/".
func BuildPath(parts ...string) string {
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(p, "/"); p != "" {
			segs = append(segs, p)
		}
	}
	return "/" + strings.Join(segs, "/")
}

// JoinURL appends BuildPath(parts...) to base with a single separator.
func JoinURL(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + BuildPath(parts...)
}
