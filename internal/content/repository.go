// internal/content/repository.go
//
// Content repository backed by the `content` table.
//
// Workflow
// --------
//  1. Callers pass the configured cap (max_pages or max_posts).  The cap is
//     clamped to MinLimit..MaxLimit because stored counts are coerced, not
//     range-checked.
//  2. Pages sort by menu_order then title; posts by published_at newest
//     first, ties broken by id.
//  3. Each row becomes an Item whose permalink is the site base URL joined
//     with parent_path and slug.  Rows without a slug derive one from the
//     title.
//
// Notes
// -----
//   - Only rows with status 'publish' are listed.
//   - Base URL comes from a callback so a site rename is picked up on the
//     next request.
package content

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yanizio/adept-llmstxt/internal/routing"
)

// BaseURLFunc returns the site root URL used to build permalinks.
type BaseURLFunc func(ctx context.Context) (string, error)

// Repository lists published pages and posts.
type Repository struct {
	db      *sqlx.DB
	baseURL BaseURLFunc
}

// NewRepository binds a repository to db.
func NewRepository(db *sqlx.DB, baseURL BaseURLFunc) *Repository {
	return &Repository{db: db, baseURL: baseURL}
}

// ListPublishedPages returns up to limit pages in manual order.
func (r *Repository) ListPublishedPages(ctx context.Context, limit int) ([]Item, error) {
	const q = `
        SELECT id, kind, title, slug, parent_path, menu_order, published_at
        FROM   content
        WHERE  kind = ? AND status = ?
        ORDER  BY menu_order ASC, title ASC
        LIMIT  ?`
	return r.list(ctx, q, KindPage, limit)
}

// ListPublishedPosts returns up to limit posts, newest first.
func (r *Repository) ListPublishedPosts(ctx context.Context, limit int) ([]Item, error) {
	const q = `
        SELECT id, kind, title, slug, parent_path, menu_order, published_at
        FROM   content
        WHERE  kind = ? AND status = ?
        ORDER  BY published_at DESC, id DESC
        LIMIT  ?`
	return r.list(ctx, q, KindPost, limit)
}

func (r *Repository) list(ctx context.Context, q, kind string, limit int) ([]Item, error) {
	base, err := r.baseURL(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, ClampLimit(limit))
	if err := r.db.SelectContext(ctx, &rows, q, kind, StatusPublished, ClampLimit(limit)); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			Permalink: Permalink(base, row),
			Title:     row.Title,
		})
	}
	return items, nil
}

// ClampLimit bounds n to MinLimit..MaxLimit.
func ClampLimit(n int) int {
	switch {
	case n < MinLimit:
		return MinLimit
	case n > MaxLimit:
		return MaxLimit
	default:
		return n
	}
}

// Permalink joins base with the row's parent path and slug.
func Permalink(base string, row Row) string {
	slug := row.Slug
	if slug == "" {
		slug = routing.MakeSlug(row.Title)
	}
	return routing.JoinURL(base, row.ParentPath, slug)
}
