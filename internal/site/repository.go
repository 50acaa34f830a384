package site

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository reads site metadata for one configured site id.
type Repository struct {
	db     *sqlx.DB
	siteID uint64
}

// NewRepository binds a repository to db and siteID.
func NewRepository(db *sqlx.DB, siteID uint64) *Repository {
	return &Repository{db: db, siteID: siteID}
}

// Record fetches the site row.  The caller supplies a context so the
// lookup respects request deadlines.
func (r *Repository) Record(ctx context.Context) (*Record, error) {
	const q = `
        SELECT id, name, url, tagline, admin_email, created_at, updated_at
        FROM   site
        WHERE  id = ?
        LIMIT  1`
	var rec Record
	if err := r.db.GetContext(ctx, &rec, q, r.siteID); err != nil {
		return nil, fmt.Errorf("site %d: %w", r.siteID, err)
	}
	return &rec, nil
}
