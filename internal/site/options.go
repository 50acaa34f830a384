// internal/site/options.go
//
// Named option blobs in the `site_option` table.
//
// Context
// -------
// Components persist their settings as one structured blob under a single
// namespaced option name (for example "llms_txt_options").  Get reports
// whether the row exists so callers can fall back to defaults, and Set is a
// single upsert so a save is atomic from the reader's point of view.
//
// Notes
// -----
//   - Names are case-sensitive and unique per site.
//   - The helpers never log; callers wrap errors with context.
//   - Concurrent saves are last-writer-wins.
package site

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Options reads and writes option blobs for one site.
type Options struct {
	db     *sqlx.DB
	siteID uint64
}

// NewOptions binds an option store to db and siteID.
func NewOptions(db *sqlx.DB, siteID uint64) *Options {
	return &Options{db: db, siteID: siteID}
}

// Get returns the stored blob for name.  found is false when no row exists.
func (o *Options) Get(ctx context.Context, name string) (blob []byte, found bool, err error) {
	const q = `SELECT value FROM site_option WHERE site_id = ? AND name = ? LIMIT 1`

	var value string
	err = o.db.QueryRowxContext(ctx, q, o.siteID, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Set stores blob under name, replacing any previous value.
func (o *Options) Set(ctx context.Context, name string, blob []byte) error {
	const q = `INSERT INTO site_option (site_id, name, value)
               VALUES (?, ?, ?)
               ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = CURRENT_TIMESTAMP`

	_, err := o.db.ExecContext(ctx, q, o.siteID, name, string(blob))
	return err
}
