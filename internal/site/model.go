// internal/site/model.go
//
// `site` table row model.
//
// Context
// -------
// The `Record` struct mirrors the row that describes the one site this
// service publishes llms.txt for.  Name and URL head the document, while
// Tagline and AdminEmail back the default description and contact email.
//
// Schema reference
//
//	CREATE TABLE site (
//	    id          INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    name        VARCHAR(255) NOT NULL DEFAULT '',
//	    url         VARCHAR(512) NOT NULL DEFAULT '',
//	    tagline     VARCHAR(512) NOT NULL DEFAULT '',
//	    admin_email VARCHAR(255) NOT NULL DEFAULT '',
//	    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
// Notes
// -----
//   - Empty name or URL are passed through untouched; the generator does
//     not substitute anything.
//   - This struct contains no behaviour, pure data model for sqlx scans.
package site

import "time"

// Record mirrors one row in the `site` table.
type Record struct {
	ID         uint64    `db:"id"`
	Name       string    `db:"name"`
	URL        string    `db:"url"`
	Tagline    string    `db:"tagline"`
	AdminEmail string    `db:"admin_email"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Schema holds the idempotent DDL for the tables this package reads and
// writes.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS site (
	    id          INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
	    name        VARCHAR(255) NOT NULL DEFAULT '',
	    url         VARCHAR(512) NOT NULL DEFAULT '',
	    tagline     VARCHAR(512) NOT NULL DEFAULT '',
	    admin_email VARCHAR(255) NOT NULL DEFAULT '',
	    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	    updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS site_option (
	    site_id    INT UNSIGNED NOT NULL,
	    name       VARCHAR(191) NOT NULL,
	    value      MEDIUMTEXT   NOT NULL,
	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	    PRIMARY KEY (site_id, name)
	)`,
}
