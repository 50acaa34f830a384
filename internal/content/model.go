// internal/content/model.go
//
// Published content references.
//
// Context
// -------
// llms.txt lists pages and posts as `- {permalink} # {title}`.  Item is the
// only shape the generator sees; Row mirrors the `content` table so the
// repository can build permalinks from slugs.
//
// Schema reference
//
//	CREATE TABLE content (
//	    id           BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    kind         VARCHAR(16)  NOT NULL,            -- page | post
//	    status       VARCHAR(16)  NOT NULL DEFAULT 'draft',
//	    title        VARCHAR(255) NOT NULL DEFAULT '',
//	    slug         VARCHAR(200) NOT NULL DEFAULT '',
//	    parent_path  VARCHAR(512) NOT NULL DEFAULT '',
//	    menu_order   INT          NOT NULL DEFAULT 0,
//	    published_at TIMESTAMP NULL
//	);
package content

import "time"

// Kinds and statuses stored in the `content` table.
const (
	KindPage        = "page"
	KindPost        = "post"
	StatusPublished = "publish"
)

// Limits applied to every listing.
const (
	MinLimit = 1
	MaxLimit = 100
)

// Item is a published-content reference.
type Item struct {
	Permalink string
	Title     string
}

// Row mirrors one row of the `content` table.
type Row struct {
	ID          uint64     `db:"id"`
	Kind        string     `db:"kind"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	ParentPath  string     `db:"parent_path"`
	MenuOrder   int        `db:"menu_order"`
	PublishedAt *time.Time `db:"published_at"`
}

// Schema holds the idempotent DDL for the content table.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS content (
	    id           BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
	    kind         VARCHAR(16)  NOT NULL,
	    status       VARCHAR(16)  NOT NULL DEFAULT 'draft',
	    title        VARCHAR(255) NOT NULL DEFAULT '',
	    slug         VARCHAR(200) NOT NULL DEFAULT '',
	    parent_path  VARCHAR(512) NOT NULL DEFAULT '',
	    menu_order   INT          NOT NULL DEFAULT 0,
	    published_at TIMESTAMP NULL,
	    KEY content_kind_status (kind, status)
	)`,
}
