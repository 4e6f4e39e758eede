package store

import sq "github.com/Masterminds/squirrel"

// psql is the shared statement builder configured for PostgreSQL's
// $1-style placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// rowScanner is satisfied by both *sql.Row and *sql.Rows, letting one scan
// helper per entity serve single-row and multi-row queries.
type rowScanner interface {
	Scan(dest ...any) error
}
