package database

import (
	"context"
)

// Database is the parameterized-SQL client a facade executes against.
// Implementations wrap a single driver handle.
type Database interface {
	// Exec runs a statement that returns no rows and reports the affected row count.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	// Query runs a statement that returns rows.
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

// Rows is a forward-only cursor over a result set.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Columns() ([]string, error)
	// MapScan reads the current row into a column name keyed map.
	MapScan(dest map[string]any) error
	Err() error
	Close() error
}
