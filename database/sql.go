package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// DB runs statements on a database/sql handle through sqlx, for every
// driver that is not pgx.
type DB struct {
	db *sqlx.DB
}

func NewDB(db *sqlx.DB) *DB {
	return &DB{db: db}
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := d.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &sqlxRows{Rows: rows}, nil
}

func (d *DB) Ping(ctx context.Context) error { return d.db.PingContext(ctx) }

func (d *DB) Close() error { return d.db.Close() }

type sqlxRows struct {
	*sqlx.Rows
}

// MapScan turns byte slices into strings; text columns come back as []byte
// from most database/sql drivers.
func (r *sqlxRows) MapScan(dest map[string]any) error {
	if err := r.Rows.MapScan(dest); err != nil {
		return err
	}
	for k, v := range dest {
		if b, ok := v.([]byte); ok {
			dest[k] = string(b)
		}
	}
	return nil
}

var _ Database = (*DB)(nil)
