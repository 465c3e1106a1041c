package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool runs statements on a pgx connection pool.
type Pool struct {
	pool *pgxpool.Pool
}

func NewPool(pool *pgxpool.Pool) *Pool {
	return &Pool{pool: pool}
}

// Exec reports the row count from the command tag.
func (d *Pool) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := d.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (d *Pool) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &poolRows{Rows: rows}, nil
}

func (d *Pool) Ping(ctx context.Context) error { return d.pool.Ping(ctx) }

// Close waits for acquired connections to be released.
func (d *Pool) Close() error {
	d.pool.Close()
	return nil
}

// poolRows adapts pgx.Rows, whose Close returns nothing and which has no Columns.
type poolRows struct {
	pgx.Rows
	cols []string
}

func (r *poolRows) Columns() ([]string, error) {
	if r.cols == nil {
		fields := r.FieldDescriptions()
		r.cols = make([]string, 0, len(fields))
		for _, f := range fields {
			r.cols = append(r.cols, f.Name)
		}
	}
	return r.cols, nil
}

func (r *poolRows) MapScan(dest map[string]any) error {
	row, err := pgx.RowToMap(r.Rows)
	if err != nil {
		return err
	}
	for k, v := range row {
		dest[k] = v
	}
	return nil
}

func (r *poolRows) Close() error {
	r.Rows.Close()
	return nil
}

var _ Database = (*Pool)(nil)
