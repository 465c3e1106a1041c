package query

import (
	"iter"

	"github.com/Konsultn-Engineering/simpledb/database"
)

// Result is what a terminal call hands back: the affected row count for
// writes, or a lazy row cursor for reads. Exactly one of the two is meaningful.
type Result struct {
	RowsAffected int64
	Rows         *Rows
}

// Rows lazily walks a result set. Callers must Close it (or drain All).
type Rows struct {
	rows    database.Rows
	onClose func(error)
	closed  bool
}

// NewRows wraps a driver cursor. onClose, if set, observes the iteration error once.
func NewRows(rows database.Rows, onClose func(error)) *Rows {
	return &Rows{rows: rows, onClose: onClose}
}

// Next advances to the next row.
func (r *Rows) Next() bool { return r.rows.Next() }

// Scan copies the current row into dest.
func (r *Rows) Scan(dest ...any) error { return r.rows.Scan(dest...) }

// Columns returns the column names.
func (r *Rows) Columns() ([]string, error) { return r.rows.Columns() }

// Map returns the current row keyed by column name.
func (r *Rows) Map() (map[string]any, error) {
	row := make(map[string]any)
	if err := r.rows.MapScan(row); err != nil {
		return nil, err
	}
	return row, nil
}

// Err returns the iteration error, if any.
func (r *Rows) Err() error { return r.rows.Err() }

// Close releases the cursor. It is safe to call more than once.
func (r *Rows) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	err := r.rows.Close()
	if r.onClose != nil {
		r.onClose(r.rows.Err())
	}
	return err
}

// All yields every remaining row as a map and closes the cursor when the
// sequence ends or the caller stops early.
func (r *Rows) All() iter.Seq2[map[string]any, error] {
	return func(yield func(map[string]any, error) bool) {
		defer r.Close()
		for r.rows.Next() {
			row, err := r.Map()
			if !yield(row, err) || err != nil {
				return
			}
		}
		if err := r.rows.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Collect drains the cursor into a slice of maps.
func (r *Rows) Collect() ([]map[string]any, error) {
	var out []map[string]any
	for row, err := range r.All() {
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}
