package engine

import (
	"context"

	"github.com/Konsultn-Engineering/simpledb/query"
)

// Query renders the statement built so far and runs it.
//
// A SELECT yields Result.Rows, which the caller must close; INSERT and
// UPDATE yield Result.RowsAffected. The statement is cleared afterwards,
// whether or not it succeeded.
func (e *Engine) Query(ctx context.Context) (query.Result, error) {
	defer e.stmt.Reset()
	if err := e.ready("Query"); err != nil {
		return query.Result{}, err
	}

	sqlText, args, err := e.stmt.Render(e.dialect)
	if err != nil {
		return query.Result{}, err
	}

	if e.stmt.Intent().Kind() == query.KindSelect {
		rows, err := e.query(ctx, sqlText, args)
		if err != nil {
			return query.Result{}, err
		}
		return query.Result{Rows: rows}, nil
	}

	n, err := e.exec(ctx, sqlText, args)
	if err != nil {
		return query.Result{}, err
	}
	return query.Result{RowsAffected: n}, nil
}

// ToSQL renders the statement built so far without running or clearing it.
func (e *Engine) ToSQL() (string, []any, error) {
	if err := e.ready("ToSQL"); err != nil {
		return "", nil, err
	}
	return e.stmt.Render(e.dialect)
}
