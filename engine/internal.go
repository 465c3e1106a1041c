package engine

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Konsultn-Engineering/simpledb/logging"
	"github.com/Konsultn-Engineering/simpledb/query"
)

// exec runs a statement that returns no rows.
func (e *Engine) exec(ctx context.Context, sqlText string, args []any) (int64, error) {
	execID := ulid.Make().String()
	start := time.Now()

	n, err := e.db.Exec(ctx, sqlText, args...)
	if err != nil {
		e.logger.Error(ctx, "statement failed",
			logging.String("exec_id", execID),
			logging.String("sql", sqlText),
			logging.Error(err))
		return 0, &QueryError{SQL: sqlText, Args: args, Err: err}
	}

	e.logger.Debug(ctx, "statement executed",
		logging.String("exec_id", execID),
		logging.String("sql", sqlText),
		logging.Int("args", len(args)),
		logging.Int64("rows_affected", n),
		logging.Duration("elapsed", time.Since(start)))
	return n, nil
}

// query runs a statement that returns rows. Iteration errors surface on
// the returned cursor and are logged when it closes.
func (e *Engine) query(ctx context.Context, sqlText string, args []any) (*query.Rows, error) {
	execID := ulid.Make().String()
	start := time.Now()

	rows, err := e.db.Query(ctx, sqlText, args...)
	if err != nil {
		e.logger.Error(ctx, "query failed",
			logging.String("exec_id", execID),
			logging.String("sql", sqlText),
			logging.Error(err))
		return nil, &QueryError{SQL: sqlText, Args: args, Err: err}
	}

	logger := e.logger
	return query.NewRows(rows, func(iterErr error) {
		if iterErr != nil {
			logger.Error(ctx, "query iteration failed",
				logging.String("exec_id", execID),
				logging.String("sql", sqlText),
				logging.Error(iterErr))
			return
		}
		logger.Debug(ctx, "query executed",
			logging.String("exec_id", execID),
			logging.String("sql", sqlText),
			logging.Int("args", len(args)),
			logging.Duration("elapsed", time.Since(start)))
	}), nil
}
