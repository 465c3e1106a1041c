package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Konsultn-Engineering/simpledb/query"
)

// SpecialKind selects an introspection query.
type SpecialKind int

const (
	// RowCount counts the rows of the target table and yields an int64.
	RowCount SpecialKind = iota
	// ColumnComment reads the comment of a "table.column" target and yields a string.
	ColumnComment
)

func (k SpecialKind) String() string {
	switch k {
	case RowCount:
		return "row count"
	case ColumnComment:
		return "column comment"
	default:
		return fmt.Sprintf("SpecialKind(%d)", int(k))
	}
}

// Special runs an engine-specific metadata query against target and
// returns its single scalar. The statement under construction is left alone.
func (e *Engine) Special(ctx context.Context, kind SpecialKind, target string) (any, error) {
	if err := e.ready("Special"); err != nil {
		return nil, err
	}

	switch kind {
	case RowCount:
		if err := query.ValidateIdentifier("table", target); err != nil {
			return nil, err
		}
		var n int64
		b := sq.Select("COUNT(*)").From(target)
		if err := e.scalar(ctx, b, &n); err != nil {
			return nil, err
		}
		return n, nil

	case ColumnComment:
		idx := strings.LastIndexByte(target, '.')
		if idx <= 0 || idx == len(target)-1 {
			return nil, fmt.Errorf("%w: column comment needs table.column, got %q", ErrInvalidIdentifier, target)
		}
		table, column := target[:idx], target[idx+1:]
		if err := query.ValidateIdentifier("table", table); err != nil {
			return nil, err
		}
		if err := query.ValidateIdentifier("column", column); err != nil {
			return nil, err
		}
		b, err := e.columnCommentQuery(table, column)
		if err != nil {
			return nil, err
		}
		var comment sql.NullString
		if err := e.scalar(ctx, b, &comment); err != nil {
			return nil, err
		}
		return comment.String, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
}

func (e *Engine) columnCommentQuery(table, column string) (sq.SelectBuilder, error) {
	switch e.dialect.Name() {
	case "mysql":
		return sq.Select("COLUMN_COMMENT").
			From("information_schema.COLUMNS").
			Where("TABLE_SCHEMA = DATABASE()").
			Where(sq.Eq{"TABLE_NAME": table, "COLUMN_NAME": column}), nil
	case "postgres":
		return sq.Select("col_description(a.attrelid, a.attnum)").
			From("pg_catalog.pg_attribute a").
			Where("a.attrelid = ?::regclass", table).
			Where(sq.Eq{"a.attname": column}), nil
	default:
		return sq.SelectBuilder{}, fmt.Errorf("%w: %s on %s", ErrUnsupported, ColumnComment, e.dialect.Name())
	}
}

// scalar runs b and scans the first column of its first row into dest.
func (e *Engine) scalar(ctx context.Context, b sq.SelectBuilder, dest any) error {
	sqlText, args, err := b.PlaceholderFormat(e.dialect.Format()).ToSql()
	if err != nil {
		return err
	}
	rows, err := e.query(ctx, sqlText, args)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return &QueryError{SQL: sqlText, Args: args, Err: err}
		}
		return ErrNoRows
	}
	if err := rows.Scan(dest); err != nil {
		return &QueryError{SQL: sqlText, Args: args, Err: err}
	}
	return nil
}
