package query

import (
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/simpledb/dialect"
)

// Render materializes the current intent into SQL text and bound arguments.
//
// Clauses are written in fixed order: keyword, table, columns or SET list,
// WHERE, ORDER BY, LIMIT. Every value travels as a bound parameter.
func (s *Statement) Render(d dialect.Dialect) (string, []any, error) {
	if err := s.Err(); err != nil {
		return "", nil, err
	}
	if s.intent == nil {
		return "", nil, ErrNoIntent
	}
	if s.table == "" {
		return "", nil, fmt.Errorf("%w for %s", ErrNoTable, s.intent.Kind())
	}

	r := &renderer{dialect: d}
	switch v := s.intent.(type) {
	case Select:
		r.sb.WriteString("SELECT ")
		if len(v.Columns) == 0 {
			r.sb.WriteString("*")
		} else {
			r.sb.WriteString(strings.Join(v.Columns, ", "))
		}
		r.sb.WriteString(" FROM ")
		r.sb.WriteString(s.table)
	case Insert:
		if len(s.conditions) > 0 || s.order != "" || s.limit != "" {
			return "", nil, fmt.Errorf("%w: INSERT takes no WHERE, ORDER BY or LIMIT", ErrInvalidClause)
		}
		cols := sortedKeys(v.Values)
		r.sb.WriteString("INSERT INTO ")
		r.sb.WriteString(s.table)
		r.sb.WriteString(" (")
		r.sb.WriteString(strings.Join(cols, ", "))
		r.sb.WriteString(") VALUES (")
		for i, col := range cols {
			if i > 0 {
				r.sb.WriteString(", ")
			}
			r.bind(v.Values[col])
		}
		r.sb.WriteString(")")
		return r.sb.String(), r.args, nil
	case Update:
		r.sb.WriteString("UPDATE ")
		r.sb.WriteString(s.table)
		r.sb.WriteString(" SET ")
		for i, col := range sortedKeys(v.Values) {
			if i > 0 {
				r.sb.WriteString(", ")
			}
			r.sb.WriteString(col)
			r.sb.WriteString(" = ")
			r.bind(v.Values[col])
		}
	default:
		return "", nil, fmt.Errorf("%w: unsupported intent %T", ErrNoIntent, v)
	}

	r.where(s.conditions)
	r.tail(s.order, s.limit)
	return r.sb.String(), r.args, nil
}

// RenderDelete renders a DELETE over the current table and conditions,
// ignoring any select, insert or update intent.
func (s *Statement) RenderDelete(d dialect.Dialect) (string, []any, error) {
	if err := s.Err(); err != nil {
		return "", nil, err
	}
	if s.table == "" {
		return "", nil, fmt.Errorf("%w for %s", ErrNoTable, KindDelete)
	}
	if s.order != "" || s.limit != "" {
		return "", nil, fmt.Errorf("%w: DELETE takes no ORDER BY or LIMIT", ErrInvalidClause)
	}

	r := &renderer{dialect: d}
	r.sb.WriteString("DELETE FROM ")
	r.sb.WriteString(s.table)
	r.where(s.conditions)
	return r.sb.String(), r.args, nil
}

type renderer struct {
	sb      strings.Builder
	args    []any
	dialect dialect.Dialect
}

func (r *renderer) bind(v any) {
	r.args = append(r.args, v)
	r.sb.WriteString(r.dialect.Placeholder(len(r.args)))
}

func (r *renderer) where(conds []Condition) {
	if len(conds) == 0 {
		return
	}
	r.sb.WriteString(" WHERE ")
	for i, c := range conds {
		if i > 0 {
			r.sb.WriteString(" AND ")
		}
		r.sb.WriteString(c.Column)
		if c.Value == nil {
			r.sb.WriteString(" IS NULL")
			continue
		}
		r.sb.WriteString(" = ")
		r.bind(c.Value)
	}
}

func (r *renderer) tail(order, limit string) {
	if order != "" {
		r.sb.WriteString(" ORDER BY ")
		r.sb.WriteString(order)
	}
	if limit != "" {
		r.sb.WriteString(" LIMIT ")
		r.sb.WriteString(limit)
	}
}
