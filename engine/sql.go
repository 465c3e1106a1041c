package engine

import (
	"context"
	"strings"
	"unicode"

	"github.com/Konsultn-Engineering/simpledb/query"
)

// rowKeywords start statements that produce a result set.
var rowKeywords = map[string]bool{
	"SELECT":   true,
	"WITH":     true,
	"SHOW":     true,
	"PRAGMA":   true,
	"EXPLAIN":  true,
	"VALUES":   true,
	"DESCRIBE": true,
	"DESC":     true,
}

// Direct runs caller-written SQL as is, binding args in the driver's own
// placeholder syntax. Statements opening with SELECT, WITH, SHOW, PRAGMA,
// EXPLAIN, VALUES or DESCRIBE (after any leading comments), and writes
// carrying a RETURNING clause, return Result.Rows; anything else returns
// Result.RowsAffected. Use DirectQuery or DirectExec to pick explicitly.
// The statement under construction is left alone.
//
// The SQL text is trusted: nothing in it is escaped.
func (e *Engine) Direct(ctx context.Context, sql string, args ...any) (query.Result, error) {
	if err := e.ready("Direct"); err != nil {
		return query.Result{}, err
	}

	if returnsRows(sql) {
		rows, err := e.query(ctx, sql, args)
		if err != nil {
			return query.Result{}, err
		}
		return query.Result{Rows: rows}, nil
	}

	n, err := e.exec(ctx, sql, args)
	if err != nil {
		return query.Result{}, err
	}
	return query.Result{RowsAffected: n}, nil
}

// DirectQuery runs caller-written SQL and returns its rows, whatever the statement.
func (e *Engine) DirectQuery(ctx context.Context, sql string, args ...any) (*query.Rows, error) {
	if err := e.ready("DirectQuery"); err != nil {
		return nil, err
	}
	return e.query(ctx, sql, args)
}

// DirectExec runs caller-written SQL and returns the affected row count.
func (e *Engine) DirectExec(ctx context.Context, sql string, args ...any) (int64, error) {
	if err := e.ready("DirectExec"); err != nil {
		return 0, err
	}
	return e.exec(ctx, sql, args)
}

func returnsRows(sql string) bool {
	s := skipComments(sql)
	end := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	word := s
	if end >= 0 {
		word = s[:end]
	}
	if rowKeywords[strings.ToUpper(word)] {
		return true
	}
	return hasWord(s, "RETURNING")
}

// skipComments drops leading whitespace, opening parentheses and
// "--" or "/* */" comments.
func skipComments(s string) string {
	for {
		s = strings.TrimLeftFunc(s, func(r rune) bool {
			return unicode.IsSpace(r) || r == '('
		})
		switch {
		case strings.HasPrefix(s, "--"):
			i := strings.IndexByte(s, '\n')
			if i < 0 {
				return ""
			}
			s = s[i+1:]
		case strings.HasPrefix(s, "/*"):
			i := strings.Index(s[2:], "*/")
			if i < 0 {
				return ""
			}
			s = s[i+4:]
		default:
			return s
		}
	}
}

func hasWord(s, word string) bool {
	for _, w := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	}) {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}
