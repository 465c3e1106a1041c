package engine

import (
	"context"
	"database/sql"
	"reflect"
	"sync"

	"github.com/Konsultn-Engineering/simpledb/database"
	"github.com/Konsultn-Engineering/simpledb/logging"
)

type call struct {
	SQL  string
	Args []any
}

// fakeDB records every statement and answers from canned results.
type fakeDB struct {
	execs    []call
	queries  []call
	affected int64
	execErr  error
	queryErr error
	cols     []string
	data     [][]any
	closed   bool
}

func (f *fakeDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	f.execs = append(f.execs, call{SQL: q, Args: args})
	if f.execErr != nil {
		return 0, f.execErr
	}
	return f.affected, nil
}

func (f *fakeDB) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	f.queries = append(f.queries, call{SQL: q, Args: args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{cols: f.cols, data: f.data}, nil
}

func (f *fakeDB) Ping(context.Context) error { return nil }

func (f *fakeDB) Close() error {
	f.closed = true
	return nil
}

type fakeRows struct {
	cols []string
	data [][]any
	pos  int
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	for i, d := range dest {
		if s, ok := d.(sql.Scanner); ok {
			if err := s.Scan(row[i]); err != nil {
				return err
			}
			continue
		}
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (r *fakeRows) Columns() ([]string, error) { return r.cols, nil }

func (r *fakeRows) MapScan(dest map[string]any) error {
	for i, c := range r.cols {
		dest[c] = r.data[r.pos-1][i]
	}
	return nil
}

func (r *fakeRows) Err() error   { return nil }
func (r *fakeRows) Close() error { return nil }

type entry struct {
	Level  string
	Msg    string
	Fields map[string]any
}

// recordLogger keeps every entry, including fields added through With.
type recordLogger struct {
	mu      *sync.Mutex
	entries *[]entry
	base    []logging.Field
}

func newRecordLogger() *recordLogger {
	return &recordLogger{mu: &sync.Mutex{}, entries: &[]entry{}}
}

func (l *recordLogger) add(level, msg string, fields []logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m := make(map[string]any)
	for _, f := range append(append([]logging.Field{}, l.base...), fields...) {
		m[f.Key] = f.Value
	}
	*l.entries = append(*l.entries, entry{Level: level, Msg: msg, Fields: m})
}

func (l *recordLogger) Debug(_ context.Context, msg string, fields ...logging.Field) {
	l.add("debug", msg, fields)
}

func (l *recordLogger) Info(_ context.Context, msg string, fields ...logging.Field) {
	l.add("info", msg, fields)
}

func (l *recordLogger) Warn(_ context.Context, msg string, fields ...logging.Field) {
	l.add("warn", msg, fields)
}

func (l *recordLogger) Error(_ context.Context, msg string, fields ...logging.Field) {
	l.add("error", msg, fields)
}

func (l *recordLogger) With(fields ...logging.Field) logging.Logger {
	return &recordLogger{mu: l.mu, entries: l.entries, base: append(append([]logging.Field{}, l.base...), fields...)}
}

func (l *recordLogger) find(level string) []entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []entry
	for _, e := range *l.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
