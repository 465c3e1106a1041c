package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/simpledb/dialect"
)

var question = dialect.NewQuestionDialect("generic")

func statement(table string, intent Intent) *Statement {
	s := NewStatement()
	s.SetTable(table)
	if intent != nil {
		s.SetIntent(intent)
	}
	return s
}

func TestRenderSelect(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *Statement
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "all columns",
			build:   func() *Statement { return statement("users", Select{}) },
			wantSQL: "SELECT * FROM users",
		},
		{
			name: "columns, conditions, order and limit",
			build: func() *Statement {
				s := statement("users", Select{Columns: []string{"id", "email"}})
				s.Where(map[string]any{"status": "active", "age": 30})
				s.SetOrder("id DESC")
				s.SetLimit("10")
				return s
			},
			wantSQL:  "SELECT id, email FROM users WHERE age = ? AND status = ? ORDER BY id DESC LIMIT 10",
			wantArgs: []any{30, "active"},
		},
		{
			name: "repeated column keeps position and takes latest value",
			build: func() *Statement {
				s := statement("users", Select{})
				s.Where(map[string]any{"b": 1})
				s.Where(map[string]any{"a": 2, "b": 3})
				return s
			},
			wantSQL:  "SELECT * FROM users WHERE b = ? AND a = ?",
			wantArgs: []any{3, 2},
		},
		{
			name: "nil matches NULL without a parameter",
			build: func() *Statement {
				s := statement("users", Select{})
				s.Where(map[string]any{"deleted_at": nil, "id": 5})
				return s
			},
			wantSQL:  "SELECT * FROM users WHERE deleted_at IS NULL AND id = ?",
			wantArgs: []any{5},
		},
		{
			name:    "qualified names and star projections",
			build:   func() *Statement { return statement("app.users", Select{Columns: []string{"users.*", "id"}}) },
			wantSQL: "SELECT users.*, id FROM app.users",
		},
		{
			name: "values with quotes stay parameters",
			build: func() *Statement {
				s := statement("users", Select{})
				s.Where(map[string]any{"name": "O'Brien'; DROP TABLE users; --"})
				return s
			},
			wantSQL:  "SELECT * FROM users WHERE name = ?",
			wantArgs: []any{"O'Brien'; DROP TABLE users; --"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.build().Render(question)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestRenderInsert(t *testing.T) {
	s := statement("users", Insert{Values: map[string]any{"name": "Ada", "email": "ada@example.com"}})

	sql, args, err := s.Render(question)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (email, name) VALUES (?, ?)", sql)
	assert.Equal(t, []any{"ada@example.com", "Ada"}, args)
}

func TestRenderInsertRejectsFilters(t *testing.T) {
	tests := map[string]func(*Statement){
		"where": func(s *Statement) { s.Where(map[string]any{"id": 1}) },
		"order": func(s *Statement) { s.SetOrder("id") },
		"limit": func(s *Statement) { s.SetLimit("1") },
	}
	for name, apply := range tests {
		t.Run(name, func(t *testing.T) {
			s := statement("users", Insert{Values: map[string]any{"name": "Ada"}})
			apply(s)
			_, _, err := s.Render(question)
			assert.ErrorIs(t, err, ErrInvalidClause)
		})
	}
}

func TestRenderUpdateNumbersPlaceholders(t *testing.T) {
	s := statement("users", Update{Values: map[string]any{"name": "x", "age": 3}})
	s.Where(map[string]any{"id": 7})

	sql, args, err := s.Render(dialect.NewPostgresDialect())
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET age = $1, name = $2 WHERE id = $3", sql)
	assert.Equal(t, []any{3, "x", 7}, args)

	sql, _, err = s.Render(dialect.NewOracleDialect())
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET age = :1, name = :2 WHERE id = :3", sql)
}

func TestRenderLastIntentWins(t *testing.T) {
	s := statement("users", Select{Columns: []string{"id"}})
	s.SetIntent(Update{Values: map[string]any{"name": "x"}})
	s.SetIntent(Insert{Values: map[string]any{"name": "y"}})

	sql, args, err := s.Render(question)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (name) VALUES (?)", sql)
	assert.Equal(t, []any{"y"}, args)
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Statement
		want  error
	}{
		{
			name:  "no intent",
			build: func() *Statement { return statement("users", nil) },
			want:  ErrNoIntent,
		},
		{
			name:  "no table",
			build: func() *Statement { s := NewStatement(); s.SetIntent(Select{}); return s },
			want:  ErrNoTable,
		},
		{
			name:  "table with statement text",
			build: func() *Statement { return statement("users; DROP TABLE users", Select{}) },
			want:  ErrInvalidIdentifier,
		},
		{
			name:  "function call as column",
			build: func() *Statement { return statement("users", Select{Columns: []string{"count(*)"}}) },
			want:  ErrInvalidIdentifier,
		},
		{
			name: "condition column with spaces",
			build: func() *Statement {
				s := statement("users", Select{})
				s.Where(map[string]any{"id = 1 OR 1": 1})
				return s
			},
			want: ErrInvalidIdentifier,
		},
		{
			name:  "empty insert",
			build: func() *Statement { return statement("users", Insert{}) },
			want:  ErrEmptyPayload,
		},
		{
			name:  "empty update",
			build: func() *Statement { return statement("users", Update{Values: map[string]any{}}) },
			want:  ErrEmptyPayload,
		},
		{
			name:  "payload column starting with a digit",
			build: func() *Statement { return statement("users", Update{Values: map[string]any{"1st": 1}}) },
			want:  ErrInvalidIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.build().Render(question)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRenderDelete(t *testing.T) {
	t.Run("with conditions", func(t *testing.T) {
		s := statement("users", Select{Columns: []string{"id"}})
		s.Where(map[string]any{"id": 9})
		sql, args, err := s.RenderDelete(dialect.NewSQLServerDialect())
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM users WHERE id = @p1", sql)
		assert.Equal(t, []any{9}, args)
	})

	t.Run("without conditions", func(t *testing.T) {
		sql, args, err := statement("sessions", nil).RenderDelete(question)
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM sessions", sql)
		assert.Empty(t, args)
	})

	t.Run("without table", func(t *testing.T) {
		_, _, err := NewStatement().RenderDelete(question)
		assert.ErrorIs(t, err, ErrNoTable)
	})

	t.Run("order and limit rejected", func(t *testing.T) {
		s := statement("users", nil)
		s.SetOrder("id")
		_, _, err := s.RenderDelete(question)
		assert.ErrorIs(t, err, ErrInvalidClause)

		s = statement("users", nil)
		s.SetLimit("5")
		_, _, err = s.RenderDelete(question)
		assert.ErrorIs(t, err, ErrInvalidClause)
	})
}
