package dialect

import (
	"strconv"

	sq "github.com/Masterminds/squirrel"
)

// Question covers engines bound with plain '?' markers (SQLite, Firebird, ODBC family).
type Question struct {
	name string
}

func NewQuestionDialect(name string) Dialect {
	return &Question{name: name}
}

func (q Question) Name() string {
	return q.name
}

func (q Question) Placeholder(n int) string {
	return "?"
}

func (q Question) Format() sq.PlaceholderFormat {
	return sq.Question
}

// Oracle binds by position with ':n'.
type Oracle struct{}

func NewOracleDialect() Dialect {
	return &Oracle{}
}

func (o Oracle) Name() string {
	return "oracle"
}

func (o Oracle) Placeholder(n int) string {
	return ":" + strconv.Itoa(n)
}

func (o Oracle) Format() sq.PlaceholderFormat {
	return sq.Colon
}

// SQLServer binds with '@pN', as go-mssqldb expects.
type SQLServer struct{}

func NewSQLServerDialect() Dialect {
	return &SQLServer{}
}

func (s SQLServer) Name() string {
	return "sqlserver"
}

func (s SQLServer) Placeholder(n int) string {
	return "@p" + strconv.Itoa(n)
}

func (s SQLServer) Format() sq.PlaceholderFormat {
	return sq.AtP
}
