package dialect

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/Konsultn-Engineering/simpledb/connector"
)

// Dialect describes the bind parameter syntax of an engine.
type Dialect interface {
	Name() string
	// Placeholder returns the marker of the n-th (1-based) bound parameter.
	Placeholder(n int) string
	// Format returns the matching squirrel placeholder format.
	Format() sq.PlaceholderFormat
}

// For returns the dialect of an engine. Engines without special needs use
// positional question marks.
func For(t connector.DBType) Dialect {
	switch t {
	case connector.MySQL:
		return NewMySQLDialect()
	case connector.Postgres:
		return NewPostgresDialect()
	case connector.Oracle:
		return NewOracleDialect()
	case connector.DBLib:
		return NewSQLServerDialect()
	default:
		return NewQuestionDialect(t.String())
	}
}
