package dialect

import (
	"strconv"

	sq "github.com/Masterminds/squirrel"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return &Postgres{}
}

func (p Postgres) Name() string {
	return "postgres"
}

func (p Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (p Postgres) Format() sq.PlaceholderFormat {
	return sq.Dollar
}
