package dialect

import sq "github.com/Masterminds/squirrel"

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return &MySQL{}
}

func (m MySQL) Name() string {
	return "mysql"
}

func (m MySQL) Placeholder(n int) string {
	return "?"
}

func (m MySQL) Format() sq.PlaceholderFormat {
	return sq.Question
}
