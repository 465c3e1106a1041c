package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/simpledb/connector"
)

func TestFor(t *testing.T) {
	tests := []struct {
		typ      connector.DBType
		name     string
		first    string
		third    string
		rendered string
	}{
		{connector.MySQL, "mysql", "?", "?", "a = ? AND b = ?"},
		{connector.Postgres, "postgres", "$1", "$3", "a = $1 AND b = $2"},
		{connector.SQLite, "sqlite", "?", "?", "a = ? AND b = ?"},
		{connector.Firebird, "firebird", "?", "?", "a = ? AND b = ?"},
		{connector.Oracle, "oracle", ":1", ":3", "a = :1 AND b = :2"},
		{connector.DBLib, "sqlserver", "@p1", "@p3", "a = @p1 AND b = @p2"},
		{connector.IBM, "ibm", "?", "?", "a = ? AND b = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := For(tt.typ)
			assert.Equal(t, tt.name, d.Name())
			assert.Equal(t, tt.first, d.Placeholder(1))
			assert.Equal(t, tt.third, d.Placeholder(3))

			got, err := d.Format().ReplacePlaceholders("a = ? AND b = ?")
			require.NoError(t, err)
			assert.Equal(t, tt.rendered, got)
		})
	}
}
