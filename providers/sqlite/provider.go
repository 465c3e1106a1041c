package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Konsultn-Engineering/simpledb/connector"
	"github.com/Konsultn-Engineering/simpledb/database"
)

func init() {
	connector.Register(connector.SQLite, &Provider{})
}

// Provider opens SQLite files (or ":memory:") through modernc.org/sqlite.
// Credentials are ignored.
type Provider struct{}

// Connect opens the database on a single connection, so an in-memory
// database lives as long as the handle.
func (p *Provider) Connect(ctx context.Context, dsn, _, _ string) (database.Database, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return database.NewDB(db), nil
}

var _ connector.Provider = (*Provider)(nil)
