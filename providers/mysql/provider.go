package mysql

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/Konsultn-Engineering/simpledb/connector"
	"github.com/Konsultn-Engineering/simpledb/database"
)

func init() {
	connector.Register(connector.MySQL, &Provider{})
}

// Provider opens MySQL handles through go-sql-driver/mysql.
type Provider struct{}

// Config parses dsn and applies credentials without dialing.
func (p *Provider) Config(dsn, user, password string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	if user != "" {
		cfg.User = user
	}
	if password != "" {
		cfg.Passwd = password
	}
	cfg.ParseTime = true
	return cfg, nil
}

// Connect opens the handle and pings it.
func (p *Provider) Connect(ctx context.Context, dsn, user, password string) (database.Database, error) {
	cfg, err := p.Config(dsn, user, password)
	if err != nil {
		return nil, err
	}
	conn, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}

	db := sqlx.NewDb(sql.OpenDB(conn), "mysql")
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return database.NewDB(db), nil
}

var _ connector.Provider = (*Provider)(nil)
