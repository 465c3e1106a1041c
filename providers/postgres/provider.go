package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Konsultn-Engineering/simpledb/connector"
	"github.com/Konsultn-Engineering/simpledb/database"
)

func init() {
	connector.Register(connector.Postgres, New())
}

// Provider opens PostgreSQL handles through pgxpool.
type Provider struct {
	maxConns       int32
	connectTimeout time.Duration
}

// Option configures a Provider.
type Option func(*Provider)

// WithMaxConns caps the pool size. Zero keeps the pgxpool default.
func WithMaxConns(n int32) Option {
	return func(p *Provider) { p.maxConns = n }
}

// WithConnectTimeout bounds each dial. Zero keeps the DSN's connect_timeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(p *Provider) { p.connectTimeout = d }
}

func New(opts ...Option) *Provider {
	p := &Provider{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config parses dsn and applies credentials and provider settings without dialing.
func (p *Provider) Config(dsn, user, password string) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if user != "" {
		cfg.ConnConfig.User = user
	}
	if password != "" {
		cfg.ConnConfig.Password = password
	}
	if p.maxConns > 0 {
		cfg.MaxConns = p.maxConns
	}
	if p.connectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = p.connectTimeout
	}
	return cfg, nil
}

// Connect builds the pool and pings it, so an unreachable server fails here.
func (p *Provider) Connect(ctx context.Context, dsn, user, password string) (database.Database, error) {
	cfg, err := p.Config(dsn, user, password)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return database.NewPool(pool), nil
}

var _ connector.Provider = (*Provider)(nil)
