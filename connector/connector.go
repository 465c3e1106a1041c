package connector

import (
	"context"

	"github.com/Konsultn-Engineering/simpledb/database"
)

// Provider opens driver handles for one engine.
//
// The DSN has already been resolved from the engine template. Credentials
// travel separately so that providers can inject them the way their driver
// expects and so they never appear in a logged connect string.
type Provider interface {
	Connect(ctx context.Context, dsn, user, password string) (database.Database, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(ctx context.Context, dsn, user, password string) (database.Database, error)

// Connect calls f.
func (f ProviderFunc) Connect(ctx context.Context, dsn, user, password string) (database.Database, error) {
	return f(ctx, dsn, user, password)
}
