// Package sqldb opens engines without a dedicated provider through any
// database/sql driver the application links in.
//
// The driver itself is not imported here: blank-import the one you use
// (for example github.com/nakagami/firebirdsql or github.com/alexbrainman/odbc).
// Opening an engine whose driver is missing fails with "sql: unknown driver".
package sqldb

import (
	"context"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Konsultn-Engineering/simpledb/connector"
	"github.com/Konsultn-Engineering/simpledb/database"
)

// DefaultDrivers maps engines to the database/sql driver name registered
// by their usual Go driver.
var DefaultDrivers = map[connector.DBType]string{
	connector.Firebird: "firebirdsql",
	connector.Informix: "odbc",
	connector.Oracle:   "oracle",
	connector.ODBC:     "odbc",
	connector.DBLib:    "sqlserver",
	connector.IBM:      "go_ibm_db",
}

func init() {
	for t, name := range DefaultDrivers {
		connector.Register(t, New(name))
	}
}

// Provider opens handles with a fixed database/sql driver name.
type Provider struct {
	driverName string
}

func New(driverName string) *Provider {
	return &Provider{driverName: driverName}
}

// DriverName returns the database/sql driver the provider opens.
func (p *Provider) DriverName() string { return p.driverName }

// Connect injects the credentials into dsn, opens it and pings.
func (p *Provider) Connect(ctx context.Context, dsn, user, password string) (database.Database, error) {
	full, err := WithCredentials(dsn, user, password)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(p.driverName, full)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return database.NewDB(db), nil
}

// WithCredentials adds user and password to a connect string.
//
//   - URL forms (scheme://host/...) get them as URL user info.
//   - Keyword forms (KEY=value;...) get UID and PWD keys unless already set.
//   - Anything else (host/path) is prefixed with user:password@.
func WithCredentials(dsn, user, password string) (string, error) {
	if user == "" && password == "" {
		return dsn, nil
	}

	if strings.Contains(dsn, "://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", err
		}
		if password != "" {
			u.User = url.UserPassword(user, password)
		} else {
			u.User = url.User(user)
		}
		return u.String(), nil
	}

	if strings.Contains(dsn, "=") {
		out := strings.TrimRight(dsn, ";")
		if user != "" && !hasKey(dsn, "UID") {
			out += ";UID=" + user
		}
		if password != "" && !hasKey(dsn, "PWD") {
			out += ";PWD=" + password
		}
		return out, nil
	}

	auth := user
	if password != "" {
		auth += ":" + password
	}
	return auth + "@" + dsn, nil
}

// hasKey reports whether a KEY=value;... string sets key, ignoring case.
func hasKey(dsn, key string) bool {
	for _, part := range strings.Split(dsn, ";") {
		k, _, ok := strings.Cut(part, "=")
		if ok && strings.EqualFold(strings.TrimSpace(k), key) {
			return true
		}
	}
	return false
}

var _ connector.Provider = (*Provider)(nil)
