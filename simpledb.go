// Package simpledb is a small database facade: resolve a connect string
// from a handful of parameters, open the engine, and build single-table
// SELECT, INSERT, UPDATE and DELETE statements with bound values.
//
//	db, err := simpledb.Connect(ctx, simpledb.Params{Type: simpledb.SQLite, Path: "app.db"})
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	res, err := db.Table("users").Select("id", "email").Where(map[string]any{"active": true}).Query(ctx)
//
// Importing this package registers providers for every supported engine.
// MySQL, PostgreSQL and SQLite drivers are linked in; the remaining engines
// need their database/sql driver imported by the application.
package simpledb

import (
	"context"

	"github.com/Konsultn-Engineering/simpledb/connector"
	"github.com/Konsultn-Engineering/simpledb/engine"

	_ "github.com/Konsultn-Engineering/simpledb/providers/mysql"
	_ "github.com/Konsultn-Engineering/simpledb/providers/postgres"
	_ "github.com/Konsultn-Engineering/simpledb/providers/sqldb"
	_ "github.com/Konsultn-Engineering/simpledb/providers/sqlite"
)

type (
	Params = connector.Params
	DBType = connector.DBType
	Engine = engine.Engine
	Option = engine.Option
)

const (
	MySQL    = connector.MySQL
	Postgres = connector.Postgres
	SQLite   = connector.SQLite
	Firebird = connector.Firebird
	Informix = connector.Informix
	Oracle   = connector.Oracle
	ODBC     = connector.ODBC
	DBLib    = connector.DBLib
	IBM      = connector.IBM
)

var (
	WithLogger  = engine.WithLogger
	WithDialect = engine.WithDialect
	WithNamer   = engine.WithNamer
)

// Connect opens the engine described by p. On failure the returned Engine
// is in the failed state and the error is an *engine.ConnectError.
func Connect(ctx context.Context, p Params, opts ...Option) (*Engine, error) {
	return engine.Connect(ctx, p, opts...)
}

// ConnectFile reads Params from a YAML or JSON file and opens the engine.
func ConnectFile(ctx context.Context, path string, opts ...Option) (*Engine, error) {
	p, err := connector.LoadParamsFile(path)
	if err != nil {
		return nil, err
	}
	return engine.Connect(ctx, *p, opts...)
}
