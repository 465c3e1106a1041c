package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/Konsultn-Engineering/simpledb/connector"
	"github.com/Konsultn-Engineering/simpledb/database"
	"github.com/Konsultn-Engineering/simpledb/dialect"
	"github.com/Konsultn-Engineering/simpledb/logging"
	"github.com/Konsultn-Engineering/simpledb/query"
	"github.com/Konsultn-Engineering/simpledb/schema"
)

// State is the lifecycle position of an Engine.
type State int

const (
	StateUnopened State = iota
	StateOpen
	// StateFailed is reached when opening the connection failed; Err reports why.
	StateFailed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Executor is the terminal half of the facade, for callers that want to
// substitute it in tests. Opening and closing stay on *Engine.
type Executor interface {
	Query(ctx context.Context) (query.Result, error)
	Delete(ctx context.Context) (int64, error)
	Direct(ctx context.Context, sql string, args ...any) (query.Result, error)
	DirectQuery(ctx context.Context, sql string, args ...any) (*query.Rows, error)
	DirectExec(ctx context.Context, sql string, args ...any) (int64, error)
	Special(ctx context.Context, kind SpecialKind, target string) (any, error)
}

// Engine owns one database handle and the statement being built on it.
//
// Setters chain and record failures; the next terminal call (Query,
// Delete) reports the first one. The statement is cleared after every
// terminal call. An Engine is not safe for concurrent use: create one per
// goroutine.
type Engine struct {
	id      string
	params  connector.Params
	db      database.Database
	dialect dialect.Dialect
	logger  logging.Logger
	namer   *schema.Namer
	stmt    *query.Statement
	state   State
	err     error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDialect overrides the placeholder dialect derived from the engine type.
func WithDialect(d dialect.Dialect) Option {
	return func(e *Engine) {
		if d != nil {
			e.dialect = d
		}
	}
}

// WithNamer sets how Model derives table names; the default is
// snake_case plural.
func WithNamer(n *schema.Namer) Option {
	return func(e *Engine) {
		if n != nil {
			e.namer = n
		}
	}
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		id:     uuid.NewString(),
		logger: logging.Noop(),
		namer:  schema.DefaultNamer(),
		stmt:   query.NewStatement(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.logger = e.logger.With(logging.String("session", e.id))
	return e
}

// Connect resolves the DSN of p, opens it through the provider registered
// for p.Type and returns an open Engine.
//
// On failure the returned Engine is in StateFailed (its Err holds the
// same *ConnectError) so callers may inspect it; every operation on it
// fails with an InvalidStateError.
func Connect(ctx context.Context, p connector.Params, opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	e.params = p
	if e.dialect == nil {
		e.dialect = dialect.For(p.Type)
	}
	if err := e.open(ctx); err != nil {
		return e, err
	}
	return e, nil
}

// New wraps an already open handle. A nil dialect means '?' placeholders.
func New(db database.Database, d dialect.Dialect, opts ...Option) *Engine {
	e := newEngine(append([]Option{WithDialect(d)}, opts...))
	if e.dialect == nil {
		e.dialect = dialect.NewQuestionDialect("generic")
	}
	e.db = db
	e.state = StateOpen
	return e
}

func (e *Engine) open(ctx context.Context) error {
	if e.state != StateUnopened {
		return &InvalidStateError{Op: "open", State: e.state}
	}

	fail := func(dsn string, err error) error {
		e.state = StateFailed
		e.err = &ConnectError{Engine: e.params.Type, DSN: connector.Redact(dsn), Err: err}
		e.logger.Error(ctx, "connect failed",
			logging.String("engine", e.params.Type.String()),
			logging.Error(e.err))
		return e.err
	}

	dsn, err := connector.Resolve(e.params)
	if err != nil {
		return fail("", err)
	}
	if left := connector.Unresolved(dsn); len(left) > 0 {
		e.logger.Warn(ctx, "connect string has unresolved placeholders",
			logging.String("engine", e.params.Type.String()),
			logging.Any("tokens", left))
	}

	provider, err := connector.Lookup(e.params.Type)
	if err != nil {
		return fail(dsn, err)
	}
	db, err := provider.Connect(ctx, dsn, e.params.User, e.params.Password)
	if err != nil {
		return fail(dsn, err)
	}

	e.db = db
	e.state = StateOpen
	e.logger.Info(ctx, "connected",
		logging.String("engine", e.params.Type.String()),
		logging.String("dsn", connector.Redact(dsn)))
	return nil
}

// Close releases the handle. Every later call fails with an InvalidStateError.
func (e *Engine) Close() error {
	if e.state != StateOpen {
		return &InvalidStateError{Op: "Close", State: e.state}
	}
	e.state = StateClosed
	e.stmt.Reset()
	err := e.db.Close()
	e.db = nil
	return err
}

// ID returns the session id used to correlate log entries.
func (e *Engine) ID() string { return e.id }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Dialect returns the placeholder dialect statements render with.
func (e *Engine) Dialect() dialect.Dialect { return e.dialect }

// Err returns the connect failure of a failed Engine, otherwise the first
// error recorded by a setter since the last terminal call. An Engine that
// is not open always reports an error.
func (e *Engine) Err() error {
	if e.err != nil {
		return e.err
	}
	if err := e.stmt.Err(); err != nil {
		return err
	}
	return e.ready("Err")
}

// Reset discards the statement under construction. On an Engine that is
// not open it records an InvalidStateError instead.
func (e *Engine) Reset() *Engine {
	if e.guard("Reset") {
		e.stmt.Reset()
	}
	return e
}

// ready reports whether op may run.
func (e *Engine) ready(op string) error {
	if e.state != StateOpen {
		return &InvalidStateError{Op: op, State: e.state}
	}
	return nil
}

var _ Executor = (*Engine)(nil)
