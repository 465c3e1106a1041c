package engine

import (
	"errors"
	"fmt"

	"github.com/Konsultn-Engineering/simpledb/connector"
	"github.com/Konsultn-Engineering/simpledb/query"
)

var (
	// ErrConnect matches every *ConnectError through errors.Is.
	ErrConnect = errors.New("engine: connect failed")

	// ErrInvalidState matches every *InvalidStateError through errors.Is.
	ErrInvalidState = errors.New("engine: invalid state")

	// ErrUnsupported is returned for introspection an engine has no query for.
	ErrUnsupported = errors.New("engine: not supported by this engine")

	// ErrNoRows is returned when an introspection query finds nothing.
	ErrNoRows = errors.New("engine: no rows in result set")

	// Builder errors, re-exported for callers that only import engine.
	ErrNoTable           = query.ErrNoTable
	ErrNoIntent          = query.ErrNoIntent
	ErrEmptyPayload      = query.ErrEmptyPayload
	ErrInvalidIdentifier = query.ErrInvalidIdentifier
	ErrInvalidClause     = query.ErrInvalidClause
)

// ConnectError reports a failed open. DSN never contains the password.
type ConnectError struct {
	Engine connector.DBType
	DSN    string
	Err    error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("engine: connect to %s (%s): %v", e.Engine, e.DSN, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

func (e *ConnectError) Is(target error) bool { return target == ErrConnect }

// InvalidStateError reports an operation attempted outside the Open state.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("engine: %s not allowed in state %s", e.Op, e.State)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// QueryError carries a driver rejection together with the statement that caused it.
// The driver error is kept unchanged in the chain.
type QueryError struct {
	SQL  string
	Args []any
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("engine: query %q: %v", e.SQL, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
