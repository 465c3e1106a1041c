package engine

import "github.com/Konsultn-Engineering/simpledb/query"

// guard records an InvalidStateError when the Engine is not open.
func (e *Engine) guard(op string) bool {
	if err := e.ready(op); err != nil {
		e.stmt.AddError(err)
		return false
	}
	return true
}

// Table sets the target table.
func (e *Engine) Table(name string) *Engine {
	if e.guard("Table") {
		e.stmt.SetTable(name)
	}
	return e
}

// Model sets the target table from a struct type through the Engine's
// namer (snake_case plural by default), unless the model implements
// schema.Tabler.
func (e *Engine) Model(model any) *Engine {
	if !e.guard("Model") {
		return e
	}
	name, err := e.namer.TableName(model)
	if err != nil {
		e.stmt.AddError(err)
		return e
	}
	e.stmt.SetTable(name)
	return e
}

// Select makes the statement a SELECT of cols. No columns, or "*", selects all.
func (e *Engine) Select(cols ...string) *Engine {
	if e.guard("Select") {
		e.stmt.SetIntent(query.Select{Columns: cols})
	}
	return e
}

// Where adds equality conditions, joined with AND. Repeating a column
// replaces its value. A nil value matches NULL.
func (e *Engine) Where(conditions map[string]any) *Engine {
	if e.guard("Where") {
		e.stmt.Where(conditions)
	}
	return e
}

// Order sets the ORDER BY expression. It is written into the statement
// verbatim and must not carry user input.
func (e *Engine) Order(expr string) *Engine {
	if e.guard("Order") {
		e.stmt.SetOrder(expr)
	}
	return e
}

// Limit sets the LIMIT expression ("10", "10 OFFSET 20"). It is written
// into the statement verbatim and must not carry user input.
func (e *Engine) Limit(expr string) *Engine {
	if e.guard("Limit") {
		e.stmt.SetLimit(expr)
	}
	return e
}
