package engine

import "github.com/Konsultn-Engineering/simpledb/query"

// Insert makes the statement an INSERT of one row. Replaces any previous
// Select or Update on this statement.
func (e *Engine) Insert(values map[string]any) *Engine {
	if e.guard("Insert") {
		e.stmt.SetIntent(query.Insert{Values: values})
	}
	return e
}
