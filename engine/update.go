package engine

import "github.com/Konsultn-Engineering/simpledb/query"

// Update makes the statement an UPDATE setting values on every row matching
// the Where conditions. Replaces any previous Select or Insert.
func (e *Engine) Update(values map[string]any) *Engine {
	if e.guard("Update") {
		e.stmt.SetIntent(query.Update{Values: values})
	}
	return e
}
