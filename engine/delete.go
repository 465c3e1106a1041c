package engine

import "context"

// Delete removes the rows of the current table matching the Where
// conditions and returns how many went. Without a table it fails with
// ErrNoTable and runs nothing; without conditions it empties the table.
// The statement is cleared afterwards.
func (e *Engine) Delete(ctx context.Context) (int64, error) {
	defer e.stmt.Reset()
	if err := e.ready("Delete"); err != nil {
		return 0, err
	}

	sqlText, args, err := e.stmt.RenderDelete(e.dialect)
	if err != nil {
		return 0, err
	}
	return e.exec(ctx, sqlText, args)
}
