package query

import (
	"errors"
	"sort"
)

var (
	// ErrNoTable is returned when a statement is rendered without a table.
	ErrNoTable = errors.New("query: no table specified")

	// ErrNoIntent is returned when Query runs before Select, Insert or Update.
	ErrNoIntent = errors.New("query: no select, insert or update specified")

	// ErrEmptyPayload is returned when Insert or Update receive no columns.
	ErrEmptyPayload = errors.New("query: no columns to write")

	// ErrInvalidIdentifier is returned for table or column names that are not plain identifiers.
	ErrInvalidIdentifier = errors.New("query: invalid SQL identifier")

	// ErrInvalidClause is returned when a clause does not apply to the statement kind.
	ErrInvalidClause = errors.New("query: clause not allowed for statement")
)

// Kind identifies the statement shape a Statement renders to.
type Kind int

const (
	KindNone Kind = iota
	KindSelect
	KindInsert
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindSelect:
		return "SELECT"
	case KindInsert:
		return "INSERT"
	case KindUpdate:
		return "UPDATE"
	case KindDelete:
		return "DELETE"
	default:
		return "NONE"
	}
}

// Intent is the statement variant a caller asked for. Only one is held at
// a time: setting a new intent replaces the previous one.
type Intent interface {
	Kind() Kind
}

// Select projects Columns; an empty list selects every column.
type Select struct {
	Columns []string
}

func (Select) Kind() Kind { return KindSelect }

// Insert writes one row.
type Insert struct {
	Values map[string]any
}

func (Insert) Kind() Kind { return KindInsert }

// Update overwrites Values on every matching row.
type Update struct {
	Values map[string]any
}

func (Update) Kind() Kind { return KindUpdate }

// Condition is a single equality filter.
type Condition struct {
	Column string
	Value  any
}

// Statement accumulates the clauses of one statement across chained calls.
// It is not safe for concurrent use.
type Statement struct {
	table      string
	intent     Intent
	conditions []Condition
	index      map[string]int
	order      string
	limit      string
	errors     []error
}

// NewStatement creates an empty statement.
func NewStatement() *Statement {
	return &Statement{index: make(map[string]int)}
}

// SetTable sets the target table.
func (s *Statement) SetTable(name string) {
	if err := ValidateIdentifier("table", name); err != nil {
		s.AddError(err)
		return
	}
	s.table = name
}

// Table returns the target table.
func (s *Statement) Table() string {
	return s.table
}

// SetIntent replaces the current intent.
func (s *Statement) SetIntent(i Intent) {
	switch v := i.(type) {
	case Select:
		for _, col := range v.Columns {
			if err := validateColumn(col); err != nil {
				s.AddError(err)
				return
			}
		}
	case Insert:
		if err := validatePayload(v.Values); err != nil {
			s.AddError(err)
			return
		}
	case Update:
		if err := validatePayload(v.Values); err != nil {
			s.AddError(err)
			return
		}
	}
	s.intent = i
}

// Intent returns the current intent, nil when none was set.
func (s *Statement) Intent() Intent {
	return s.intent
}

// Where merges equality conditions. Columns keep the position of their
// first appearance; a repeated column takes the latest value. Keys of a
// single call are applied in sorted order.
func (s *Statement) Where(values map[string]any) {
	for _, col := range sortedKeys(values) {
		if err := ValidateIdentifier("column", col); err != nil {
			s.AddError(err)
			return
		}
	}
	for _, col := range sortedKeys(values) {
		if i, ok := s.index[col]; ok {
			s.conditions[i].Value = values[col]
			continue
		}
		s.index[col] = len(s.conditions)
		s.conditions = append(s.conditions, Condition{Column: col, Value: values[col]})
	}
}

// Conditions returns the accumulated conditions in render order.
func (s *Statement) Conditions() []Condition {
	out := make([]Condition, len(s.conditions))
	copy(out, s.conditions)
	return out
}

// SetOrder stores the ORDER BY expression verbatim.
func (s *Statement) SetOrder(expr string) {
	s.order = expr
}

// SetLimit stores the LIMIT expression verbatim.
func (s *Statement) SetLimit(expr string) {
	s.limit = expr
}

// AddError records a builder error; the first one is reported at render time.
func (s *Statement) AddError(err error) {
	if err != nil {
		s.errors = append(s.errors, err)
	}
}

// Err returns the first error or nil.
func (s *Statement) Err() error {
	if len(s.errors) > 0 {
		return s.errors[0]
	}
	return nil
}

// Reset clears every clause and recorded error.
func (s *Statement) Reset() {
	s.table = ""
	s.intent = nil
	s.conditions = s.conditions[:0]
	clear(s.index)
	s.order = ""
	s.limit = ""
	s.errors = nil
}

func validatePayload(values map[string]any) error {
	if len(values) == 0 {
		return ErrEmptyPayload
	}
	for _, col := range sortedKeys(values) {
		if err := ValidateIdentifier("column", col); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
