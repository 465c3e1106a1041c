package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrNotStruct is returned when a table name is requested for a non-struct value.
var ErrNotStruct = errors.New("schema: table name requires a struct or pointer to struct")

// pluralizeClient is a singleton instance for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// Tabler lets a model pick its own table name.
type Tabler interface {
	TableName() string
}

// TableNamingType represents the table naming convention.
type TableNamingType int

const (
	TableSnakeCasePlural   TableNamingType = iota // users, blog_posts
	TableSnakeCaseSingular                        // user, blog_post
)

// Namer derives table names from Go struct types and memoizes the result per type.
type Namer struct {
	namingType TableNamingType
	cache      *lru.Cache[reflect.Type, string]
}

// NewNamer creates a Namer remembering up to size types.
func NewNamer(namingType TableNamingType, size int) *Namer {
	if size <= 0 {
		size = 256
	}
	cache, _ := lru.New[reflect.Type, string](size)
	return &Namer{namingType: namingType, cache: cache}
}

var defaultNamer = NewNamer(TableSnakeCasePlural, 256)

// DefaultNamer returns the shared snake_case plural Namer.
func DefaultNamer() *Namer { return defaultNamer }

// TableName returns the table name of model using the default snake_case plural convention.
func TableName(model any) (string, error) {
	return defaultNamer.TableName(model)
}

// TableName returns the table name of model. A model implementing Tabler
// wins over the naming convention.
func (n *Namer) TableName(model any) (string, error) {
	if t, ok := model.(Tabler); ok {
		return t.TableName(), nil
	}

	typ := reflect.TypeOf(model)
	for typ != nil && (typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Slice) {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct || typ.Name() == "" {
		return "", fmt.Errorf("%w: got %T", ErrNotStruct, model)
	}

	if name, ok := n.cache.Get(typ); ok {
		return name, nil
	}
	name := toSnakeCase(typ.Name())
	if n.namingType == TableSnakeCasePlural {
		name = pluralize(name)
	}
	n.cache.Add(typ, name)
	return name, nil
}

// toSnakeCase converts any naming convention to snake_case.
// Handles acronyms and digits: HTTPServer -> http_server, OAuth2Token -> o_auth2_token.
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}

	// If already snake_case (contains underscores and no uppercase), return as-is
	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	var result strings.Builder
	result.Grow(len(name) + 10)

	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			// aB -> a_b, a1B -> a1_b, ABc -> a_bc
			if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
				(unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])) {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// pluralize pluralizes the last snake_case segment only.
func pluralize(name string) string {
	if name == "" {
		return ""
	}
	idx := strings.LastIndexByte(name, '_')
	head, last := name[:idx+1], name[idx+1:]

	switch last {
	case "datum":
		return head + "data"
	case "medium":
		return head + "media"
	case "criterion":
		return head + "criteria"
	}
	return head + pluralizeClient.Pluralize(last, 2, false)
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
