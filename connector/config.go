package connector

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownEngine is returned when a DBType has no connect template.
var ErrUnknownEngine = errors.New("connector: unknown database engine")

// DBType selects the database engine and with it the DSN template.
type DBType int

const (
	Unknown DBType = iota
	MySQL
	Postgres
	SQLite
	Firebird
	Informix
	Oracle
	ODBC
	DBLib
	IBM
)

var dbTypeNames = map[DBType]string{
	MySQL:    "mysql",
	Postgres: "postgres",
	SQLite:   "sqlite",
	Firebird: "firebird",
	Informix: "informix",
	Oracle:   "oracle",
	ODBC:     "odbc",
	DBLib:    "dblib",
	IBM:      "ibm",
}

// aliases accepted by ParseDBType besides the canonical names.
var dbTypeAliases = map[string]DBType{
	"pgsql":      Postgres,
	"postgresql": Postgres,
	"sqlite3":    SQLite,
	"oci":        Oracle,
	"mssql":      DBLib,
	"sqlserver":  DBLib,
	"db2":        IBM,
}

// String returns the canonical engine name.
func (t DBType) String() string {
	if name, ok := dbTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DBType(%d)", int(t))
}

// ParseDBType parses an engine name case-insensitively.
func ParseDBType(name string) (DBType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for t, canonical := range dbTypeNames {
		if canonical == n {
			return t, nil
		}
	}
	if t, ok := dbTypeAliases[n]; ok {
		return t, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t DBType) MarshalText() ([]byte, error) {
	if _, ok := dbTypeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEngine, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so DBType can be read
// from YAML and JSON configuration.
func (t *DBType) UnmarshalText(text []byte) error {
	parsed, err := ParseDBType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Params represents database connection parameters.
//
// Host, Name, Port, Path and User are optional: an empty value leaves the
// matching placeholder token in the connect template untouched. Password is
// never written into the DSN; it is handed to the provider separately.
type Params struct {
	Type     DBType `json:"type" yaml:"type"`
	Host     string `json:"host,omitempty" yaml:"host,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Port     string `json:"port,omitempty" yaml:"port,omitempty"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	User     string `json:"user,omitempty" yaml:"user,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

// Validate checks that the selected engine has a connect template.
func (p *Params) Validate() error {
	if _, ok := templates[p.Type]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEngine, p.Type)
	}
	return nil
}

// LoadParams decodes connection parameters from YAML (or JSON) and validates them.
func LoadParams(r io.Reader) (*Params, error) {
	var p Params
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode connection params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadParamsFile reads connection parameters from a YAML or JSON file.
func LoadParamsFile(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open connection params: %w", err)
	}
	defer f.Close()
	return LoadParams(f)
}
