package connector

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Placeholder tokens understood by the connect templates.
const (
	TokenHost = "**DBHOST**"
	TokenName = "**DBNAME**"
	TokenPort = "**DBPORT**"
	TokenPath = "**DBPATHFILE**"
	TokenUser = "**DBUSERNAME**"
)

// templates maps every engine to its driver connect string. Built once, never mutated.
var templates = map[DBType]string{
	MySQL:    "tcp(" + TokenHost + ")/" + TokenName,
	Postgres: "host=" + TokenHost + " dbname=" + TokenName,
	SQLite:   TokenPath,
	Firebird: TokenHost + "/" + TokenPath,
	Informix: "DSN=" + TokenName,
	Oracle:   "oracle://" + TokenHost + "/" + TokenName,
	ODBC:     "Driver={Microsoft Access Driver (*.mdb)};Dbq=" + TokenPath + ";Uid=" + TokenUser,
	DBLib:    "sqlserver://" + TokenHost + ":" + TokenPort + "?database=" + TokenName,
	IBM:      "DRIVER={IBM DB2 ODBC DRIVER};DATABASE=" + TokenName + ";HOSTNAME=" + TokenHost + ";PROTOCOL=TCPIP",
}

var (
	tokenPattern   = regexp.MustCompile(`\*\*DB[A-Z]+\*\*`)
	userInfoSecret = regexp.MustCompile(`^([^:@/;=\s]+):[^@/]*@`)
	keywordSecret  = regexp.MustCompile(`(?i)(^|[;&?\s])(pwd|password)=[^;&\s]*`)
)

// Template returns the connect template of an engine.
func Template(t DBType) (string, bool) {
	tpl, ok := templates[t]
	return tpl, ok
}

// Resolve substitutes the present connection parameters into the engine's
// connect template.
//
// Every occurrence of a token is replaced when its field is set. Tokens of
// empty fields stay in the result verbatim; the driver is left to reject
// them. Values are not escaped: they come from configuration, not from
// end users.
func Resolve(p Params) (string, error) {
	tpl, ok := templates[p.Type]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEngine, p.Type)
	}

	var pairs []string
	for _, sub := range []struct{ token, value string }{
		{TokenHost, p.Host},
		{TokenName, p.Name},
		{TokenPort, p.Port},
		{TokenPath, p.Path},
		{TokenUser, p.User},
	} {
		if sub.value != "" {
			pairs = append(pairs, sub.token, sub.value)
		}
	}
	if len(pairs) == 0 {
		return tpl, nil
	}
	return strings.NewReplacer(pairs...).Replace(tpl), nil
}

// Unresolved lists the placeholder tokens still present in a DSN, in order of appearance.
func Unresolved(dsn string) []string {
	return tokenPattern.FindAllString(dsn, -1)
}

// Redact masks the password parts of a DSN for logs and errors: URL user
// info, a leading user:password@ prefix, and PWD or password keys. The rest
// of the string is left as is.
func Redact(dsn string) string {
	if strings.Contains(dsn, "://") {
		if u, err := url.Parse(dsn); err == nil && u.User != nil {
			if _, ok := u.User.Password(); ok {
				dsn = u.Redacted()
			}
		}
	} else {
		dsn = userInfoSecret.ReplaceAllString(dsn, "${1}:xxxxx@")
	}
	return keywordSecret.ReplaceAllString(dsn, "${1}${2}=xxxxx")
}
