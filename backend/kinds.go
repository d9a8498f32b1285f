package backend

import (
	"fmt"
	"strings"
)

// Kind is the canonical identifier for a database backend supported by this
// library. Use these constants when selecting a backend at connect time.
type Kind string

const (
	// HANA is the SAP HANA columnar in-memory database.
	HANA Kind = "HANA"

	// MSSQL is Microsoft SQL Server.
	MSSQL Kind = "MSSQL"

	// PostgreSQL is the open-source PostgreSQL database.
	PostgreSQL Kind = "POSTGRES"
)

// Kinds lists every recognized backend kind.
var Kinds = []Kind{HANA, MSSQL, PostgreSQL}

// aliases maps lowercase spellings to their canonical kind.
var aliases = map[string]Kind{
	"hana":       HANA,
	"hdb":        HANA,
	"mssql":      MSSQL,
	"sqlserver":  MSSQL,
	"postgres":   PostgreSQL,
	"postgresql": PostgreSQL,
	"pgsql":      PostgreSQL,
}

// ParseKind resolves a backend kind from a string, matching
// case-insensitively and normalizing to the canonical uppercase form.
func ParseKind(s string) (Kind, error) {
	kind, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", &ConfigurationError{
			Field:  "kind",
			Reason: fmt.Sprintf("unrecognized backend kind %q (recognized kinds: %s, %s, %s)", s, HANA, MSSQL, PostgreSQL),
		}
	}
	return kind, nil
}

// DefaultPort returns the conventional port for a backend kind, used when
// the server address carries no explicit port.
func DefaultPort(kind Kind) int {
	switch kind {
	case HANA:
		return 30015
	case MSSQL:
		return 1433
	case PostgreSQL:
		return 5432
	default:
		return 0
	}
}
