package backend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Run("case-insensitive match normalizes to canonical form", func(t *testing.T) {
		for input, want := range map[string]Kind{
			"hana":       HANA,
			"HANA":       HANA,
			"Hdb":        HANA,
			"mssql":      MSSQL,
			"SQLServer":  MSSQL,
			"postgres":   PostgreSQL,
			"POSTGRESQL": PostgreSQL,
			" pgsql ":    PostgreSQL,
		} {
			kind, err := ParseKind(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, kind, input)
		}
	})

	t.Run("unrecognized kind lists the recognized kinds", func(t *testing.T) {
		_, err := ParseKind("ORACLE")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Contains(t, err.Error(), "ORACLE")
		assert.Contains(t, err.Error(), "HANA")
		assert.Contains(t, err.Error(), "MSSQL")
		assert.Contains(t, err.Error(), "POSTGRES")
	})
}

func TestDefaultPort(t *testing.T) {
	assert.Equal(t, 30015, DefaultPort(HANA))
	assert.Equal(t, 1433, DefaultPort(MSSQL))
	assert.Equal(t, 5432, DefaultPort(PostgreSQL))
	assert.Equal(t, 0, DefaultPort(Kind("ORACLE")))
}
