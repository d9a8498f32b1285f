package sapdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validParams(kind Kind) ConnectionParams {
	return ConnectionParams{
		Server:   "dbhost:39015",
		Database: "SCHEMA1",
		Username: "user",
		Password: "secret",
		Kind:     kind,
	}
}

func TestValidate(t *testing.T) {
	kinds := []Kind{HANA, MSSQL, PostgreSQL}

	t.Run("accepts valid parameters for every kind", func(t *testing.T) {
		for _, kind := range kinds {
			assert.NoError(t, validParams(kind).Validate(), string(kind))
		}
	})

	t.Run("blank server fails for every kind", func(t *testing.T) {
		for _, kind := range kinds {
			p := validParams(kind)
			p.Server = "   "
			err := p.Validate()
			require.Error(t, err, string(kind))
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), "server")
		}
	})

	t.Run("blank username fails for every kind", func(t *testing.T) {
		for _, kind := range kinds {
			p := validParams(kind)
			p.Username = ""
			err := p.Validate()
			require.Error(t, err, string(kind))
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), "username")
		}
	})

	t.Run("whitespace-only password fails for every kind", func(t *testing.T) {
		for _, kind := range kinds {
			p := validParams(kind)
			p.Password = "\t \n"
			err := p.Validate()
			require.Error(t, err, string(kind))
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), "password")
		}
	})

	t.Run("unrecognized kind lists the recognized kinds", func(t *testing.T) {
		p := validParams("ORACLE")
		err := p.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Contains(t, err.Error(), "HANA")
		assert.Contains(t, err.Error(), "MSSQL")
		assert.Contains(t, err.Error(), "POSTGRES")
	})
}

func TestNormalize(t *testing.T) {
	t.Run("kind is normalized to uppercase", func(t *testing.T) {
		p := validParams("hana")
		normalized, err := p.normalize()
		require.NoError(t, err)
		assert.Equal(t, HANA, normalized.Kind)
	})

	t.Run("timeout defaults to 600000ms", func(t *testing.T) {
		normalized, err := validParams(HANA).normalize()
		require.NoError(t, err)
		assert.Equal(t, 600000*time.Millisecond, normalized.Timeout)
	})

	t.Run("explicit timeout is kept", func(t *testing.T) {
		p := validParams(HANA)
		p.Timeout = 30 * time.Second
		normalized, err := p.normalize()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, normalized.Timeout)
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		p := validParams(MSSQL)
		p.Username = "  user  "
		p.Database = " SCHEMA1 "
		normalized, err := p.normalize()
		require.NoError(t, err)
		assert.Equal(t, "user", normalized.Username)
		assert.Equal(t, "SCHEMA1", normalized.Database)
	})
}

func TestBackendConfig(t *testing.T) {
	t.Run("splits server into host and port", func(t *testing.T) {
		p, err := validParams(HANA).normalize()
		require.NoError(t, err)
		cfg, err := p.backendConfig(zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "dbhost", cfg.Host)
		assert.Equal(t, 39015, cfg.Port)
	})

	t.Run("defaults the port per backend kind", func(t *testing.T) {
		for kind, port := range map[Kind]int{HANA: 30015, MSSQL: 1433, PostgreSQL: 5432} {
			p := validParams(kind)
			p.Server = "dbhost"
			normalized, err := p.normalize()
			require.NoError(t, err)
			cfg, err := normalized.backendConfig(zap.NewNop())
			require.NoError(t, err)
			assert.Equal(t, port, cfg.Port, string(kind))
		}
	})

	t.Run("rejects an invalid port", func(t *testing.T) {
		p := validParams(HANA)
		p.Server = "dbhost:not-a-port"
		normalized, err := p.normalize()
		require.NoError(t, err)
		_, err = normalized.backendConfig(zap.NewNop())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("carries pool options through", func(t *testing.T) {
		p := validParams(HANA)
		p.PoolOptions = map[string]any{"max": 3, "min": 1}
		normalized, err := p.normalize()
		require.NoError(t, err)
		cfg, err := normalized.backendConfig(zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, p.PoolOptions, cfg.PoolOptions)
	})
}
