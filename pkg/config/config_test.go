package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("HTTP_PORT", "")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverMongo, cfg.DB.Driver)
	assert.Equal(t, "products_database", cfg.DB.Database)
	assert.Equal(t, 10*time.Second, cfg.DB.Timeout)
	assert.Equal(t, "0.0.0.0:3010", cfg.HTTP.Addr())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("DB_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("MONGODB_DATABASE", "catalogo_test")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "catalogo_test", cfg.DB.Database)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	_, err := config.Load()
	assert.Error(t, err)
}
