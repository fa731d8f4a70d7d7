package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-agro/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, config.StoreFile, cfg.Store.Driver)
	assert.Equal(t, "state", cfg.Store.Dir)
	assert.Equal(t, "data/productos_convencional.csv", cfg.Data.Conventional)
	assert.Equal(t, "data/productos_organico.csv", cfg.Data.Organic)
	assert.Equal(t, "Usuario Actual", cfg.Inventory.Operator)
	assert.False(t, cfg.Inventory.KeepReadAlerts)
	assert.Equal(t, "postgres://postgres:@localhost:5432/inventario_agro?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Sobrescrituras(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("STORE_DRIVER", "SQLite")
	v.Set("CSV_ENCODING", "Latin1")
	v.Set("ALERTS_KEEP_READ", "true")
	v.Set("DATA_ORGANIC", "https://example.org/organico.csv")
	v.Set("DB_PASSWORD", "p@ss:word")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, "latin1", cfg.Data.Encoding)
	assert.True(t, cfg.Inventory.KeepReadAlerts)
	assert.Equal(t, "https://example.org/organico.csv", cfg.Data.Organic)
	assert.Contains(t, cfg.DB.DSN(), "p%40ss%3Aword")

	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")
	cfg, err = config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
}

func TestFromViper_ValoresInvalidos(t *testing.T) {
	cases := map[string][2]string{
		"driver desconocido":   {"STORE_DRIVER", "mongo"},
		"encoding desconocido": {"CSV_ENCODING", "utf-16"},
		"puerto cero":          {"HTTP_PORT", "0"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			v.Set(kv[0], kv[1])
			_, err := config.FromViper(v)
			assert.Error(t, err)
		})
	}
}
