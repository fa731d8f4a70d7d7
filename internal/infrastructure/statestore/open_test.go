package statestore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-agro/internal/domain/repository"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/filestore"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-agro/internal/infrastructure/statestore"
	"github.com/jhoicas/inventario-agro/pkg/config"
)

func TestOpen_DriversLocales(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]func(repository.StateStore) bool{
		config.StoreMemory: func(s repository.StateStore) bool { _, ok := s.(*memory.StateStore); return ok },
		config.StoreFile:   func(s repository.StateStore) bool { _, ok := s.(*filestore.StateStore); return ok },
		config.StoreSQLite: func(s repository.StateStore) bool { _, ok := s.(*sqlite.StateStore); return ok },
	}
	for driver, isType := range cases {
		t.Run(driver, func(t *testing.T) {
			v := viper.New()
			v.Set("STORE_DRIVER", driver)
			v.Set("STORE_DIR", filepath.Join(dir, "estado"))
			v.Set("SQLITE_PATH", filepath.Join(dir, "inventario.db"))
			cfg, err := config.FromViper(v)
			require.NoError(t, err)

			s, closeFn, err := statestore.Open(context.Background(), cfg)
			require.NoError(t, err)
			defer func() { assert.NoError(t, closeFn()) }()
			assert.True(t, isType(s))

			require.NoError(t, s.Save(context.Background(), repository.KeyAlerts, []byte(`[]`)))
			_, ok, err := s.Load(context.Background(), repository.KeyAlerts)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}
