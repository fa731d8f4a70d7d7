package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPv4DSN_SinCambiosCuandoNoHayQueResolver(t *testing.T) {
	for _, dsn := range []string{
		"postgres://u:p@127.0.0.1:5432/inventario?sslmode=disable",
		"host=localhost user=postgres",
		"postgres:///inventario",
	} {
		assert.Equal(t, dsn, ipv4DSN(dsn))
	}
}

func TestIPv4DSN_ResuelveLocalhost(t *testing.T) {
	got := ipv4DSN("postgres://u:p@localhost/inventario")
	assert.Contains(t, []string{
		"postgres://u:p@127.0.0.1:5432/inventario",
		"postgres://u:p@localhost/inventario",
	}, got)
}
