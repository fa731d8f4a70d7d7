package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockTotal_SumaYRedondea(t *testing.T) {
	got := stockTotal([]byte(`[{"codigo":"H01","stock":10.125},{"codigo":"H02","stock":0.1},{"codigo":"H03","stock":0.2}]`))
	require.NotNil(t, got)
	assert.Equal(t, "10.43", got.StringFixed(2))

	empty := stockTotal([]byte(`[]`))
	require.NotNil(t, empty)
	assert.True(t, empty.IsZero())
}

func TestStockTotal_PayloadInvalido(t *testing.T) {
	assert.Nil(t, stockTotal([]byte(`{no es json`)))
	assert.Nil(t, stockTotal([]byte(`{"codigo":"H01"}`)), "un objeto no es una lista de productos")
}
