package csvsource

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-agro/internal/domain"
	"github.com/jhoicas/inventario-agro/internal/domain/entity"
	"github.com/jhoicas/inventario-agro/pkg/logger"
)

const defaultFetchTimeout = 10 * time.Second

// Loader ProductSource que lee el CSV de cada almacén desde una ruta local o una URL http(s).
type Loader struct {
	sources map[entity.Warehouse]string
	parser  *Parser
	timeout time.Duration
	log     *logger.Logger
}

// NewLoader sources asocia cada almacén con su ruta o URL.
func NewLoader(sources map[entity.Warehouse]string, parser *Parser, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{sources: sources, parser: parser, timeout: defaultFetchTimeout, log: log.Component("csv")}
}

// LoadProducts lee y parsea el CSV del almacén. Un origen inaccesible devuelve ErrFetchFailure.
func (l *Loader) LoadProducts(ctx context.Context, warehouse entity.Warehouse) ([]entity.Product, error) {
	source := strings.TrimSpace(l.sources[warehouse])
	if source == "" {
		return nil, fmt.Errorf("%w: sin origen configurado para %s", domain.ErrFetchFailure, warehouse)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailure, err)
	}

	var (
		raw []byte
		err error
	)
	if isURL(source) {
		raw, err = l.fetch(source)
	} else {
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrFetchFailure, source, err)
	}

	products, err := l.parser.ParseProducts(bytes.NewReader(raw), warehouse)
	if err != nil {
		return nil, err
	}
	l.log.Info().Str("almacen", string(warehouse)).Str("origen", source).Int("productos", len(products)).Msg("catálogo cargado")
	return products, nil
}

// fetch GET con el cliente de fiber (fasthttp).
func (l *Loader) fetch(url string) ([]byte, error) {
	agent := fiber.Get(url).Timeout(l.timeout)
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("respuesta %d", status)
	}
	return body, nil
}

func isURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
