package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Drivers de persistencia soportados (STORE_DRIVER).
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMinio    = "minio"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Data      DataConfig
	Inventory InventoryConfig
	Store     StoreConfig
	DB        DBConfig
	Redis     RedisConfig
	Minio     MinioConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DataConfig origen de los CSV base: ruta local o URL http(s).
type DataConfig struct {
	Conventional string
	Organic      string
	Encoding     string // utf-8 | latin1
}

// InventoryConfig comportamiento de la sesión.
type InventoryConfig struct {
	Operator       string // usuario por defecto de los movimientos
	KeepReadAlerts bool   // conservar "leída" al recalcular alertas
}

// StoreConfig selección del StateStore.
type StoreConfig struct {
	Driver     string
	Dir        string // driver file
	SQLitePath string // driver sqlite
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN connection string con URL encoding para caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig conexión del driver redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// MinioConfig conexión del driver minio.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia ya cargada (tests).
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-agro"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Data: DataConfig{
			Conventional: getString(v, "DATA_CONVENTIONAL", "data/productos_convencional.csv"),
			Organic:      getString(v, "DATA_ORGANIC", "data/productos_organico.csv"),
			Encoding:     strings.ToLower(getString(v, "CSV_ENCODING", "utf-8")),
		},
		Inventory: InventoryConfig{
			Operator:       getString(v, "OPERATOR_NAME", "Usuario Actual"),
			KeepReadAlerts: getBool(v, "ALERTS_KEEP_READ", false),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(getString(v, "STORE_DRIVER", StoreFile)),
			Dir:        getString(v, "STORE_DIR", "state"),
			SQLitePath: getString(v, "SQLITE_PATH", "state/inventario.db"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventario_agro"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			Prefix:   getString(v, "REDIS_PREFIX", "inventario:"),
		},
		Minio: MinioConfig{
			Endpoint:  getString(v, "MINIO_ENDPOINT", ""),
			AccessKey: getString(v, "MINIO_ACCESS_KEY", ""),
			SecretKey: getString(v, "MINIO_SECRET_KEY", ""),
			Bucket:    getString(v, "MINIO_BUCKET", "inventario"),
			UseSSL:    getBool(v, "MINIO_USE_SSL", false),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rechaza drivers y encodings desconocidos.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StoreFile, StoreSQLite, StorePostgres, StoreRedis, StoreMinio:
	default:
		return fmt.Errorf("config: STORE_DRIVER %q no soportado", c.Store.Driver)
	}
	switch c.Data.Encoding {
	case "utf-8", "utf8", "latin1", "iso-8859-1":
	default:
		return fmt.Errorf("config: CSV_ENCODING %q no soportado", c.Data.Encoding)
	}
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("config: HTTP_PORT inválido")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		n, err := cast.ToIntE(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := cast.ToBoolE(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
