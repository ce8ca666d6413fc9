package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// devJWTSecret se usa solo fuera de producción cuando JWT_SECRET no está definido.
const devJWTSecret = "dev-secret-dual-saude-cambiar-en-produccion"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	Panel    PanelConfig
	HTTP     HTTPConfig
	Features FeatureConfig
	Import   ImportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env           string // development, staging, production
	Name          string
	LogLevel      string
	StorageDriver string // postgres | memory
}

// IsProduction indica si la app corre en producción.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
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
	AutoMigrate bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
// Algunos proveedores entregan el esquema postgres:// y otros postgresql://; ambos son válidos para pgx.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
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

// JWTConfig configuración del token de la API.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// PanelConfig configuración de la sesión por cookie del painel.
type PanelConfig struct {
	SessionMinutes int
	CookieName     string
	CookieSecure   bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins string
	LoginRateLimit string // formato ulule/limiter, ej. "10-M"
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FeatureConfig capacidades opcionales resueltas una sola vez al arrancar.
type FeatureConfig struct {
	PaymentDestinations bool
	DemoSetup           bool
	AdminAPIKey         string // vacío = rutas de administración deshabilitadas
}

// ImportConfig límites de la importación de planillas.
type ImportConfig struct {
	MaxUploadMB int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	// .env al entorno del proceso, así también lo ven las variables PG* de pgx
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:           getString(v, "APP_ENV", "development"),
			Name:          getString(v, "APP_NAME", "dual-saude-api"),
			LogLevel:      getString(v, "LOG_LEVEL", "info"),
			StorageDriver: strings.ToLower(getString(v, "STORAGE_DRIVER", StoragePostgres)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "dual_saude"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24),
			Issuer:     getString(v, "JWT_ISSUER", "dual-saude-api"),
		},
		Panel: PanelConfig{
			SessionMinutes: getInt(v, "PANEL_SESSION_MINUTES", 60*24),
			CookieName:     getString(v, "PANEL_COOKIE_NAME", "ds_token"),
			CookieSecure:   getBool(v, "PANEL_COOKIE_SECURE", false),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 8080),
			AllowedOrigins: getString(v, "CORS_ALLOWED_ORIGINS", "*"),
			LoginRateLimit: getString(v, "LOGIN_RATE_LIMIT", "10-M"),
		},
		Features: FeatureConfig{
			PaymentDestinations: getBool(v, "FEATURE_PAYMENT_DESTINATIONS", true),
			DemoSetup:           getBool(v, "DEMO_SETUP_ENABLED", true),
			AdminAPIKey:         getString(v, "ADMIN_API_KEY", ""),
		},
		Import: ImportConfig{
			MaxUploadMB: getInt(v, "IMPORT_MAX_UPLOAD_MB", 10),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsingDevSecret informa si se está usando el secreto de desarrollo.
func (c *Config) UsingDevSecret() bool {
	return c.JWT.Secret == devJWTSecret
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		if c.App.IsProduction() {
			return errors.New("config: JWT_SECRET es obligatorio en producción")
		}
		c.JWT.Secret = devJWTSecret
	}
	switch c.App.StorageDriver {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("config: STORAGE_DRIVER desconocido %q", c.App.StorageDriver)
	}
	if c.JWT.Expiration <= 0 {
		c.JWT.Expiration = 60 * 24
	}
	if c.Panel.SessionMinutes <= 0 {
		c.Panel.SessionMinutes = 60 * 24
	}
	if c.Import.MaxUploadMB <= 0 {
		c.Import.MaxUploadMB = 10
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
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
