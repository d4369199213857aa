package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix scopes every environment variable read by Load.
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Checkout     CheckoutConfig
	Catalog      CatalogConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env            string   `envconfig:"SHILPOKOTHA_APP_ENV" default:"development"`
	Port           string   `envconfig:"SHILPOKOTHA_APP_PORT" default:"8080"`
	LogLevel       string   `envconfig:"SHILPOKOTHA_LOG_LEVEL" default:"info"`
	LogWarnStack   bool     `envconfig:"SHILPOKOTHA_LOG_WARN_STACK" default:"false"`
	AllowedOrigins []string `envconfig:"SHILPOKOTHA_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SHILPOKOTHA_DB_DSN"`
	Driver string `envconfig:"SHILPOKOTHA_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"SHILPOKOTHA_DB_HOST"`
	Port     int    `envconfig:"SHILPOKOTHA_DB_PORT" default:"5432"`
	User     string `envconfig:"SHILPOKOTHA_DB_USER"`
	Password string `envconfig:"SHILPOKOTHA_DB_PASSWORD"`
	Name     string `envconfig:"SHILPOKOTHA_DB_NAME"`
	SSLMode  string `envconfig:"SHILPOKOTHA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHILPOKOTHA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHILPOKOTHA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHILPOKOTHA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHILPOKOTHA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("db dsn or host/user/name is required")
	}
	d.DSN = fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"SHILPOKOTHA_REDIS_URL"`
	Address      string        `envconfig:"SHILPOKOTHA_REDIS_ADDR"`
	Password     string        `envconfig:"SHILPOKOTHA_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHILPOKOTHA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHILPOKOTHA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHILPOKOTHA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHILPOKOTHA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHILPOKOTHA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHILPOKOTHA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SHILPOKOTHA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SHILPOKOTHA_JWT_ISSUER" default:"shilpokotha"`
	ExpirationMinutes int    `envconfig:"SHILPOKOTHA_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SHILPOKOTHA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SHILPOKOTHA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SHILPOKOTHA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SHILPOKOTHA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SHILPOKOTHA_ARGON_KEY_LEN" default:"32"`
}

// CheckoutConfig carries the storefront totals knobs. Defaults mirror the
// production rates: 10% tax, 375.00 standard / 1125.00 express shipping.
type CheckoutConfig struct {
	TaxRate          string `envconfig:"SHILPOKOTHA_CHECKOUT_TAX_RATE" default:"0.10"`
	StandardShipping string `envconfig:"SHILPOKOTHA_CHECKOUT_STANDARD_SHIPPING" default:"375.00"`
	ExpressShipping  string `envconfig:"SHILPOKOTHA_CHECKOUT_EXPRESS_SHIPPING" default:"1125.00"`
}

type CatalogConfig struct {
	// SeedPath optionally overrides the embedded catalog seed.
	SeedPath string `envconfig:"SHILPOKOTHA_CATALOG_SEED_PATH"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SHILPOKOTHA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SHILPOKOTHA_AUTO_MIGRATE" default:"false"`
	UseMemoryKV bool `envconfig:"SHILPOKOTHA_USE_MEMORY_KV" default:"false"`
}
