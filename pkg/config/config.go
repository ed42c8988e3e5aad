package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	HTTP         HTTPConfig
	DB           DBConfig
	Redis        RedisConfig
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
	Env          string `envconfig:"HOTELOPS_APP_ENV" required:"true"`
	Port         string `envconfig:"HOTELOPS_APP_PORT" default:"3001"`
	LogLevel     string `envconfig:"HOTELOPS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HOTELOPS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	ReadTimeout  time.Duration `envconfig:"HOTELOPS_HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"HOTELOPS_HTTP_WRITE_TIMEOUT" default:"15s"`
	CORSOrigins  []string      `envconfig:"HOTELOPS_CORS_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}

type DBConfig struct {
	DSN    string `envconfig:"HOTELOPS_DB_DSN"`
	Driver string `envconfig:"HOTELOPS_DB_DRIVER" default:"sqlite"`

	LegacyHost     string `envconfig:"HOTELOPS_DB_HOST"`
	LegacyPort     int    `envconfig:"HOTELOPS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"HOTELOPS_DB_USER"`
	LegacyPassword string `envconfig:"HOTELOPS_DB_PASSWORD"`
	LegacyName     string `envconfig:"HOTELOPS_DB_NAME"`
	LegacySSLMode  string `envconfig:"HOTELOPS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"HOTELOPS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HOTELOPS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HOTELOPS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HOTELOPS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver is the embedded sqlite engine.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DriverSQLite)
}

// RedisConfig is optional; an empty URL and address disables idempotency replay.
type RedisConfig struct {
	URL          string        `envconfig:"HOTELOPS_REDIS_URL"`
	Address      string        `envconfig:"HOTELOPS_REDIS_ADDR"`
	Password     string        `envconfig:"HOTELOPS_REDIS_PASSWORD"`
	DB           int           `envconfig:"HOTELOPS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HOTELOPS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HOTELOPS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HOTELOPS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HOTELOPS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HOTELOPS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"HOTELOPS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	switch {
	case db.IsSQLite():
		if db.DSN == "" {
			db.DSN = defaultSQLiteDSN
		}
		return nil
	case strings.EqualFold(strings.TrimSpace(db.Driver), DriverPostgres):
	default:
		return fmt.Errorf("unsupported %s %q", EnvDBDriver, db.Driver)
	}

	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
