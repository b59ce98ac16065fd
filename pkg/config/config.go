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
	DB           DBConfig
	Redis        RedisConfig
	Cache        CacheConfig
	CORS         CORSConfig
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
	Env          string `envconfig:"BOOKHAVEN_APP_ENV" required:"true"`
	Port         string `envconfig:"BOOKHAVEN_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"BOOKHAVEN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BOOKHAVEN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BOOKHAVEN_DB_DSN"`
	Driver string `envconfig:"BOOKHAVEN_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BOOKHAVEN_DB_HOST"`
	LegacyPort     int    `envconfig:"BOOKHAVEN_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BOOKHAVEN_DB_USER"`
	LegacyPassword string `envconfig:"BOOKHAVEN_DB_PASSWORD"`
	LegacyName     string `envconfig:"BOOKHAVEN_DB_NAME"`
	LegacySSLMode  string `envconfig:"BOOKHAVEN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BOOKHAVEN_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BOOKHAVEN_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BOOKHAVEN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BOOKHAVEN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BOOKHAVEN_REDIS_URL"`
	Address      string        `envconfig:"BOOKHAVEN_REDIS_ADDR"`
	Password     string        `envconfig:"BOOKHAVEN_REDIS_PASSWORD"`
	DB           int           `envconfig:"BOOKHAVEN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BOOKHAVEN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BOOKHAVEN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BOOKHAVEN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BOOKHAVEN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BOOKHAVEN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CacheConfig tunes the server-side collection cache.
type CacheConfig struct {
	CollectionTTL time.Duration `envconfig:"BOOKHAVEN_CACHE_COLLECTION_TTL" default:"5m"`
}

// CORSConfig holds the origin allow-list. Only listed origins may call the
// API with credentials; everything else is rejected at the boundary.
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BOOKHAVEN_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BOOKHAVEN_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
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
