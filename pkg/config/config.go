package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the envconfig prefix shared by every service binary.
const EnvPrefix = "recircle"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	LoginRate     LoginRateConfig
	FeatureFlags  FeatureFlagsConfig
	ClaimGuardTTL time.Duration `envconfig:"RECIRCLE_CLAIM_IDEMPOTENCY_TTL" default:"24h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RECIRCLE_APP_ENV" default:"dev"`
	Port         string `envconfig:"RECIRCLE_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"RECIRCLE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RECIRCLE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"RECIRCLE_DB_DSN"`

	Host     string `envconfig:"RECIRCLE_DB_HOST"`
	Port     int    `envconfig:"RECIRCLE_DB_PORT" default:"5432"`
	User     string `envconfig:"RECIRCLE_DB_USER"`
	Password string `envconfig:"RECIRCLE_DB_PASSWORD"`
	Name     string `envconfig:"RECIRCLE_DB_NAME"`
	SSLMode  string `envconfig:"RECIRCLE_DB_SSLMODE" default:"disable"`

	SQLitePath string `envconfig:"RECIRCLE_SQLITE_PATH" default:"recircle.db"`

	MaxOpenConns    int           `envconfig:"RECIRCLE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RECIRCLE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RECIRCLE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RECIRCLE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"RECIRCLE_REDIS_URL"`
	Address      string        `envconfig:"RECIRCLE_REDIS_ADDR"`
	Password     string        `envconfig:"RECIRCLE_REDIS_PASSWORD"`
	DB           int           `envconfig:"RECIRCLE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RECIRCLE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RECIRCLE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RECIRCLE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RECIRCLE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RECIRCLE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis backend was configured at all. The API
// degrades to running without claim idempotency or login rate limiting when
// it is absent (local dev).
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"RECIRCLE_JWT_SECRET" default:"dev-only-secret"`
	Issuer            string `envconfig:"RECIRCLE_JWT_ISSUER" default:"recircle"`
	ExpirationMinutes int    `envconfig:"RECIRCLE_JWT_EXPIRATION_MINUTES" default:"720"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"RECIRCLE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RECIRCLE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RECIRCLE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RECIRCLE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RECIRCLE_ARGON_KEY_LEN" default:"32"`
}

type LoginRateConfig struct {
	Window  time.Duration `envconfig:"RECIRCLE_LOGIN_RATE_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"RECIRCLE_LOGIN_RATE_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"RECIRCLE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"RECIRCLE_AUTO_MIGRATE" default:"false"`
	SeedSample  bool `envconfig:"RECIRCLE_SEED_SAMPLE_DATA" default:"true"`
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if useSQLite {
		if db.DSN == "" {
			db.DSN = db.SQLitePath
		}
		return nil
	}
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	required := []struct {
		env string
		val string
	}{
		{"RECIRCLE_DB_HOST", db.Host},
		{"RECIRCLE_DB_USER", db.User},
		{"RECIRCLE_DB_NAME", db.Name},
	}
	for _, req := range required {
		if req.val == "" {
			missing = append(missing, req.env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either RECIRCLE_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
