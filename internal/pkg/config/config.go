package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, delays, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Backend      BackendConfig
	Storage      StorageConfig
	DB           DBConfig
	Redis        RedisConfig
	Messaging    MessagingConfig
	Simnet       SimnetConfig
	Payment      PaymentConfig
	Verification VerificationConfig
	Checkout     CheckoutConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Client-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tashkent"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"18000"` // 5*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// BackendConfig selects the booking backend strategy at construction time.
type BackendConfig struct {
	UseRealBackend bool          `envconfig:"USE_REAL_BACKEND" default:"false"`
	URL            string        `envconfig:"BACKEND_URL" default:"http://localhost:8000"`
	Token          string        `envconfig:"BACKEND_TOKEN" default:""`
	Timeout        time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

type StorageConfig struct {
	Driver  string `envconfig:"STORAGE_DRIVER" default:"file"` // file, memory, redis, postgres
	DataDir string `envconfig:"DATA_DIR" default:"./data"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"fieldbook"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"fieldbook"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tashkent"`
}

type RedisConfig struct {
	Addr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string `envconfig:"REDIS_PASSWORD" default:""`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"fieldbook:"`
}

type MessagingConfig struct {
	RabbitURL string `envconfig:"RABBITMQ_URL" default:""`
	Exchange  string `envconfig:"RABBITMQ_EXCHANGE" default:"fieldbook"`
}

// SimnetConfig tunes the simulated network latency of the local backend.
type SimnetConfig struct {
	Enabled     bool          `envconfig:"SIMNET_ENABLED" default:"true"`
	Scale       float64       `envconfig:"SIMNET_SCALE" default:"1.0"`
	Jitter      time.Duration `envconfig:"SIMNET_JITTER" default:"100ms"`
	FailureRate float64       `envconfig:"SIMNET_FAILURE_RATE" default:"0"`
}

type PaymentConfig struct {
	Delay time.Duration `envconfig:"PAYMENT_DELAY" default:"2s"`
}

type VerificationConfig struct {
	MaxAttempts int `envconfig:"VERIFY_MAX_ATTEMPTS" default:"3"`
}

// CheckoutConfig bounds how long an untouched checkout is kept.
type CheckoutConfig struct {
	IdleTTL time.Duration `envconfig:"CHECKOUT_IDLE_TTL" default:"30m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tashkent",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 18000,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Backend: BackendConfig{
			URL:     "http://localhost:8000",
			Timeout: 5 * time.Second,
		},
		Storage: StorageConfig{
			Driver: "memory",
		},
		Messaging: MessagingConfig{
			Exchange: "fieldbook",
		},
		Simnet: SimnetConfig{
			Enabled: false,
			Scale:   1.0,
		},
		Verification: VerificationConfig{
			MaxAttempts: 3,
		},
		Checkout: CheckoutConfig{
			IdleTTL: 30 * time.Minute,
		},
	}
}
