package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the upstream APIs, the availability cache, background workers and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment when set.
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Brand generation and retried registrar calls can take a while.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"90s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins are the browser origins allowed to call the API with
		// credentials. Empty allows any origin without credentials.
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"brandkit" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Registrar configures the .cv registrar REST API client.
	Registrar struct {
		BaseURL string `env:"REGISTRAR_BASE_URL" env-default:"https://api.cv.domains/v1" yaml:"baseUrl"`
		// Token is the bearer token. Calls fail with a configuration error while it is empty.
		Token string `env:"REGISTRAR_API_TOKEN" env-default:"" yaml:"token"`
		// Timeout bounds a single attempt.
		Timeout time.Duration `env:"REGISTRAR_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// Retries is the number of retries after the first attempt.
		Retries   int           `env:"REGISTRAR_RETRIES" env-default:"3" yaml:"retries"`
		RetryBase time.Duration `env:"REGISTRAR_RETRY_BASE" env-default:"1s" yaml:"retryBase"`
		RetryCap  time.Duration `env:"REGISTRAR_RETRY_CAP" env-default:"10s" yaml:"retryCap"`
	} `yaml:"registrar"`

	// Generation configures the Gemini text generation client.
	Generation struct {
		BaseURL string        `env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta" yaml:"baseUrl"` //nolint: lll
		APIKey  string        `env:"GEMINI_API_KEY" env-default:"" yaml:"apiKey"`
		Model   string        `env:"GEMINI_MODEL" env-default:"gemini-2.0-flash" yaml:"model"`
		Timeout time.Duration `env:"GEMINI_TIMEOUT" env-default:"60s" yaml:"timeout"`
		Retries int           `env:"GEMINI_RETRIES" env-default:"3" yaml:"retries"`
	} `yaml:"generation"`

	// Cache configures the Redis availability cache.
	Cache struct {
		Enabled  bool          `env:"CACHE_ENABLED" env-default:"false" yaml:"enabled"`
		Addr     string        `env:"CACHE_REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Password string        `env:"CACHE_REDIS_PASSWORD" env-default:"" yaml:"password"`
		DB       int           `env:"CACHE_REDIS_DB" env-default:"0" yaml:"db"`
		TTL      time.Duration `env:"CACHE_TTL" env-default:"5m" yaml:"ttl"`
	} `yaml:"cache"`

	// Worker configures the River provisioning workers.
	Worker struct {
		// MaxWorkers bounds how many provisions run concurrently.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is the number of times a provision job is attempted.
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// JWT holds the RS256 key pair used to issue and verify API tokens.
	JWT struct {
		// PublicKey is the PEM encoded key used to verify bearer tokens.
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is the PEM encoded key used by the jwt command.
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from environment variables and defaults only. It is
// used when no config file exists.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
