package config

import (
	"errors"
	"log/slog"
	"net"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/intelliclaim/apiconfig/internal/endpoints"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	LocalFallbackURL    = "http://localhost:8000"
	DeployedFallbackURL = "https://intelliclaim-backend.onrender.com"
)

// Files loaded into the process environment before anything else.
// Variables already present are never overwritten, so earlier files win.
var envFiles = []string{".env.local", ".env"}

type ServerConfig struct {
	Address     string `mapstructure:"address"`
	Environment string `mapstructure:"environment"`
}

// APIConfig describes where the backend lives.
type APIConfig struct {
	// URL overrides the base URL verbatim when non-empty.
	URL         string `mapstructure:"url"`
	FallbackURL string `mapstructure:"fallback_url"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// NormalizeEnvironment lower-cases environment and maps the long profile
// names used by the backend service (development, production) to their
// short forms. Anything else is returned lower-cased.
func NormalizeEnvironment(environment string) string {
	switch env := strings.ToLower(strings.TrimSpace(environment)); env {
	case "development":
		return EnvDev
	case "production":
		return EnvProd
	default:
		return env
	}
}

// FallbackURL returns the base URL a deployment profile uses when no
// override is configured. Unknown profiles get the local address.
func FallbackURL(environment string) string {
	switch NormalizeEnvironment(environment) {
	case EnvStaging, EnvProd:
		return DeployedFallbackURL
	default:
		return LocalFallbackURL
	}
}

// DefaultLogLevel returns the log level a deployment profile uses when
// logging.level is not configured.
func DefaultLogLevel(environment string) string {
	switch NormalizeEnvironment(environment) {
	case EnvDev:
		return LogLevelDebug
	case EnvProd:
		return LogLevelWarn
	default:
		return LogLevelInfo
	}
}

func Load() (*Config, error) {
	loadEnvFiles()

	v := viper.New()

	v.SetDefault("server.environment", EnvDev)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("api.url", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindEnv("server.environment", "SERVER_ENVIRONMENT", "ENVIRONMENT"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Info("config file not found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", slog.String("file", v.ConfigFileUsed()))
	}

	environment := NormalizeEnvironment(v.GetString("server.environment"))
	v.SetDefault("api.fallback_url", FallbackURL(environment))
	v.SetDefault("logging.level", DefaultLogLevel(environment))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}
	cfg.Server.Environment = environment

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

// Endpoints resolves the base URL and derives the endpoint set from it.
// Call it once at startup and share the result.
func (a *APIConfig) Endpoints() *endpoints.Endpoints {
	return endpoints.Resolve(a.URL, a.FallbackURL)
}

func loadEnvFiles() {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err == nil {
			slog.Debug("loaded env file", slog.String("file", file))
		}
	}
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Server,
			validation.Required,
			validation.By(func(value interface{}) error {
				sc, ok := value.(ServerConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ServerConfig")
				}
				return validation.ValidateStruct(&sc,
					validation.Field(&sc.Environment,
						validation.Required,
						validation.In(EnvDev, EnvStaging, EnvProd),
					),
					validation.Field(&sc.Address,
						validation.Required,
						validation.By(validateHostPort),
					),
				)
			}),
		),
		validation.Field(&c.API,
			validation.Required,
			validation.By(func(value interface{}) error {
				ac, ok := value.(APIConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be an APIConfig")
				}
				// URL is used verbatim and never checked here.
				return validation.ValidateStruct(&ac,
					validation.Field(&ac.FallbackURL,
						validation.Required,
						validation.By(validateServerURL),
					),
				)
			}),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
				)
			}),
		),
	)
}

func validateHostPort(value interface{}) error {
	addr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return validation.NewError("validation_invalid_hostport", "must be in host:port format")
	}

	if port == "" {
		return validation.NewError("validation_invalid_port", "port cannot be empty")
	}

	if err := is.Port.Validate(port); err != nil {
		return validation.NewError("validation_invalid_port", "invalid port")
	}

	if host != "" {
		if err := is.Host.Validate(host); err != nil {
			return validation.NewError("validation_invalid_host", "invalid host")
		}
	}

	return nil
}

func validateServerURL(value interface{}) error {
	serverURL, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if serverURL == "" {
		return validation.NewError("validation_empty_url", "server URL cannot be empty")
	}

	parsedURL, err := url.Parse(serverURL)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}

	if parsedURL.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}

	return nil
}
