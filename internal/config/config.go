package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mhoo999/mail-maker/internal/domains"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env     string                 `yaml:"env" env:"ENV" env-default:"local"`
	Storage StorageConfig          `yaml:"storage"`
	Server  ServerConfig           `yaml:"rest"`
	Auth    AuthConfig             `yaml:"auth"`
	Layout  domains.LayoutSettings `yaml:"layout"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	DatabaseUrl string `yaml:"database_url" env:"DATABASE_URL"`
	SQLitePath  string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"./mail-maker.db"`
}

type ServerConfig struct {
	Port           string   `yaml:"port" env:"PORT" env-default:"8080"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

type AuthConfig struct {
	Enabled              bool          `yaml:"enabled" env:"AUTH_ENABLED" env-default:"false"`
	Secret               string        `yaml:"secret" env:"JWT_SECRET"`
	OperatorEmail        string        `yaml:"operator_email" env:"OPERATOR_EMAIL"`
	OperatorPasswordHash string        `yaml:"operator_password_hash" env:"OPERATOR_PASSWORD_HASH"`
	TokenTTL             time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"12h"`
}

// Load reads path when it is set and environment variables otherwise;
// environment variables override file values either way.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.Storage.DatabaseUrl == "" {
			return fmt.Errorf("storage.database_url is required for the %s driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Auth.Enabled && (c.Auth.Secret == "" || c.Auth.OperatorEmail == "" || c.Auth.OperatorPasswordHash == "") {
		return fmt.Errorf("auth.secret, auth.operator_email and auth.operator_password_hash are required when auth is enabled")
	}
	return nil
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path != "" {
		log.Printf("Loading config from %s", path)
	}

	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "config path")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
