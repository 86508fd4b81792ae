package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"proyectofinal"`
	HTTPPort    string `envconfig:"HTTP_PORT" default:"5000"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory"`
	PostgresDSN string `envconfig:"POSTGRES_DSN"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"proyectofinal.db"`

	TokenSigningSecret string        `envconfig:"TOKEN_SIGNING_SECRET"`
	TokenTTL           time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	RequireVoterToken  bool          `envconfig:"REQUIRE_VOTER_TOKEN" default:"false"`
	AdminRequireToken  bool          `envconfig:"ADMIN_REQUIRE_TOKEN" default:"false"`
	BcryptCost         int           `envconfig:"BCRYPT_COST" default:"10"`

	CandidateCatalogPath string        `envconfig:"CANDIDATE_CATALOG_PATH" default:"config/candidatos.yaml"`
	OutboxPollInterval   time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
}

// Load reads an optional dotenv file and then the process environment.
// Variables already set in the environment win over the file. An empty
// envFile means ".env", which may be absent.
func Load(envFile string) (Config, error) {
	path := strings.TrimSpace(envFile)
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	cfg.StoreDriver = normalizeStoreDriver(cfg.StoreDriver)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return errors.New("config: POSTGRES_DSN is required when STORE_DRIVER=postgres")
		}
	case StoreDriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return errors.New("config: SQLITE_PATH is required when STORE_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q (memory, postgres or sqlite)", c.StoreDriver)
	}
	if strings.TrimSpace(c.HTTPPort) == "" {
		return errors.New("config: HTTP_PORT must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.OutboxPollInterval <= 0 {
		return fmt.Errorf("config: OUTBOX_POLL_INTERVAL must be positive, got %s", c.OutboxPollInterval)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("config: BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost)
	}
	return nil
}

// Override applies command-line values on top of a loaded config and
// validates the result. Empty values keep the loaded setting.
func (c Config) Override(httpPort string, storeDriver string) (Config, error) {
	if port := strings.TrimSpace(httpPort); port != "" {
		c.HTTPPort = port
	}
	if driver := normalizeStoreDriver(storeDriver); driver != "" {
		c.StoreDriver = driver
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func normalizeStoreDriver(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Persistent reports whether the configured driver survives restarts.
func (c Config) Persistent() bool {
	return c.StoreDriver != StoreDriverMemory
}
