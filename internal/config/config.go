package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/claude/allblack/internal/kv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	// Seed loads the sample tests into an empty history at start.
	Seed bool `yaml:"seed"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig selects where preferences are persisted: memory, sqlite,
// postgres or redis.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir"`
}

type DatabaseConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Name       string `yaml:"name"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	SSLMode    string `yaml:"sslmode"`
	Migrations string `yaml:"migrations"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	JSON       bool   `yaml:"json"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// KVOptions translates the storage settings for kv.Open.
func (c *Config) KVOptions() kv.Options {
	opts := kv.Options{
		Backend:       c.Storage.Backend,
		Dir:           c.Storage.DataDir,
		RedisAddr:     c.Redis.Addr,
		RedisPassword: c.Redis.Password,
		RedisDB:       c.Redis.DB,
	}
	if c.Storage.Backend == kv.BackendPostgres {
		opts.DSN = c.Database.DSN()
		opts.MigrationsPath = c.Database.Migrations
	}
	return opts
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Host: "127.0.0.1", Port: 8080},
		Storage:   StorageConfig{Backend: kv.BackendSQLite, DataDir: "data"},
		Database:  DatabaseConfig{Port: 5432, Migrations: "migrations"},
		Redis:     RedisConfig{Addr: "localhost:6379"},
		Log:       LogConfig{Level: "info"},
		Tailscale: TailscaleConfig{Hostname: "allblack", StateDir: "tsnet-state"},
		Seed:      true,
	}
}

// Load reads config from a YAML file on top of Default, then applies
// environment variable overrides. An empty path skips the file. Variables
// from a .env file in the working directory are loaded first and never
// replace variables already set.
//
// Env vars use the prefix ALLBLACK_ and underscore-separated paths:
//
//	ALLBLACK_SERVER_HOST, ALLBLACK_SERVER_PORT,
//	ALLBLACK_STORAGE_BACKEND, ALLBLACK_DATA_DIR,
//	ALLBLACK_DB_HOST, ALLBLACK_DB_PORT, ALLBLACK_DB_NAME,
//	ALLBLACK_DB_USER, ALLBLACK_DB_PASSWORD, ALLBLACK_DB_SSLMODE,
//	ALLBLACK_REDIS_ADDR, ALLBLACK_REDIS_PASSWORD, ALLBLACK_REDIS_DB,
//	ALLBLACK_LOG_LEVEL, ALLBLACK_LOG_FILE, ALLBLACK_TAILSCALE
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setString := func(name string, dst *string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	setInt := func(name string, dst *int) {
		if v := os.Getenv(name); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	setString("ALLBLACK_SERVER_HOST", &cfg.Server.Host)
	setInt("ALLBLACK_SERVER_PORT", &cfg.Server.Port)
	setString("ALLBLACK_STORAGE_BACKEND", &cfg.Storage.Backend)
	setString("ALLBLACK_DATA_DIR", &cfg.Storage.DataDir)
	setString("ALLBLACK_DB_HOST", &cfg.Database.Host)
	setInt("ALLBLACK_DB_PORT", &cfg.Database.Port)
	setString("ALLBLACK_DB_NAME", &cfg.Database.Name)
	setString("ALLBLACK_DB_USER", &cfg.Database.User)
	setString("ALLBLACK_DB_PASSWORD", &cfg.Database.Password)
	setString("ALLBLACK_DB_SSLMODE", &cfg.Database.SSLMode)
	setString("ALLBLACK_REDIS_ADDR", &cfg.Redis.Addr)
	setString("ALLBLACK_REDIS_PASSWORD", &cfg.Redis.Password)
	setInt("ALLBLACK_REDIS_DB", &cfg.Redis.DB)
	setString("ALLBLACK_LOG_LEVEL", &cfg.Log.Level)
	setString("ALLBLACK_LOG_FILE", &cfg.Log.File)

	if v := os.Getenv("ALLBLACK_TAILSCALE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = b
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	switch c.Storage.Backend {
	case kv.BackendMemory:
	case kv.BackendSQLite:
		if c.Storage.DataDir == "" {
			return fmt.Errorf("storage.data_dir is required for sqlite")
		}
	case kv.BackendPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database.host is required")
		}
		if c.Database.Port == 0 {
			return fmt.Errorf("database.port is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("database.name is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database.user is required")
		}
	case kv.BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required")
		}
	default:
		return fmt.Errorf("storage.backend %q is not one of memory, sqlite, postgres, redis", c.Storage.Backend)
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
