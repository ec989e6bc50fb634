package config

import (
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

// Config reads settings from the environment, after loading the .env file
// at CONFIG_PATH (./configs/.env by default) when it exists.
type Config struct {
}

func New() *Config {
	once.Do(func() {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/.env"
		}
		if err := godotenv.Load(path); err != nil {
			slog.Info("no .env file loaded, using environment variables", slog.String("path", path))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) GetBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", slog.String("key", key), slog.String("value", v))
		return def
	}
	return b
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", slog.String("key", key), slog.String("value", v))
		return def
	}
	return d
}

// GetLocation loads the IANA zone named by key. Streak days and "today" are
// counted in this zone.
func (c *Config) GetLocation(key string) *time.Location {
	name := os.Getenv(key)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("config invalid time zone, using UTC", slog.String("key", key), slog.String("value", name))
		return time.UTC
	}
	return loc
}
