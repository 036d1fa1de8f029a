package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	once     sync.Once
	instance *Config
)

const envFile = "./configs/.env"

type Config struct {
	v *viper.Viper
}

func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = fromEnv()
	})
	return instance
}

func fromEnv() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("API_ADDRESS", "127.0.0.1:8080")
	v.SetDefault("STORAGE_DRIVER", "sqlite")
	v.SetDefault("SQLITE_PATH", "./data/chai.db")
	v.SetDefault("MIGRATIONS_DIR", "./migrations")
	v.SetDefault("TIMEZONE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PATH", "")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	return &Config{v: v}
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// Set overrides a value, used by CLI flags and tests.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// Location resolves TIMEZONE, falling back to the process local zone.
func (c *Config) Location() (*time.Location, error) {
	name := c.GetString("TIMEZONE")
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.New("loading timezone error: " + err.Error())
	}
	return loc, nil
}
