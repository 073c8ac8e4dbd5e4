package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Backend struct {
		URL     string        `env:"BACKEND_URL" env-required:"true" env-description:"Base URL of the blog backend"`
		Timeout time.Duration `env:"BACKEND_TIMEOUT" env-default:"0s" env-description:"Per-call timeout, 0 disables it"`
	}
	View struct {
		Title     string `env:"VIEW_TITLE" env-default:"Crypto Blog"`
		BannerURL string `env:"VIEW_BANNER_URL" env-default:"https://loremflickr.com/g/1200/200/cryptocurrency?lock=1"`
		TimeZone  string `env:"VIEW_TIME_ZONE" env-default:"Local"`
	}
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// New reads the configuration once per process. A .env file in the working
// directory, when present, is loaded into the environment first.
func New() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = Load(".env")
	})
	return cfg, loadErr
}

// Load builds a Config from the environment after applying the given dotenv files.
func Load(dotenv ...string) (*Config, error) {
	for _, file := range dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}
	return c, nil
}
