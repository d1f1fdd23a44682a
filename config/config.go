package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config defines the app configuration.
type Config struct {
	Server struct {
		Port int    `yaml:"port" env:"PORT" env-default:"4000"`
		Env  string `yaml:"env" env:"ENV" env-default:"development"`
	} `yaml:"server"`
	Providers struct {
		OpenLibrary struct {
			BaseURL string `yaml:"base_url" env:"OPENLIBRARY_BASE_URL" env-default:"https://openlibrary.org"`
		} `yaml:"openlibrary"`
		GoogleBooks struct {
			BaseURL string `yaml:"base_url" env:"GOOGLEBOOKS_BASE_URL" env-default:"https://www.googleapis.com/books/v1"`
		} `yaml:"googlebooks"`
		Timeout time.Duration `yaml:"timeout" env:"PROVIDER_TIMEOUT" env-default:"10s"`
	} `yaml:"providers"`
	Search struct {
		MaxResults int `yaml:"max_results" env:"SEARCH_MAXRESULTS" env-default:"10"`
	} `yaml:"search"`
	Cache struct {
		Enabled  bool          `yaml:"enabled" env:"CACHE_ENABLED" env-default:"true"`
		TTL      time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"10m"`
		Capacity uint64        `yaml:"capacity" env:"CACHE_CAPACITY" env-default:"500"`
	} `yaml:"cache"`
	Limiter struct {
		RPS     float64 `yaml:"rps" env:"RPS" env-default:"2"`
		Burst   int     `yaml:"burst" env:"BURST" env-default:"4"`
		Enabled bool    `yaml:"enabled" env:"LENABLED" env-default:"true"`
	} `yaml:"limiter"`
	Cors struct {
		TrustedOrigins []string `yaml:"trusted_origins" env:"TRUSTEDORIGINS"`
	} `yaml:"cors"`
	Metrics struct {
		Enabled bool `yaml:"enabled" env:"MENABLED" env-default:"false"`
	} `yaml:"metrics"`
	BasicAuth struct {
		Username string `yaml:"username" env:"USERNAME"`
		Password string `yaml:"password" env:"PASSWORD"`
	} `yaml:"basic_auth"`
}

// Decode reads the app configuration from config.yml if the file exists,
// otherwise from environment variables alone. Defaults apply either way.
func Decode() (Config, error) {
	var cfg Config
	if _, err := os.Stat("config.yml"); err == nil {
		err = cleanenv.ReadConfig("config.yml", &cfg)
		return cfg, err
	}
	err := cleanenv.ReadEnv(&cfg)
	return cfg, err
}
