package config

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is everything one batch run needs. Values come from the
// environment, optionally layered over a YAML file.
type Config struct {
	// Webhooks receives every notification; "#" means disabled.
	Webhooks []string `env:"SLACK_WEBHOOK_URL" env-default:"#" env-separator:"," yaml:"webhooks"`
	// DomainsFile holds one domain per line; "#" means not configured.
	DomainsFile string `env:"DOMAINS_FILE" env-default:"#" yaml:"domainsFile"`
	// MaxWorkers bounds how many domains are checked at once.
	MaxWorkers int `env:"MAX_WORKERS" env-default:"5" yaml:"maxWorkers"`

	CheckAPIURL   string        `env:"CHECK_API_URL" env-default:"https://check.skiddle.id/" yaml:"checkApiUrl"`
	CheckTimeout  time.Duration `env:"CHECK_TIMEOUT" env-default:"10s" yaml:"checkTimeout"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" env-default:"10s" yaml:"notifyTimeout"`

	LogDir       string `env:"LOG_DIR" env-default:"." yaml:"logDir"`
	LogFile      string `env:"LOG_FILE" env-default:"link_checker.log" yaml:"logFile"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info" yaml:"logLevel"`
	LogMaxSizeMB int    `env:"LOG_MAX_SIZE_MB" env-default:"100" yaml:"logMaxSizeMb"`

	// TZOffsetHours is the fixed offset used when rendering timestamps.
	TZOffsetHours int `env:"TZ_OFFSET_HOURS" env-default:"7" yaml:"tzOffsetHours"`
}

// FromEnv reads the configuration from environment variables only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read env")
	}
	return &cfg, cfg.Validate()
}

// Load reads a YAML file and then applies environment overrides. An empty
// path falls back to FromEnv.
func Load(path string) (*Config, error) {
	if path == "" {
		return FromEnv()
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, errors.Wrap(err, "could not read config")
	}
	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxWorkers < 1 {
		return errors.Errorf("MAX_WORKERS must be >= 1, got %d", c.MaxWorkers)
	}
	if c.CheckTimeout <= 0 {
		return errors.Errorf("CHECK_TIMEOUT must be positive, got %s", c.CheckTimeout)
	}
	if c.NotifyTimeout <= 0 {
		return errors.Errorf("NOTIFY_TIMEOUT must be positive, got %s", c.NotifyTimeout)
	}
	if c.TZOffsetHours < -12 || c.TZOffsetHours > 14 {
		return errors.Errorf("TZ_OFFSET_HOURS out of range: %d", c.TZOffsetHours)
	}
	return nil
}

// Location is the fixed display zone for message timestamps.
func (c *Config) Location() *time.Location {
	if c.TZOffsetHours == 7 {
		return time.FixedZone("WIB", 7*60*60)
	}
	return time.FixedZone("", c.TZOffsetHours*60*60)
}
