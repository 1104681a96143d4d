package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//go:embed config.yaml
var defaultConfig embed.FS

// Config aggregates configuration across the riskmentor environment.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Telegram TelegramConfig `yaml:"telegram"`
	Database DatabaseConfig `yaml:"database"`
	Provider Provider       `yaml:"provider"`
	Learning LearningConfig `yaml:"learning"`
	Ops      OpsConfig      `yaml:"ops"`
	Observe  ObserveConfig  `yaml:"observe"`
}

type TelegramConfig struct {
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Provider selects the external llm backend.
type Provider struct {
	Name     string `yaml:"name"`
	Model    string `yaml:"model"`
	ApiKey   string `yaml:"apikey"`
	Endpoint string `yaml:"endpoint"`
}

type LearningConfig struct {
	// Threshold is the minimum percentage of correct answers that
	// completes a lesson.
	Threshold float64 `yaml:"threshold"`
	// Questions asked per lesson quiz.
	Questions int `yaml:"questions"`
}

type OpsConfig struct {
	Enable  bool   `yaml:"enable"`
	Address string `yaml:"address"`
}

type ObserveConfig struct {
	Enable bool `yaml:"enable"`
	// if not set but enable will use stdout
	Exporter        string `yaml:"exporter"`
	TraceEndpoint   string `yaml:"traceendpoint"`
	MetricsEndpoint string `yaml:"metricsendpoint"`
	// secure endpoint (https)
	Secure bool `yaml:"secure"`
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}
	if c.Provider.Name == "" {
		return errors.New("provider name is required")
	}
	if c.Learning.Threshold <= 0 || c.Learning.Threshold > 100 {
		return fmt.Errorf("learning threshold must be in (0,100], got %v", c.Learning.Threshold)
	}
	if c.Learning.Questions < 1 {
		return fmt.Errorf("questions per lesson must be at least 1, got %d", c.Learning.Questions)
	}
	return nil
}

// load configuration from default embedded config.yaml, provided config
// file, env and flags before validation.
func LoadAndValidate(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// env variables, RISKMENTOR_TELEGRAM_TOKEN and friends
	v.SetEnvPrefix("RISKMENTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// pflag binding
	for flagName, configKey := range flagToConfigKeyMap {
		v.BindPFlag(configKey, flags.Lookup(flagName))
	}

	// defaults from the embedded config.yaml
	defaultBytes, _ := defaultConfig.ReadFile("config.yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultBytes)); err != nil {
		return nil, fmt.Errorf("failed to read default config: %w", err)
	}

	// external config file if provided
	configFile, _ := flags.GetString(FLAG_CONFIG_FILE)
	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		providedBytes, _ := io.ReadAll(f)
		if err := v.MergeConfig(bytes.NewReader(providedBytes)); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// plain TELEGRAM_TOKEN wins over nothing but keeps the common
	// deployment convention working
	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = os.Getenv("TELEGRAM_TOKEN")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
