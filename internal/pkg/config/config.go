package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Telegram     TelegramConfig     `yaml:"telegram"`
	FootballData FootballDataConfig `yaml:"football_data"`
	OddsAPI      OddsAPIConfig      `yaml:"odds_api"`
	Gemini       GeminiConfig       `yaml:"gemini"`
	Logging      LoggingConfig      `yaml:"logging"`
	Health       HealthConfig       `yaml:"health"`
}

type TelegramConfig struct {
	Token         string `yaml:"token"` // can be set via TELEGRAM_BOT_TOKEN env
	UpdateTimeout int    `yaml:"update_timeout"`
}

type FootballDataConfig struct {
	BaseURL  string        `yaml:"base_url"`
	APIToken string        `yaml:"api_token"` // can be set via FOOTBALL_DATA_TOKEN env
	Timeout  time.Duration `yaml:"timeout"`
}

type OddsAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // can be set via ODDS_API_KEY env
	Regions string        `yaml:"regions"` // comma-separated, e.g. "eu"
	Timeout time.Duration `yaml:"timeout"`
}

type GeminiConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // can be set via GEMINI_API_KEY env
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type LoggingConfig struct {
	Level string        `yaml:"level"` // DEBUG, INFO, WARN, ERROR
	File  FileLogConfig `yaml:"file"`
}

type FileLogConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type HealthConfig struct {
	Port              int           `yaml:"port"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}
