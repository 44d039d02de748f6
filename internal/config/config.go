// Package config loads application configuration from an optional YAML file
// and QUIZDECK_* environment variables. File location follows XDG:
// $XDG_CONFIG_HOME/quizdeck/config.yaml, falling back to
// ~/.config/quizdeck/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	// UserID identifies this user in results and on the leaderboard.
	UserID string `mapstructure:"user_id"`

	// Subject selects the question domain (e.g. "english", "cloud",
	// "deep-learning").
	Subject string `mapstructure:"subject"`

	// Difficulty partitions results and stats: easy, medium, or hard.
	Difficulty string `mapstructure:"difficulty"`

	// Source selects where questions come from: "api" for the remote
	// question service, "llm" for direct LLM generation.
	Source string `mapstructure:"source"`

	// APIBaseURL is the question service root, required when Source is
	// "api".
	APIBaseURL string `mapstructure:"api_base_url"`

	Counts CountsConfig `mapstructure:"counts"`

	// QuestionSeconds is the per-question countdown; 0 disables it.
	QuestionSeconds int `mapstructure:"question_seconds"`

	// Debug raises the log level.
	Debug bool `mapstructure:"debug"`
}

// CountsConfig sets how many questions of each type a session serves.
type CountsConfig struct {
	MCQ        int `mapstructure:"mcq"`
	Structured int `mapstructure:"structured"`
	FillBlank  int `mapstructure:"fill_blank"`
}

// Load reads configuration, layering environment variables over the optional
// config file over defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("user_id", "local")
	v.SetDefault("subject", "english")
	v.SetDefault("difficulty", "medium")
	v.SetDefault("source", "llm")
	v.SetDefault("counts.mcq", 15)
	v.SetDefault("counts.structured", 5)
	v.SetDefault("counts.fill_blank", 0)
	v.SetDefault("question_seconds", 60)

	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("QUIZDECK")
	v.AutomaticEnv()
	v.BindEnv("user_id", "QUIZDECK_USER")
	v.BindEnv("subject", "QUIZDECK_SUBJECT")
	v.BindEnv("difficulty", "QUIZDECK_DIFFICULTY")
	v.BindEnv("source", "QUIZDECK_SOURCE")
	v.BindEnv("api_base_url", "QUIZDECK_API_BASE_URL")
	v.BindEnv("debug", "QUIZDECK_DEBUG")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the app cannot run with.
func (c *Config) Validate() error {
	switch c.Difficulty {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("unknown difficulty: %q", c.Difficulty)
	}

	switch c.Source {
	case "llm":
	case "api":
		if c.APIBaseURL == "" {
			return fmt.Errorf("QUIZDECK_API_BASE_URL is required when source is \"api\"")
		}
	default:
		return fmt.Errorf("unknown question source: %q", c.Source)
	}

	if c.Counts.MCQ+c.Counts.Structured+c.Counts.FillBlank <= 0 {
		return fmt.Errorf("question counts must be positive")
	}
	return nil
}

func configDir() (string, error) {
	if h := os.Getenv("XDG_CONFIG_HOME"); h != "" {
		return filepath.Join(h, "quizdeck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "quizdeck"), nil
}
