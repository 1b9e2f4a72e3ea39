// Package config provides configuration management for SignAvatar
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Animation AnimationConfig `mapstructure:"animation"`
	NLP       NLPConfig       `mapstructure:"nlp"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig configures the HTTP/WebSocket server
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxTextLength   int           `mapstructure:"max_text_length"`
}

// AnimationConfig configures motion synthesis timing (milliseconds)
type AnimationConfig struct {
	FPS                int `mapstructure:"fps"`
	DefaultDuration    int `mapstructure:"default_sign_duration"`
	TransitionDuration int `mapstructure:"transition_duration"`
	MinDuration        int `mapstructure:"min_sign_duration"`
	MaxDuration        int `mapstructure:"max_sign_duration"`
}

// NLPConfig configures the text normalizer
type NLPConfig struct {
	LemmatizerEnabled bool `mapstructure:"lemmatizer_enabled"`
}

// LoggingConfig configures log output
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8090,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxTextLength:   1000,
		},
		Animation: AnimationConfig{
			FPS:                30,
			DefaultDuration:    1500,
			TransitionDuration: 300,
			MinDuration:        800,
			MaxDuration:        2500,
		},
		NLP: NLPConfig{
			LemmatizerEnabled: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Set config paths
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return cfg, err
	}

	configDir := filepath.Join(homeDir, ".signavatar")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return cfg, err
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("SIGNAVATAR")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, err
		}
		// Config file not found, use defaults and create one
		if err := Save(cfg); err != nil {
			return cfg, err
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Watch re-reads the config file on change and invokes onChange with
// the freshly unmarshaled configuration.
func Watch(onChange func(*Config)) {
	viper.OnConfigChange(func(fsnotify.Event) {
		cfg := DefaultConfig()
		if err := viper.Unmarshal(cfg); err != nil {
			return
		}
		onChange(cfg)
	})
	viper.WatchConfig()
}

// Save writes the configuration to file
func Save(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(homeDir, ".signavatar")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	viper.Set("server", cfg.Server)
	viper.Set("animation", cfg.Animation)
	viper.Set("nlp", cfg.NLP)
	viper.Set("logging", cfg.Logging)

	configPath := filepath.Join(configDir, "config.yaml")
	return viper.WriteConfigAs(configPath)
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".signavatar"), nil
}
