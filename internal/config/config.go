package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/mmcdole/clickrank/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Ranks   []domain.Rank `mapstructure:"ranks"` // Optional custom ladder
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Path string `mapstructure:"path"` // bbolt file; empty keeps progress in memory
}

// UIConfig holds UI configuration
type UIConfig struct {
	AnimationMs  int  `mapstructure:"animation_ms"`
	ShowRobot    bool `mapstructure:"show_robot"`
	ShowProgress bool `mapstructure:"show_progress"`
	BarWidth     int  `mapstructure:"bar_width"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(defaultDataPath(), "clickrank.db"),
		},
		UI: UIConfig{
			AnimationMs:  200,
			ShowRobot:    true,
			ShowProgress: true,
			BarWidth:     40,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "clickrank.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "clickrank")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "clickrank")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "clickrank")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "clickrank")
	}
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return load(viper.New(), defaultConfigPath(), ".")
}

// LoadConfigFrom loads configuration searching only dir
func LoadConfigFrom(dir string) (*Config, error) {
	return load(viper.New(), dir)
}

func load(v *viper.Viper, dirs ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	// Environment variable overrides (CLICKRANK_STORAGE_PATH, ...)
	v.SetEnvPrefix("CLICKRANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	err := v.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Storage.Path, err = ExpandPath(cfg.Storage.Path); err != nil {
		return nil, fmt.Errorf("invalid storage path: %w", err)
	}
	if cfg.Logging.File, err = ExpandPath(cfg.Logging.File); err != nil {
		return nil, fmt.Errorf("invalid log file: %w", err)
	}

	if cfg.UI.AnimationMs <= 0 {
		cfg.UI.AnimationMs = DefaultConfig().UI.AnimationMs
	}
	if cfg.UI.BarWidth <= 0 {
		cfg.UI.BarWidth = DefaultConfig().UI.BarWidth
	}

	return cfg, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
// Other paths are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// bindDefaults registers every key so AutomaticEnv can override it
func bindDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("ui.animation_ms", cfg.UI.AnimationMs)
	v.SetDefault("ui.show_robot", cfg.UI.ShowRobot)
	v.SetDefault("ui.show_progress", cfg.UI.ShowProgress)
	v.SetDefault("ui.bar_width", cfg.UI.BarWidth)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// SaveConfig writes cfg to config.yaml in the default config directory
func SaveConfig(cfg *Config) error {
	return SaveConfigTo(cfg, defaultConfigPath())
}

// ConfigFile returns the path SaveConfig writes to
func ConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// SaveConfigTo writes cfg to config.yaml in dir
func SaveConfigTo(cfg *Config, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("storage.path", cfg.Storage.Path)

	v.Set("ui.animation_ms", cfg.UI.AnimationMs)
	v.Set("ui.show_robot", cfg.UI.ShowRobot)
	v.Set("ui.show_progress", cfg.UI.ShowProgress)
	v.Set("ui.bar_width", cfg.UI.BarWidth)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if len(cfg.Ranks) > 0 {
		ranks := make([]map[string]any, len(cfg.Ranks))
		for i, r := range cfg.Ranks {
			ranks[i] = map[string]any{"name": r.Name, "threshold": r.Threshold}
		}
		v.Set("ranks", ranks)
	}

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Ladder returns the configured rank ladder, or the default one
func (c *Config) Ladder() (domain.Ladder, error) {
	if len(c.Ranks) == 0 {
		return domain.DefaultLadder(), nil
	}
	return domain.NewLadder(c.Ranks)
}
