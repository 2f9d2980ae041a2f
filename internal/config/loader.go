package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/crmdash/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".crmdash.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/crmdash"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix namespaces environment overrides, e.g. CRMDASH_SAMPLER_SEED.
	EnvPrefix = "CRMDASH"
)

// Load reads config from the specified path. Environment overrides apply on
// top of the file, and defaults fill anything neither sets.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'crmdash init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .crmdash.yaml in current directory
// 3. ~/.config/crmdash/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if home, _ := os.UserHomeDir(); home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults (with
// environment overrides) if no file exists.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "environment")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// newViper returns a viper instance with defaults and env bindings set up.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	// Unmarshal into a zero value so lists from the file replace the default
	// lists instead of being merged element by element.
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}
	return cfg, nil
}

// setDefaults registers every key so that env overrides are picked up by
// Unmarshal even when the file does not mention them.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)

	v.SetDefault("sampler.seed", d.Sampler.Seed)
	v.SetDefault("sampler.failure_rate", d.Sampler.FailureRate)

	v.SetDefault("animation.enabled", d.Animation.Enabled)
	v.SetDefault("animation.fps", d.Animation.FPS)
	v.SetDefault("animation.refresh.duration", d.Animation.Refresh.Duration)
	v.SetDefault("animation.refresh.stagger", d.Animation.Refresh.Stagger)
	v.SetDefault("animation.refresh.offset", d.Animation.Refresh.Offset)
	v.SetDefault("animation.refresh.easing", d.Animation.Refresh.Easing)
	v.SetDefault("animation.alert.step", d.Animation.Alert.Step)
	v.SetDefault("animation.alert.distance", d.Animation.Alert.Distance)
	v.SetDefault("animation.alert.fade", d.Animation.Alert.Fade)
	v.SetDefault("animation.alert.amplitude", d.Animation.Alert.Amplitude)
	v.SetDefault("animation.alert.period", d.Animation.Alert.Period)

	v.SetDefault("display.title", d.Display.Title)
	v.SetDefault("display.subtitle", d.Display.Subtitle)
	v.SetDefault("display.color", d.Display.Color)

	v.SetDefault("panels.recent_activities", d.Panels.RecentActivities)
	v.SetDefault("panels.top_customers", d.Panels.TopCustomers)
}
