// Package configs provides application configuration management.
package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root application configuration.
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	App  AppConfig  `mapstructure:"app"`
	Scan ScanConfig `mapstructure:"scan"`
}

var globalConfig *Config

func setDefaults() {
	setLogConfigDefaults()
	setAppConfigDefaults()
	setScanConfigDefaults()
}

// tryLoadConfigFiles looks for a config file in the conventional locations
// and points viper at the first one that exists.
func tryLoadConfigFiles() bool {
	searchPaths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/missionscan",
	}

	if runtime.GOOS == "windows" {
		searchPaths = append(searchPaths,
			"$USERPROFILE",
			"$APPDATA/missionscan",
		)
	} else {
		searchPaths = append(searchPaths, "/etc/missionscan")
	}

	configNames := []string{".missionscan", "missionscan"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					viper.SetConfigFile(configFile)
					return true
				}
			}
		}
	}

	return false
}

// LoadConfig loads the configuration from configPath, or from the search
// paths when configPath is empty. Missing config files are not an error;
// defaults and environment variables still apply.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		tryLoadConfigFiles()
	}

	viper.SetEnvPrefix("MISSIONSCAN")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	globalConfig = &config
	return &config, nil
}

// GetConfig returns the global configuration, loading it on first use.
func GetConfig() *Config {
	if globalConfig == nil {
		config, err := LoadConfig("")
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
		return config
	}
	return globalConfig
}
