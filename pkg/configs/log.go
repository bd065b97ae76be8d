package configs

import "github.com/spf13/viper"

// LogConfig controls the logger output.
type LogConfig struct {
	Level      string `mapstructure:"level"`       // log level: trace, debug, info, warn, error, fatal, panic
	JSON       bool   `mapstructure:"json"`        // emit structured JSON instead of the console writer
	Mode       string `mapstructure:"mode"`        // output mode: console, file, both
	FilePath   string `mapstructure:"file_path"`   // log file path (mode file or both)
	MaxSize    int    `mapstructure:"max_size"`    // max log file size (MB)
	MaxBackups int    `mapstructure:"max_backups"` // number of rotated files to keep
	MaxAge     int    `mapstructure:"max_age"`     // days to keep rotated files
}

func setLogConfigDefaults() {
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.json", false)
	viper.SetDefault("log.mode", "console")
	viper.SetDefault("log.file_path", ".missionscan/missionscan.log")
	viper.SetDefault("log.max_size", 100) // MB
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age", 28) // days
}
