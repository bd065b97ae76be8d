package configs

import "github.com/spf13/viper"

// AppConfig holds application-wide settings.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Debug   bool   `mapstructure:"debug"`
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"` // suppress all log output
}

func setAppConfigDefaults() {
	viper.SetDefault("app.name", "missionscan")
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.verbose", false)
	viper.SetDefault("app.quiet", false)
}
