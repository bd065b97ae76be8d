package configs

import "github.com/spf13/viper"

// ScanConfig holds scanner settings.
type ScanConfig struct {
	// DataDirs are searched for a same-named file when a loadout config
	// referenced from a structured config does not exist at the given path.
	DataDirs []string `mapstructure:"data_dirs"`
	// Exclude lists gitignore-style patterns skipped during directory scans.
	Exclude []string `mapstructure:"exclude"`
	// WatchDebounce is the watch-mode debounce interval in milliseconds.
	WatchDebounce int `mapstructure:"watch_debounce"`
}

func setScanConfigDefaults() {
	viper.SetDefault("scan.data_dirs", []string{"sample_data"})
	viper.SetDefault("scan.exclude", []string{})
	viper.SetDefault("scan.watch_debounce", 300) // ms
}
