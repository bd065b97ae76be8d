// Package context bundles the loaded configuration and logger for the
// lifetime of a command invocation.
package context

import (
	"context"

	"github.com/yeisme/missionscan/pkg/configs"
	"github.com/yeisme/missionscan/pkg/utils/log"
)

// AppContext carries the application configuration and logger.
type AppContext struct {
	context.Context
	Config *configs.Config
	Logger log.Logger
}

// InitAppContext loads the configuration and initializes the logger.
// The flag values override their config-file counterparts.
func InitAppContext(configPath string, debug, verbose, quiet bool) (*AppContext, error) {
	ctx := context.Background()
	config, err := configs.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if debug {
		config.App.Debug = true
	}
	if verbose {
		config.App.Verbose = true
	}
	if quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &AppContext{
		Context: ctx,
		Config:  config,
		Logger:  logger,
	}, nil
}
