// Package cmd provides command-line interface commands for missionscan
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	appcontext "github.com/yeisme/missionscan/pkg/context"
	log2 "github.com/yeisme/missionscan/pkg/utils/log"
	"github.com/yeisme/missionscan/pkg/utils/version"
)

var (
	appCtx *appcontext.AppContext
	log    log2.Logger

	// Global flags
	configPathFlag    string
	debugFlag         bool
	verboseFlag       bool
	quietFlag         bool
	versionEnableFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "missionscan",
	Short: "missionscan reports classes and equipment referenced by mission files",
	Long: `missionscan is a static-analysis tool for Arma-style mission configuration
files. It scans .sqf scripted commands, .hpp structured configs and .ext
mission entries, and reports the declared class names and referenced
equipment identifiers as text or JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionEnableFlag {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return
		}
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		ctx, err := appcontext.InitAppContext(configPathFlag, debugFlag, verboseFlag, quietFlag)
		if err != nil {
			return err
		}

		appCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("Execute Command: %s %s", "missionscan", strings.Join(os.Args[1:], " "))
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "suppress all output except errors")
	rootCmd.Flags().BoolVarP(&versionEnableFlag, "version", "v", false, "show version information")
}
