package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/missionscan/pkg/utils/version"
)

var (
	versionDetailed bool
	versionJSON     bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `
Display version information for missionscan.

Examples:
  # Show short version info (default)
  missionscan version

  # Show detailed version info
  missionscan version --detailed

  # Show version info in JSON format
  missionscan version --json`,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionJSON {
			info := version.GetVersion()
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				cmd.PrintErrf("Error formatting JSON: %v\n", err)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
		} else if versionDetailed {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionString())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionDetailed, "detailed", "d", false, "show detailed version information")
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "output version information in JSON format")
}
