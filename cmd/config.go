package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yeisme/missionscan/pkg/style"
	"github.com/yeisme/missionscan/pkg/utils/schema"
)

var (
	configShowJSON bool

	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage missionscan configuration",
		Long:    `missionscan config allows you to view the effective configuration and generate its JSON schema.`,
		Aliases: []string{"c"},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `missionscan config show prints the effective configuration after merging
defaults, the config file and environment variables.`,
		Aliases: []string{"list"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configShowJSON {
				return style.PrintJSON(cmd.OutOrStdout(), appCtx.Config)
			}
			b, err := yaml.Marshal(appCtx.Config)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(b))
			return err
		},
	}

	configSchemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return schema.GenConfigSchema(cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSchemaCmd)

	configShowCmd.Flags().BoolVarP(&configShowJSON, "json", "j", false, "output configuration in JSON format")
}
