package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/swalay/labelctl/internal/config"
)

var useCmd = &cobra.Command{
	Use:          "use <base-url>",
	Short:        "Point labelctl at a dashboard backend",
	Long:         `Save the backend URL to the config file. Comments and other settings in the file are kept.`,
	Example:      `  labelctl use https://dashboard.swalay.example`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		path = userConfigPath()
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
	}

	if err := config.SaveBaseURL(path, args[0]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Using %s (saved to %s)\n", args[0], path)
	return nil
}
