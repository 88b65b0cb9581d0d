package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and a default config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// setup already wrote config.yaml if it was missing.
			fmt.Fprintf(cmd.OutOrStdout(), "config: %s\n", filepath.Join(a.configDir, configFileExt))
			fmt.Fprintf(cmd.OutOrStdout(), "capacity=%d trials=%d log_level=%s log_format=%s\n",
				a.cfg.Capacity, a.cfg.Trials, a.cfg.LogLevel, a.cfg.LogFormat)
			return nil
		},
	}
}
