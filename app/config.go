package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devfolio/devfolio/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.Flags().BoolVar(&dumpJSON, "json", false, "print the configuration as JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Print the effective configuration",
		PreRunE: readConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if dumpJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}
)
