// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/devfolio/devfolio/internal/config"
)

var (
	configPath string        // directory holding main.toml
	cfg        config.Config // read by the PreRun of each command

	rootCmd = &cobra.Command{
		Use:   "devfolio",
		Short: "devfolio is a personal portfolio web site",
		Long: `devfolio serves a personal portfolio: home and about pages,
a contact form with an admin inbox, and an admin interface for the site content.`,
		Args: cobra.OnlyValidArgs,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "directory of the main.toml configuration file")
}

// readConfig loads the configuration into cfg.
func readConfig(_ *cobra.Command, _ []string) error {
	var err error

	cfg, err = config.ReadConfig(configPath)

	return err //nolint:wrapcheck
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
