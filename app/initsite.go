package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devfolio/devfolio/internal/daemon"
	"github.com/devfolio/devfolio/internal/logger"
	"github.com/devfolio/devfolio/internal/seed"
)

func init() { //nolint: gochecknoinits
	initSiteCmd.Flags().StringVar(&seedOptions.AdminUser, "admin-user", seed.DefaultAdminUser, "username of the admin account")
	initSiteCmd.Flags().StringVar(&seedOptions.AdminEmail, "admin-email", seed.DefaultAdminEmail, "email of the admin account")
	initSiteCmd.Flags().StringVar(
		&seedOptions.AdminPassword,
		"admin-password",
		seed.DefaultAdminPassword,
		"password of the admin account, only used when the account is created",
	)
	initSiteCmd.Flags().BoolVar(&generatePassword, "generate-password", false, "use a random admin password and print it")

	rootCmd.AddCommand(initSiteCmd)
}

var (
	seedOptions      seed.Options
	generatePassword bool

	initSiteCmd = &cobra.Command{
		Use:     "init-site",
		Short:   "Store the initial site settings, home page and admin account",
		PreRunE: readConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(cfg.Log); err != nil {
				return err //nolint:wrapcheck
			}

			gdb, err := daemon.OpenDB(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if generatePassword {
				if seedOptions.AdminPassword, err = seed.GeneratePassword(seed.GeneratedPasswordLen); err != nil {
					return err //nolint:wrapcheck
				}
			}

			report, err := seed.Run(gdb, seedOptions)
			if err != nil {
				return err //nolint:wrapcheck
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "site settings: %s\n", status(report.SettingsCreated))
			_, _ = fmt.Fprintf(out, "home page:     %s\n", status(report.HomePageCreated))
			_, _ = fmt.Fprintf(out, "admin account: %s (%s)\n", status(report.AdminCreated), seedOptions.AdminUser)

			if generatePassword && report.AdminCreated {
				_, _ = fmt.Fprintf(out, "admin password: %s\n", seedOptions.AdminPassword)
			}

			return nil
		},
	}
)

func status(created bool) string {
	if created {
		return "created"
	}

	return "already present"
}
