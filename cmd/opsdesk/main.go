package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opsdesk-inc/opsdesk/internal/interfaces/cli/migrate"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/cli/server"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/cli/user"
	"github.com/opsdesk-inc/opsdesk/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "opsdesk",
		Short:   "OpsDesk - IT helpdesk and asset management",
		Long:    `OpsDesk serves the helpdesk ticket workflow, the IT asset registry and the employee directory, with migration and account tools.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
