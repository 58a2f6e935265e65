// Package user holds account maintenance commands that run without the HTTP server.
package user

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk-inc/opsdesk/internal/application/user/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/auth"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/config"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/database"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/permission"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/repository"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

var (
	env        string
	configPath string
	username   string
	fullName   string
	password   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCreateAdminCommand())

	return cmd
}

func newCreateAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Long:  `Create the first Admin account so the web client can be used to manage the rest.`,
		RunE:  runCreateAdmin,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Login name (required)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Display name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	checker, err := permission.NewMemoryEnforcer(log)
	if err != nil {
		return err
	}

	users := usecases.NewUserAdminUseCases(
		repository.NewUserRepository(database.Get()),
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		checker,
		log,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	created, err := users.CreateAdmin(ctx, username, fullName, password)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Admin user %q created (id %d)\n", created.Username, created.ID)
	return nil
}
