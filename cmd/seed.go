// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/pkg/accounts"
	"github.com/canonical/crm-service/pkg/audit"
	"github.com/canonical/crm-service/pkg/authentication"
)

// seedCmd creates the superadmin account when none exists yet
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the superadmin account",
	Long:  `Create the superadmin account from SUPER_ADMIN_EMAIL and SUPER_ADMIN_PASSWORD unless one already exists`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := seed(cmd); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seed(cmd *cobra.Command) error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := monitoring.NewNoopMonitor("crm-service", logger)
	tracer := tracing.NewNoopTracer()

	dbClient, err := connectDB(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	u, err := accounts.NewService(
		s,
		authentication.NewJWTManager(jwtConfig(specs), tracer, monitor, logger),
		authorization.NewAuthorizer(tracer, monitor, logger),
		audit.NewEngine(s, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	).SeedSuperAdmin(cmd.Context(), specs.SuperAdminEmail, specs.SuperAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to seed superadmin: %w", err)
	}

	if u == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "superadmin not created")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "superadmin created: %s\n", u.Email)
	return nil
}
