// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/tracing"
)

// migrateCmd creates the indexes the collections rely on
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create database indexes",
	Long:  `Create the MongoDB indexes, running it against an up to date database is a no-op`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		if err := migrate(cmd, format); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
	},
}

func init() {
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func migrate(cmd *cobra.Command, format string) error {
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

	indexes, err := storage.NewStorage(dbClient, tracer, monitor, logger).EnsureIndexes(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return json.NewEncoder(out).Encode(map[string]interface{}{
			"indexes": indexes,
		})
	}

	for _, name := range indexes {
		fmt.Fprintf(out, "index ready: %s\n", name)
	}
	return nil
}
