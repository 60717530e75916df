// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/crm-service/internal/authorization"
	"github.com/canonical/crm-service/internal/config"
	"github.com/canonical/crm-service/internal/logging"
	"github.com/canonical/crm-service/internal/monitoring/prometheus"
	"github.com/canonical/crm-service/internal/storage"
	"github.com/canonical/crm-service/internal/tracing"
	"github.com/canonical/crm-service/pkg/accounts"
	"github.com/canonical/crm-service/pkg/audit"
	"github.com/canonical/crm-service/pkg/authentication"
	"github.com/canonical/crm-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func jwtConfig(specs *config.EnvSpec) authentication.Config {
	return authentication.Config{
		AccessSecret:  specs.JWTAccessSecret,
		RefreshSecret: specs.JWTRefreshSecret,
		AccessTTL:     specs.AccessTokenExpiry,
		RefreshTTL:    specs.RefreshTokenExpiry,
	}
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		panic(err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("crm-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := connectDB(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	if _, err := s.EnsureIndexes(context.Background()); err != nil {
		logger.Errorf("failed to ensure indexes: %v", err)
	}

	tokens := authentication.NewJWTManager(jwtConfig(specs), tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(tracer, monitor, logger)
	recorder := audit.NewEngine(s, tracer, monitor, logger)

	if _, err := accounts.NewService(s, tokens, authorizer, recorder, tracer, monitor, logger).
		SeedSuperAdmin(context.Background(), specs.SuperAdminEmail, specs.SuperAdminPassword); err != nil {
		logger.Errorf("failed to seed superadmin: %v", err)
	}

	router := web.NewRouter(
		web.Config{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			RateLimitPerSecond: specs.RateLimitPerSecond,
			RateLimitBurst:     specs.RateLimitBurst,
			TrustProxyHeaders:  specs.TrustProxyHeaders,
		},
		s,
		dbClient,
		tokens,
		authorizer,
		recorder,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
