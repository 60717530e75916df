// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultBaseURL = "http://localhost:8000"

	superAdminEmail    = "root@crm.example.com"
	superAdminPassword = "e2e-root-password"
)

var testEnv *TestEnvironment

type TestEnvironment struct {
	Mongo      testcontainers.Container
	Cmd        *exec.Cmd
	BaseURL    string
	CancelFunc context.CancelFunc
	BinPath    string
}

func TestMain(m *testing.M) {
	var err error
	// Check if we should use existing deployment
	if os.Getenv("E2E_USE_EXISTING_DEPLOYMENT") == "true" {
		fmt.Println("Using existing deployment...")
		os.Exit(m.Run())
	}

	fmt.Println("Starting test environment...")
	testEnv, err = setupTestEnvironment()
	if err != nil {
		fmt.Printf("Failed to setup test environment: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	// Cleanup explicitly before exit (defer won't run with os.Exit)
	if testEnv != nil {
		testEnv.Teardown()
	}

	os.Exit(code)
}

func baseURL() string {
	if testEnv != nil {
		return testEnv.BaseURL
	}
	if u := os.Getenv("E2E_BASE_URL"); u != "" {
		return u
	}
	return defaultBaseURL
}

func setupTestEnvironment() (*TestEnvironment, error) {
	var (
		mongo   testcontainers.Container
		binPath string
	)

	ctx, cancel := context.WithCancel(context.Background())

	cleanup := func() {
		if mongo != nil {
			_ = mongo.Terminate(context.Background())
		}
		if binPath != "" {
			os.Remove(binPath)
		}
		cancel()
	}

	rootDir, err := findRootDir()
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to find root dir: %w", err)
	}

	binPath, err = buildApp(rootDir)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to build app: %w", err)
	}

	mongo, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to start mongodb: %w", err)
	}

	endpoint, err := mongo.PortEndpoint(ctx, "27017/tcp", "mongodb")
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to resolve mongodb endpoint: %w", err)
	}

	envVars := map[string]string{
		"MONGO_URI":            endpoint,
		"MONGO_DATABASE":       fmt.Sprintf("crm_e2e_%d", time.Now().Unix()),
		"JWT_ACCESS_SECRET":    "e2e-access-secret",
		"JWT_REFRESH_SECRET":   "e2e-refresh-secret",
		"SUPER_ADMIN_EMAIL":    superAdminEmail,
		"SUPER_ADMIN_PASSWORD": superAdminPassword,
		"PORT":                 "8000",
		"LOG_LEVEL":            "debug",
		"TRACING_ENABLED":      "false",
		// the suite fires requests back to back from one address
		"RATE_LIMIT_PER_SECOND": "0",
	}

	if err := runMigrations(ctx, binPath, envVars); err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cmd, err := startServer(ctx, binPath, envVars)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to start server: %w", err)
	}

	if err := waitForHTTP(ctx, defaultBaseURL+"/api/v1/status"); err != nil {
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		cleanup()
		return nil, fmt.Errorf("server not ready: %w", err)
	}

	return &TestEnvironment{
		Mongo:      mongo,
		Cmd:        cmd,
		BaseURL:    defaultBaseURL,
		CancelFunc: cancel,
		BinPath:    binPath,
	}, nil
}

func (e *TestEnvironment) Teardown() {
	fmt.Println("Tearing down test environment...")
	if e.Cmd != nil && e.Cmd.Process != nil {
		fmt.Println("Stopping service process...")
		e.Cmd.Process.Kill()
		// Give the process a moment to flush I/O before waiting
		time.Sleep(100 * time.Millisecond)
		e.Cmd.Wait()
	}
	if e.BinPath != "" {
		os.Remove(e.BinPath)
	}
	if e.Mongo != nil {
		fmt.Println("Stopping MongoDB container...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := e.Mongo.Terminate(ctx); err != nil {
			fmt.Printf("Warning: failed to cleanly stop mongodb: %v\n", err)
		}
	}
	if e.CancelFunc != nil {
		e.CancelFunc()
	}
	fmt.Println("Teardown complete")
}

func findRootDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "main.go")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("root dir not found")
		}
		dir = parent
	}
}

func buildApp(rootDir string) (string, error) {
	binPath := filepath.Join(os.TempDir(), fmt.Sprintf("crm-service-e2e-%d", time.Now().UnixNano()))
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return binPath, nil
}

func environ(envVars map[string]string) []string {
	env := os.Environ()
	for k, v := range envVars {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	return env
}

func startServer(ctx context.Context, binPath string, envVars map[string]string) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, binPath, "serve")
	cmd.Env = environ(envVars)

	// Use pipes instead of directly sharing os.Stdout/Stderr to avoid I/O incomplete issues
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	go io.Copy(os.Stdout, stdout)
	go io.Copy(os.Stderr, stderr)

	return cmd, nil
}

func waitForHTTP(ctx context.Context, url string) error {
	// Allow override from environment for CI
	timeoutDuration := 30 * time.Second
	if envTimeout := os.Getenv("E2E_STARTUP_TIMEOUT"); envTimeout != "" {
		if d, err := time.ParseDuration(envTimeout); err == nil {
			timeoutDuration = d
		}
	}

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	timeout := time.After(timeoutDuration)
	client := &http.Client{Timeout: 1 * time.Second}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout:
			return fmt.Errorf("timeout waiting for %s", url)
		case <-ticker.C:
			resp, err := client.Get(url)
			if err == nil && resp.StatusCode == http.StatusOK {
				resp.Body.Close()
				return nil
			}
		}
	}
}

func runMigrations(ctx context.Context, binPath string, envVars map[string]string) error {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	timeout := time.After(60 * time.Second)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout:
			return fmt.Errorf("timeout waiting for migrations")
		case <-ticker.C:
			cmd := exec.CommandContext(ctx, binPath, "migrate", "--format", "json")
			cmd.Env = environ(envVars)
			if _, err := cmd.CombinedOutput(); err == nil {
				return nil
			}
		}
	}
}
