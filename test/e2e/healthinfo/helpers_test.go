package healthinfo_test

import (
	"context"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for healthinfo end-to-end tests.
 * This includes container setup and SDK construction.
 */

const (
	testImageName = "healthinfo-test:latest"

	apiKey      = "e2e-key-0123456789"
	otherAPIKey = "e2e-key-secondary"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building healthinfo Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up healthinfo Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/healthinfo/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupContainer starts the service with rate limits raised far enough that
// functional tests never trip them.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()

	return setupContainerWithEnv(t, map[string]string{
		"RATELIMIT_CLIENTS_REQUESTS": "1000",
		"RATELIMIT_CLIENTS_BURST":    "1000",
		"RATELIMIT_HOURLY_REQUESTS":  "1000",
		"RATELIMIT_HOURLY_BURST":     "1000",
		"RATELIMIT_DAILY_REQUESTS":   "1000",
		"RATELIMIT_DAILY_BURST":      "1000",
	})
}

// setupContainerWithDefaultRateLimits starts the service with production limits.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return setupContainerWithEnv(t, nil)
}

// setupContainerWithEnv starts the service in a container and returns the base URL.
func setupContainerWithEnv(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"API_KEYS":      apiKey + "," + otherAPIKey,
		"DATABASE_FILE": "/data/healthinfo.db",
		"ENV":           "test",
		"LOG_LEVEL":     "info",
		"LOG_FORMAT":    "json",
	}
	maps.Copy(env, extraEnv)

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/readyz").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// newClient returns an SDK client authenticated with the primary key.
func newClient(baseURL string) *healthsdk.SDKClient {
	return healthsdk.NewSDKClient(baseURL, apiKey)
}
