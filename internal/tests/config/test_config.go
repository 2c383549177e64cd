package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/you/streamsvc/internal/config"
)

// TestJWTSecret signs every token issued during in-process tests
const TestJWTSecret = "test-jwt-secret-for-e2e"

// LoadTestConfig loads config/config.yml with test overrides applied through
// the environment. A .env.test file, when present, is loaded first.
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	if err := godotenv.Load(".env.test"); err != nil && !os.IsNotExist(err) {
		t.Logf("Warning: Could not load .env.test file: %v", err)
	}
	SetupTestEnvironment(t)

	root := GetProjectRoot()
	cfg, err := config.LoadFile(filepath.Join(root, config.DefaultPath))
	if err != nil {
		t.Fatalf("Failed to load test configuration: %v", err)
	}
	cfg.CasbinModelPath = filepath.Join(root, "config", "rbac_model.conf")
	return cfg
}

// SetupTestEnvironment sets test-specific environment variables for the test duration
func SetupTestEnvironment(t *testing.T) {
	t.Helper()

	testEnvVars := map[string]string{
		"GIN_MODE":           "test",
		"APP_ENV":            "test",
		"JWT_SECRET":         TestJWTSecret,
		"JWT_ISSUER":         "streamsvc-test",
		"JWT_TTL":            "168h",
		"OTP_TTL":            "10m",
		"TWILIO_FROM_NUMBER": "",
		"KAFKA_BROKER":       "",
		"LOG_LEVEL":          "error",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}
}

// GetProjectRoot returns the project root directory for config files
func GetProjectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}

	// Navigate up to find the project root (where go.mod exists)
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd
		}

		parent := filepath.Dir(wd)
		if parent == wd {
			break
		}
		wd = parent
	}

	return "."
}
