package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable, skipping the
// test when it is not set. Used to gate tests that need real credentials.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("environment variable %s is not set, skipping test", key)
	}
	return value
}
