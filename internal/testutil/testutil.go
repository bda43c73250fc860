// Package testutil provides testing utilities for bridge tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// ResetViper clears viper's global state now and again when the test ends.
func ResetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// IsolateConfig points the config directory at a fresh temp dir and blanks
// every BRIDGE_* environment variable for the duration of the test.
// Returns the config directory (XDG_CONFIG_HOME/bridge), which does not exist yet.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "BRIDGE_") {
			t.Setenv(key, "")
		}
	}

	return filepath.Join(xdg, "bridge")
}

// WriteConfig writes content to config.yaml inside dir, creating dir.
// Returns the file path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}
