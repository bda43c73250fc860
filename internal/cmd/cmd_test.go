package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/bridge/internal/config"
	bridgeerrors "github.com/Iron-Ham/bridge/internal/errors"
	"github.com/Iron-Ham/bridge/internal/logging"
	"github.com/Iron-Ham/bridge/internal/testutil"
)

// executeCommand runs a fresh command tree with args and returns captured
// stdout and stderr separately.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	testutil.ResetViper(t)
	root := NewRootCmd()

	var outBuf, errBuf bytes.Buffer
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootCommand(t *testing.T) {
	root := NewRootCmd()

	if root.Use != "bridge" {
		t.Errorf("root.Use = %q, want %q", root.Use, "bridge")
	}

	expectedCmds := []string{"variants", "config"}
	cmdMap := make(map[string]bool)
	for _, cmd := range root.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestRun_NoArguments(t *testing.T) {
	testutil.IsolateConfig(t)

	stdout, stderr, err := executeCommand(t)
	if err != nil {
		t.Fatalf("bridge error = %v", err)
	}

	want := "Concrete Implementor A\nConcrete Implementor B\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestRun_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "reordered",
			args: []string{"--implementors", "b,a"},
			want: "Concrete Implementor B\nConcrete Implementor A\n",
		},
		{
			name: "repeated flag",
			args: []string{"--implementors", "b", "--implementors", "b"},
			want: "Concrete Implementor B\nConcrete Implementor B\n",
		},
		{
			name: "logged abstraction",
			args: []string{"--abstraction", "logged"},
			want: "Concrete Implementor A\nConcrete Implementor B\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.IsolateConfig(t)

			stdout, _, err := executeCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("bridge %v error = %v", tt.args, err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestRun_UnknownImplementor(t *testing.T) {
	testutil.IsolateConfig(t)

	stdout, _, err := executeCommand(t, "--implementors", "a,z")
	if !errors.Is(err, bridgeerrors.ErrUnknownVariant) {
		t.Fatalf("error = %v, want ErrUnknownVariant", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing on failure", stdout)
	}
}

func TestRun_InvalidAbstraction(t *testing.T) {
	testutil.IsolateConfig(t)

	_, _, err := executeCommand(t, "--abstraction", "extended")

	var verrs config.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error = %v, want config.ValidationErrors", err)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	testutil.WriteConfig(t, dir, `
demo:
  implementors: [b]
  abstraction: logged
logging:
  enabled: true
  level: debug
`)

	stdout, stderr, err := executeCommand(t)
	if err != nil {
		t.Fatalf("bridge error = %v", err)
	}
	if stdout != "Concrete Implementor B\n" {
		t.Errorf("stdout = %q, want %q", stdout, "Concrete Implementor B\n")
	}

	// Logs go to stderr as JSON lines, never to stdout.
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected debug log lines on stderr, got %q", stderr)
	}
	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Errorf("stderr line %d is not JSON: %q", i, line)
		}
	}
	if !strings.Contains(stderr, `"variant":"logged"`) {
		t.Errorf("expected logged abstraction entries, got %s", stderr)
	}
}

func TestRun_ExplicitConfigFlag(t *testing.T) {
	testutil.IsolateConfig(t)
	path := testutil.WriteConfig(t, t.TempDir(), "demo:\n  implementors: [a]\n")

	stdout, _, err := executeCommand(t, "--config", path)
	if err != nil {
		t.Fatalf("bridge error = %v", err)
	}
	if stdout != "Concrete Implementor A\n" {
		t.Errorf("stdout = %q, want %q", stdout, "Concrete Implementor A\n")
	}
}

func TestRun_MissingExplicitConfig(t *testing.T) {
	testutil.IsolateConfig(t)

	_, _, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for a missing --config file")
	}
}

func TestRun_LogDirectory(t *testing.T) {
	testutil.IsolateConfig(t)
	logDir := filepath.Join(t.TempDir(), "logs")
	t.Setenv("BRIDGE_LOGGING_ENABLED", "true")
	t.Setenv("BRIDGE_LOGGING_LEVEL", "debug")
	t.Setenv("BRIDGE_LOGGING_DIR", logDir)

	stdout, stderr, err := executeCommand(t)
	if err != nil {
		t.Fatalf("bridge error = %v", err)
	}
	if stdout != "Concrete Implementor A\nConcrete Implementor B\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty when logging to a file", stderr)
	}

	content, err := os.ReadFile(filepath.Join(logDir, "debug.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"run completed"`) {
		t.Errorf("log file missing completion entry: %s", content)
	}
}

func TestRun_UppercaseLogLevel(t *testing.T) {
	testutil.IsolateConfig(t)
	t.Setenv("BRIDGE_LOGGING_ENABLED", "true")
	t.Setenv("BRIDGE_LOGGING_LEVEL", "DEBUG")

	stdout, stderr, err := executeCommand(t)
	if err != nil {
		t.Fatalf("bridge error = %v", err)
	}
	if stdout != "Concrete Implementor A\nConcrete Implementor B\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, `"level":"DEBUG"`) {
		t.Errorf("expected debug entries on stderr, got %q", stderr)
	}
}

// failingCloser reports an error from Close.
type failingCloser struct{}

func (failingCloser) Close() error { return os.ErrClosed }

func TestCloseLogger(t *testing.T) {
	runErr := errors.New("operation failed")

	tests := []struct {
		name     string
		err      error
		closer   io.Closer
		wantNil  bool
		wantErrs []error
	}{
		{"clean close keeps nil", nil, logging.NopLogger(), true, nil},
		{"clean close keeps run error", runErr, logging.NopLogger(), false, []error{runErr}},
		{"close failure surfaces", nil, failingCloser{}, false, []error{os.ErrClosed}},
		{"close failure joins run error", runErr, failingCloser{}, false, []error{runErr, os.ErrClosed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := closeLogger(tt.err, tt.closer)
			if tt.wantNil {
				if got != nil {
					t.Errorf("closeLogger() = %v, want nil", got)
				}
				return
			}
			for _, want := range tt.wantErrs {
				if !errors.Is(got, want) {
					t.Errorf("closeLogger() = %v, want it to match %v", got, want)
				}
			}
		})
	}
}

func TestVariantsCommand(t *testing.T) {
	testutil.IsolateConfig(t)

	stdout, _, err := executeCommand(t, "variants")
	if err != nil {
		t.Fatalf("bridge variants error = %v", err)
	}

	for _, want := range []string{"Implementors", "Concrete Implementor A", "Concrete Implementor B", "Abstractions", "refined", "logged"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("variants output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Index(stdout, "Concrete Implementor A") > strings.Index(stdout, "Concrete Implementor B") {
		t.Errorf("implementors should be listed in name order:\n%s", stdout)
	}
}

func TestConfigShowCommand(t *testing.T) {
	testutil.IsolateConfig(t)

	for _, args := range [][]string{{"config"}, {"config", "show"}} {
		stdout, _, err := executeCommand(t, args...)
		if err != nil {
			t.Fatalf("bridge %v error = %v", args, err)
		}

		for _, want := range []string{
			"# Config file: (none - using defaults)",
			"demo:",
			"  implementors:",
			"    - a",
			"    - b",
			"  abstraction: refined",
			"logging:",
			"  enabled: false",
		} {
			if !strings.Contains(stdout, want) {
				t.Errorf("bridge %v output missing %q:\n%s", args, want, stdout)
			}
		}
	}
}

func TestConfigPathCommand(t *testing.T) {
	dir := testutil.IsolateConfig(t)

	stdout, _, err := executeCommand(t, "config", "path")
	if err != nil {
		t.Fatalf("bridge config path error = %v", err)
	}
	if got, want := strings.TrimSpace(stdout), filepath.Join(dir, "config.yaml"); got != want {
		t.Errorf("config path = %q, want %q", got, want)
	}
}
