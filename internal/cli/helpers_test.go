package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rshade/virtuallist/internal/cli"
)

// testEnv keeps logs off the real log file and quiet on stderr.
func testEnv(extra map[string]string) func(string) (string, bool) {
	env := map[string]string{
		"VIRTUALLIST_LOG_FILE":  "",
		"VIRTUALLIST_LOG_LEVEL": "error",
	}
	for k, v := range extra {
		env[k] = v
	}
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// runCLI executes the root command with an isolated config path.
func runCLI(t *testing.T, configPath string, env map[string]string, args ...string) (string, error) {
	t.Helper()
	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "config.yaml")
	}
	var out bytes.Buffer
	cmd := cli.NewRootCmdWithEnv("test", testEnv(env))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}
