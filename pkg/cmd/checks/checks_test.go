package checks

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leovegas/reportgen/internal/exitcode"
)

func TestCmdChecksLegacyEnv(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	input := filepath.Join(dir, "checks.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"checks": {"a": {"pass": 1, "total": 4}}}`), 0644))

	t.Setenv("CHECKS_PATH", input)
	t.Setenv("OUT_JSON", filepath.Join(dir, "out", "summary.json"))
	t.Setenv("OUT_HTML", filepath.Join(dir, "out", "summary.html"))
	t.Setenv("CHECKS_THRESHOLD", "90")

	cmd := NewCmdChecks()
	cmd.SilenceUsage = true
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, exitcode.GateFailed, exitcode.FromError(err))
	assert.Contains(t, stdout.String(), "Pass %: 25\n")
	assert.FileExists(t, filepath.Join(dir, "out", "summary.html"))
}
