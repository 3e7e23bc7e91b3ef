package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runRememble(t, binaryPath, home,
		"invite", "john-smith",
		"--note", "Met at the **cat show**",
		"--message", "Hi John!",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Invitation sent to John Smith")

	stdout, stderr, err = runRememble(t, binaryPath, home, "note", "show", "john-smith", "--raw")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Met at the **cat show**")

	stdout, stderr, err = runRememble(t, binaryPath, home, "network", "remove", "john-smith")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Removed John Smith")

	stdout, stderr, err = runRememble(t, binaryPath, home, "network", "list", "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, `"connections": []`)

	_, err = os.Stat(filepath.Join(home, ".rememble", "network.toml"))
	require.NoError(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "rememble-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rememble")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build rememble binary: %s", string(output))
	return binaryPath
}

func runRememble(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "GEMINI_API_KEY=", "PASSWORD_STORE_DIR="+filepath.Join(home, ".password-store"))

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
