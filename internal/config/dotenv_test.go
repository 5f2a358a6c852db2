package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir replicates testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	chdir(t, t.TempDir())

	assert.NoError(t, loadDotEnv())
}

func TestLoadDotEnv_LoadsValues(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	body := "AUTH_SERVICE_URL=https://auth.simplhealth.com\nPCC_API_KEY=key-from-file\n"
	require.NoError(t, os.WriteFile(dotEnvFile, []byte(body), 0o600))

	_ = os.Unsetenv("AUTH_SERVICE_URL")
	_ = os.Unsetenv("PCC_API_KEY")
	t.Cleanup(func() {
		_ = os.Unsetenv("AUTH_SERVICE_URL")
		_ = os.Unsetenv("PCC_API_KEY")
	})

	require.NoError(t, loadDotEnv())

	assert.Equal(t, "https://auth.simplhealth.com", os.Getenv("AUTH_SERVICE_URL"))
	assert.Equal(t, "key-from-file", os.Getenv("PCC_API_KEY"))
}

func TestLoadDotEnv_DoesNotOverrideProcessEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(dotEnvFile, []byte("PCC_API_KEY=from-file\n"), 0o600))

	require.NoError(t, os.Setenv("PCC_API_KEY", "from-env"))
	t.Cleanup(func() { _ = os.Unsetenv("PCC_API_KEY") })

	require.NoError(t, loadDotEnv())

	assert.Equal(t, "from-env", os.Getenv("PCC_API_KEY"))
}
