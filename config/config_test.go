package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	env := "SERVER_ADDRESS=:9090\nRATES_FILE=rates.yaml\nRATES_REFRESH=30s\nSTRICT_RATES=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o600))

	c, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, Config{
		ServerAddress: ":9090",
		RatesFile:     "rates.yaml",
		RatesRefresh:  30 * time.Second,
		StrictRates:   true,
	}, c)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("STRICT_RATES=false\n"), 0o600))

	c, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, ":8080", c.ServerAddress)
	assert.Equal(t, time.Minute, c.RatesRefresh)
	assert.False(t, c.StrictRates)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("SERVER_ADDRESS=:9090\n"), 0o600))
	t.Setenv("SERVER_ADDRESS", ":7070")

	c, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, ":7070", c.ServerAddress)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.NotNil(t, err)
}

func TestLoad_NonPositiveRefresh(t *testing.T) {
	for _, refresh := range []string{"0s", "-1m"} {
		t.Run(refresh, func(t *testing.T) {
			dir := t.TempDir()
			env := "RATES_REFRESH=" + refresh + "\n"
			require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o600))

			_, err := Load(dir)

			assert.NotNil(t, err)
		})
	}
}
