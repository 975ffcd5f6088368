package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fakeLookup(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	lookup := fakeLookup(map[string]string{
		EnvBaseURL:  "https://splunk:8089",
		EnvAPIToken: "tok123",
		EnvTimeout:  "45s",
		EnvSkipTLS:  "true",
	})

	overrides, err := LoadEnvOverrides(lookup)
	require.NoError(t, err)
	require.Equal(t, "https://splunk:8089", overrides.BaseURL)
	require.Equal(t, "tok123", overrides.APIToken.Reveal())
	require.Equal(t, 45*time.Second, overrides.Timeout)
	require.NotNil(t, overrides.SkipTLSVerify)
	require.True(t, *overrides.SkipTLSVerify)
}

func TestLoadEnvOverridesInvalidTimeoutDoesNotLeakValue(t *testing.T) {
	lookup := fakeLookup(map[string]string{EnvTimeout: "not-a-duration"})

	_, err := LoadEnvOverrides(lookup)
	require.Error(t, err)
	require.NotContains(t, err.Error(), "not-a-duration")
}

func TestLoadEnvOverridesInvalidSkipTLS(t *testing.T) {
	lookup := fakeLookup(map[string]string{EnvSkipTLS: "maybe"})

	_, err := LoadEnvOverrides(lookup)
	require.Error(t, err)
}

func TestLoadEnvOverridesMaxResultsAndConfigPath(t *testing.T) {
	lookup := fakeLookup(map[string]string{
		EnvMaxResults: "500",
		EnvConfigPath: "/tmp/custom-config.json",
	})

	overrides, err := LoadEnvOverrides(lookup)
	require.NoError(t, err)
	require.NotNil(t, overrides.MaxResults)
	require.Equal(t, 500, *overrides.MaxResults)
	require.Equal(t, "/tmp/custom-config.json", overrides.ConfigPath)
}

func TestLoadEnvOverridesInvalidMaxResultsDoesNotLeakValue(t *testing.T) {
	lookup := fakeLookup(map[string]string{EnvMaxResults: "not-a-number"})

	_, err := LoadEnvOverrides(lookup)
	require.Error(t, err)
	require.NotContains(t, err.Error(), "not-a-number")
}

func TestLoadDotenvRespectsDisabledFlag(t *testing.T) {
	t.Setenv(EnvDotenvOff, "true")
	dir := t.TempDir()
	path := dir + "/.env"
	require.NoError(t, os.WriteFile(path, []byte(EnvBaseURL+"=https://ignored\n"), 0o600))

	require.NoError(t, LoadDotenv(path))
	_, ok := os.LookupEnv(EnvBaseURL)
	require.False(t, ok)
}

func TestLoadDotenvDoesNotOverwriteExistingVar(t *testing.T) {
	t.Setenv(EnvDotenvOff, "")
	t.Setenv(EnvBaseURL, "https://already-set")
	dir := t.TempDir()
	path := dir + "/.env"
	require.NoError(t, os.WriteFile(path, []byte(EnvBaseURL+"=https://from-dotenv\n"), 0o600))

	require.NoError(t, LoadDotenv(path))
	v, _ := os.LookupEnv(EnvBaseURL)
	require.Equal(t, "https://already-set", v)
}

func TestLoadDotenvRejectsMalformedLine(t *testing.T) {
	t.Setenv(EnvDotenvOff, "")
	dir := t.TempDir()
	path := dir + "/.env"
	require.NoError(t, os.WriteFile(path, []byte("this-line-has-no-equals-sign\n"), 0o600))

	err := LoadDotenv(path)
	require.Error(t, err)
}
