/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/e2e/pkg/config"
)

const configYAML = `api:
  base_url: https://petstore.example.com/v2
  request_timeout: 10s
web:
  base_url: http://playground.example.com
  browser: edge
  headless: true
results:
  dir: out
log:
  level: debug
`

// clearEnvironment makes sure values from the host do not leak into a test.
func clearEnvironment(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"API_BASE_URL", "API_KEY", "api_key", "REQUEST_TIMEOUT", "LOG_REQUESTS", "LOG_RESPONSES",
		"WEB_BASE_URL", "E2E_BROWSER", "E2E_HEADLESS", "ELEMENT_TIMEOUT", "ALERT_TIMEOUT",
		"RESULTS_DIR", "LOG_LEVEL", "DEBUG_LOGGING", "E2E_SEED",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "e2e.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestLoadFile ensures file values are read and defaults fill the gaps.
func TestLoadFile(t *testing.T) {
	clearEnvironment(t)

	c, err := config.Load(writeConfig(t, configYAML))
	require.NoError(t, err)

	require.Equal(t, "https://petstore.example.com/v2", c.API.BaseURL)
	require.Equal(t, 10*time.Second, c.API.RequestTimeout)
	require.Equal(t, "http://playground.example.com", c.Web.BaseURL)
	require.Equal(t, "edge", c.Web.Browser)
	require.True(t, c.Web.Headless)
	require.Equal(t, 3*time.Second, c.Web.ElementTimeout)
	require.Equal(t, 2*time.Second, c.Web.AlertTimeout)
	require.Equal(t, "out", c.Results.Dir)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, filepath.Join("out", "automation_logs.log"), c.LogPath())
}

// TestLoadEnvironmentOverrides ensures the environment beats the file.
func TestLoadEnvironmentOverrides(t *testing.T) {
	clearEnvironment(t)

	t.Setenv("API_BASE_URL", "http://localhost:8080/v2")
	t.Setenv("API_KEY", "special-key")
	t.Setenv("E2E_BROWSER", "firefox")
	t.Setenv("E2E_HEADLESS", "false")
	t.Setenv("ALERT_TIMEOUT", "5s")
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")
	t.Setenv("E2E_SEED", "42")
	t.Setenv("LOG_RESPONSES", "true")
	t.Setenv("DEBUG_LOGGING", "sometimes")

	c, err := config.Load(writeConfig(t, configYAML))
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080/v2", c.API.BaseURL)
	require.Equal(t, "special-key", c.API.APIKey)
	require.Equal(t, "firefox", c.Web.Browser)
	require.False(t, c.Web.Headless)
	require.Equal(t, 5*time.Second, c.Web.AlertTimeout)
	require.Equal(t, 10*time.Second, c.API.RequestTimeout, "unparsable durations keep the file value")
	require.Equal(t, uint64(42), c.Seed)
	require.True(t, c.API.LogResponses)
	require.False(t, c.Log.Debug, "unparsable booleans keep the file value")
}

// TestLoadLegacyCredentialName ensures the lower case credential variable is honoured.
func TestLoadLegacyCredentialName(t *testing.T) {
	clearEnvironment(t)

	t.Setenv("api_key", "legacy")

	c, err := config.Load(writeConfig(t, configYAML))
	require.NoError(t, err)
	require.Equal(t, "legacy", c.API.APIKey)
}

// TestLoadEnvFile ensures a .env beside the config file is applied.
func TestLoadEnvFile(t *testing.T) {
	clearEnvironment(t)

	// Register restoration, then unset so godotenv is allowed to populate it.
	t.Setenv("API_KEY", "placeholder")
	require.NoError(t, os.Unsetenv("API_KEY"))

	path := writeConfig(t, configYAML)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), ".env"), []byte("API_KEY=from-dotenv\n"), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-dotenv", c.API.APIKey)
}

// TestLoadMissingRequired ensures every missing key is reported at once.
func TestLoadMissingRequired(t *testing.T) {
	clearEnvironment(t)

	_, err := config.Load(writeConfig(t, "log:\n  level: info\n"))
	require.ErrorIs(t, err, config.ErrMissingConfiguration)
	require.ErrorContains(t, err, "api.base_url, web.base_url")
}

// TestLoadWithoutFile ensures the environment alone is sufficient.
func TestLoadWithoutFile(t *testing.T) {
	clearEnvironment(t)

	t.Setenv("API_BASE_URL", "http://api")
	t.Setenv("WEB_BASE_URL", "http://web")

	c, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "chrome", c.Web.Browser)
	require.Equal(t, 30*time.Second, c.API.RequestTimeout)
}

// TestLoadMissingFile ensures an explicit but absent file is an error.
func TestLoadMissingFile(t *testing.T) {
	clearEnvironment(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

// TestRead exercises section/option lookups.
func TestRead(t *testing.T) {
	clearEnvironment(t)

	c, err := config.Load(writeConfig(t, configYAML))
	require.NoError(t, err)

	value, err := c.Read("api", "base_url")
	require.NoError(t, err)
	require.Equal(t, "https://petstore.example.com/v2", value)

	value, err = c.Read("web", "headless")
	require.NoError(t, err)
	require.Equal(t, "true", value)

	_, err = c.Read("web", "colour")
	require.ErrorIs(t, err, config.ErrUnknownOption)

	_, err = c.Read("database", "url")
	require.ErrorIs(t, err, config.ErrUnknownOption)
}
