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

// Package config loads the end-to-end suite configuration from a YAML file,
// an optional .env file and the process environment, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingConfiguration is raised when required keys are unset.
	ErrMissingConfiguration = errors.New("missing required configuration")

	// ErrUnknownOption is raised by Read for a section/option pair that does not exist.
	ErrUnknownOption = errors.New("unknown configuration option")
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultElementTimeout = 3 * time.Second
	defaultAlertTimeout   = 2 * time.Second
	defaultBrowser        = "chrome"
	defaultResultsDir     = "results"
	defaultLogFile        = "automation_logs.log"
	defaultLogLevel       = "info"
)

// APIConfig describes the pet store API under test.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	APIKey         string        `yaml:"-"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	LogRequests    bool          `yaml:"log_requests"`
	LogResponses   bool          `yaml:"log_responses"`
}

// WebConfig describes the demo web application and how to drive a browser at it.
type WebConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Browser        string        `yaml:"browser"`
	Headless       bool          `yaml:"headless"`
	ElementTimeout time.Duration `yaml:"element_timeout"`
	AlertTimeout   time.Duration `yaml:"alert_timeout"`
}

// ResultsConfig controls where run artifacts are written.
type ResultsConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig controls the automation log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
	Debug bool   `yaml:"debug"`
}

// Config is the process wide configuration, read-only once loaded.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Web     WebConfig     `yaml:"web"`
	Results ResultsConfig `yaml:"results"`
	Log     LogConfig     `yaml:"log"`
	Seed    uint64        `yaml:"seed"`
}

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			RequestTimeout: defaultRequestTimeout,
		},
		Web: WebConfig{
			Browser:        defaultBrowser,
			ElementTimeout: defaultElementTimeout,
			AlertTimeout:   defaultAlertTimeout,
		},
		Results: ResultsConfig{
			Dir: defaultResultsDir,
		},
		Log: LogConfig{
			File:  defaultLogFile,
			Level: defaultLogLevel,
		},
	}
}

// Load reads configuration from the YAML file at path, then from any .env file
// beside it or in the working directory, then from environment variables.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	config := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	loadEnvFile(path)

	applyEnvironment(config)

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvironment overlays environment variables on top of file values.
func applyEnvironment(config *Config) {
	config.API.BaseURL = getStringWithDefault("API_BASE_URL", config.API.BaseURL)
	config.API.APIKey = getStringWithDefault("API_KEY", getStringWithDefault("api_key", config.API.APIKey))
	config.API.RequestTimeout = envOr("REQUEST_TIMEOUT", config.API.RequestTimeout, time.ParseDuration)
	config.API.LogRequests = envOr("LOG_REQUESTS", config.API.LogRequests, strconv.ParseBool)
	config.API.LogResponses = envOr("LOG_RESPONSES", config.API.LogResponses, strconv.ParseBool)

	config.Web.BaseURL = getStringWithDefault("WEB_BASE_URL", config.Web.BaseURL)
	config.Web.Browser = getStringWithDefault("E2E_BROWSER", config.Web.Browser)
	config.Web.Headless = envOr("E2E_HEADLESS", config.Web.Headless, strconv.ParseBool)
	config.Web.ElementTimeout = envOr("ELEMENT_TIMEOUT", config.Web.ElementTimeout, time.ParseDuration)
	config.Web.AlertTimeout = envOr("ALERT_TIMEOUT", config.Web.AlertTimeout, time.ParseDuration)

	config.Results.Dir = getStringWithDefault("RESULTS_DIR", config.Results.Dir)

	config.Log.Level = getStringWithDefault("LOG_LEVEL", config.Log.Level)
	config.Log.Debug = envOr("DEBUG_LOGGING", config.Log.Debug, strconv.ParseBool)

	config.Seed = envOr("E2E_SEED", config.Seed, parseUint)
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// envOr parses the variable named key, an unset or unparsable value keeps
// what the file said.
func envOr[T any](key string, fileValue T, parse func(string) (T, error)) T {
	value := os.Getenv(key)
	if value == "" {
		return fileValue
	}

	parsed, err := parse(value)
	if err != nil {
		return fileValue
	}

	return parsed
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// loadEnvFile loads the first .env file found beside the config file or in
// the working directory.  Variables already set in the environment win.
func loadEnvFile(configPath string) {
	envPaths := []string{".env"}

	if configPath != "" {
		envPaths = append([]string{filepath.Join(filepath.Dir(configPath), ".env")}, envPaths...)
	}

	for _, path := range envPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", path, err)
		}

		return
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *Config) error {
	var missing []string

	required := map[string]string{
		"api.base_url": config.API.BaseURL,
		"web.base_url": config.Web.BaseURL,
	}

	for key, value := range required {
		if value == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return fmt.Errorf("%w: %s. Please set these in the config file or the environment", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}

// Read looks up a single option by section, in the style of a key/value
// configuration store.
func (c *Config) Read(section, option string) (string, error) {
	values := map[string]map[string]string{
		"api": {
			"base_url":        c.API.BaseURL,
			"api_key":         c.API.APIKey,
			"request_timeout": c.API.RequestTimeout.String(),
		},
		"web": {
			"base_url":        c.Web.BaseURL,
			"browser":         c.Web.Browser,
			"headless":        strconv.FormatBool(c.Web.Headless),
			"element_timeout": c.Web.ElementTimeout.String(),
			"alert_timeout":   c.Web.AlertTimeout.String(),
		},
		"results": {
			"dir": c.Results.Dir,
		},
		"log": {
			"file":  c.Log.File,
			"level": c.Log.Level,
		},
	}

	options, ok := values[section]
	if !ok {
		return "", fmt.Errorf("%w: section %q", ErrUnknownOption, section)
	}

	value, ok := options[option]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrUnknownOption, section, option)
	}

	return value, nil
}

// LogPath returns the absolute-or-relative path of the automation log.
func (c *Config) LogPath() string {
	if filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}

	return filepath.Join(c.Results.Dir, c.Log.File)
}
