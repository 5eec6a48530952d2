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

package web

import (
	"fmt"
	"strings"
	"time"

	"github.com/unikorn-cloud/e2e/pkg/config"
)

// Browser is a browser family a session can be opened with.
type Browser string

const (
	Chrome  Browser = "chrome"
	Firefox Browser = "firefox"
	Edge    Browser = "edge"
)

// ParseBrowser maps a case insensitive browser name to a Browser.
func ParseBrowser(name string) (Browser, error) {
	switch b := Browser(strings.ToLower(strings.TrimSpace(name))); b {
	case Chrome, Firefox, Edge:
		return b, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownBrowser, name)
}

// Options control how a session is launched.
type Options struct {
	Browser        Browser
	Headless       bool
	BaseURL        string
	ElementTimeout time.Duration
	AlertTimeout   time.Duration
	// Bin overrides browser executable discovery.
	Bin string
}

// OptionsFromConfig builds launch options from the web configuration.
func OptionsFromConfig(c *config.WebConfig) (Options, error) {
	browser, err := ParseBrowser(c.Browser)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Browser:        browser,
		Headless:       c.Headless,
		BaseURL:        c.BaseURL,
		ElementTimeout: c.ElementTimeout,
		AlertTimeout:   c.AlertTimeout,
	}, nil
}
