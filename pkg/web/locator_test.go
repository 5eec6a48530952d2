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

package web_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/e2e/pkg/config"
	"github.com/unikorn-cloud/e2e/pkg/web"
)

// TestQuery ensures every strategy lowers to a native selector.
func TestQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		locator web.Locator
		query   web.Query
		child   web.Query
	}{
		{
			name:    "id",
			locator: web.ByID("login"),
			query:   web.Query{Selector: `[id="login"]`},
			child:   web.Query{Selector: `[id="login"]`},
		},
		{
			name:    "id with quote",
			locator: web.ByID(`a"b`),
			query:   web.Query{Selector: `[id="a\"b"]`},
			child:   web.Query{Selector: `[id="a\"b"]`},
		},
		{
			name:    "css",
			locator: web.ByCSS(".container .btn-primary"),
			query:   web.Query{Selector: ".container .btn-primary"},
			child:   web.Query{Selector: ".container .btn-primary"},
		},
		{
			name:    "class name",
			locator: web.ByClassName("bg-warning"),
			query:   web.Query{Selector: ".bg-warning"},
			child:   web.Query{Selector: ".bg-warning"},
		},
		{
			name:    "link text",
			locator: web.ByLinkText("Dynamic Table"),
			query:   web.Query{Selector: "//a[normalize-space(.)='Dynamic Table']", XPath: true},
			child:   web.Query{Selector: ".//a[normalize-space(.)='Dynamic Table']", XPath: true},
		},
		{
			name:    "link text with apostrophe",
			locator: web.ByLinkText("Don't"),
			query:   web.Query{Selector: `//a[normalize-space(.)="Don't"]`, XPath: true},
			child:   web.Query{Selector: `.//a[normalize-space(.)="Don't"]`, XPath: true},
		},
		{
			name:    "link text with both quotes",
			locator: web.ByLinkText(`a'b"c`),
			query:   web.Query{Selector: `//a[normalize-space(.)=concat('a', "'", 'b"c')]`, XPath: true},
			child:   web.Query{Selector: `.//a[normalize-space(.)=concat('a', "'", 'b"c')]`, XPath: true},
		},
		{
			name:    "xpath",
			locator: web.ByXPath("//div[@role='table']"),
			query:   web.Query{Selector: "//div[@role='table']", XPath: true},
			child:   web.Query{Selector: "//div[@role='table']", XPath: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			query, err := test.locator.Query()
			require.NoError(t, err)
			require.Equal(t, test.query, query)

			child, err := test.locator.ChildQuery()
			require.NoError(t, err)
			require.Equal(t, test.child, child)
		})
	}
}

// TestQueryUnknownStrategy ensures bad strategies are rejected.
func TestQueryUnknownStrategy(t *testing.T) {
	t.Parallel()

	_, err := web.Locator{Strategy: "tag name", Value: "div"}.Query()
	require.ErrorIs(t, err, web.ErrUnknownStrategy)
}

// TestParseBrowser ensures names are matched case insensitively.
func TestParseBrowser(t *testing.T) {
	t.Parallel()

	for name, expected := range map[string]web.Browser{
		"chrome":    web.Chrome,
		"Chrome":    web.Chrome,
		"FIREFOX":   web.Firefox,
		" edge ":    web.Edge,
		"MicroSoft": "",
		"":          "",
	} {
		browser, err := web.ParseBrowser(name)
		if expected == "" {
			require.ErrorIs(t, err, web.ErrUnknownBrowser, name)
			continue
		}

		require.NoError(t, err, name)
		require.Equal(t, expected, browser, name)
	}
}

// TestOptionsFromConfig ensures configuration errors surface before launch.
func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	options, err := web.OptionsFromConfig(&config.WebConfig{
		BaseURL:  "http://uitestingplayground.com",
		Browser:  "Edge",
		Headless: true,
	})
	require.NoError(t, err)
	require.Equal(t, web.Edge, options.Browser)
	require.True(t, options.Headless)

	_, err = web.OptionsFromConfig(&config.WebConfig{Browser: "safari"})
	require.ErrorIs(t, err, web.ErrUnknownBrowser)
}

// TestLaunchFirefox ensures firefox is rejected before anything is started.
func TestLaunchFirefox(t *testing.T) {
	t.Parallel()

	_, err := web.Launch(t.Context(), web.Options{Browser: web.Firefox})
	require.ErrorIs(t, err, web.ErrUnsupportedBrowser)
}
