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

// Package preflight checks an environment is fit to run the suites against
// before any of them start.
package preflight

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/e2e/pkg/harness"
	"github.com/unikorn-cloud/e2e/pkg/petstore"
	"github.com/unikorn-cloud/e2e/pkg/web"

	"k8s.io/apimachinery/pkg/util/wait"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	probeInterval = time.Second
)

// Options control what the preflight checks.
type Options struct {
	ConfigPath   string
	SchemaDir    string
	Browser      string
	Headless     string
	SkipBrowser  bool
	ProbeTimeout time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ConfigPath, "config", "config/e2e.yaml", "Configuration file to check")
	f.StringVar(&o.SchemaDir, "schemas", "test/data/schemas", "Directory containing the response schemas")
	f.StringVar(&o.Browser, "browser", "", "Browser to launch, overrides the configuration")
	f.StringVar(&o.Headless, "headless", "", "Run the browser headless, overrides the configuration")
	f.BoolVar(&o.SkipBrowser, "skip-browser", false, "Do not launch a browser")
	f.DurationVar(&o.ProbeTimeout, "probe-timeout", 10*time.Second, "How long to wait for the API to respond")

	f.Lookup("headless").NoOptDefVal = "true"
}

// webOptions applies command line overrides to the web configuration.
func (o *Options) webOptions(env *harness.Environment) (web.Options, error) {
	c := env.Config.Web

	if o.Browser != "" {
		c.Browser = o.Browser
	}

	if o.Headless != "" {
		headless, err := strconv.ParseBool(o.Headless)
		if err != nil {
			return web.Options{}, fmt.Errorf("parsing headless flag: %w", err)
		}

		c.Headless = headless
	}

	return web.OptionsFromConfig(&c)
}

// Run loads the environment, waits for the API to serve a schema compliant
// inventory and, unless skipped, opens the playground in a browser.
func Run(ctx context.Context, o *Options, console io.Writer) error {
	env, err := harness.New(o.ConfigPath, o.SchemaDir, console)
	if err != nil {
		return err
	}

	defer env.Close()

	ctx = env.Context(ctx)

	if err := probeAPI(ctx, env.Client(), o.ProbeTimeout); err != nil {
		return err
	}

	if o.SkipBrowser {
		return nil
	}

	options, err := o.webOptions(env)
	if err != nil {
		return err
	}

	return probeBrowser(ctx, options)
}

func probeAPI(ctx context.Context, client *petstore.Client, timeout time.Duration) error {
	log := log.FromContext(ctx)

	var lastErr error

	err := wait.PollUntilContextTimeout(ctx, probeInterval, timeout, true, func(ctx context.Context) (bool, error) {
		inventory, err := client.GetInventory(ctx, http.StatusOK)
		if err != nil {
			log.V(1).Info("api not ready", "error", err.Error())

			lastErr = err

			return false, nil
		}

		log.Info("api ready", "url", client.Endpoints().BaseURL(), "statuses", len(inventory))

		return true, nil
	})

	if err != nil {
		if lastErr != nil {
			return fmt.Errorf("probing api: %w", lastErr)
		}

		return fmt.Errorf("probing api: %w", err)
	}

	return nil
}

// homeLink is present on the playground home page once it has rendered.
//
//nolint:gochecknoglobals
var homeLink = web.ByLinkText("Sample App")

func probeBrowser(ctx context.Context, options web.Options) error {
	session, err := web.Launch(ctx, options)
	if err != nil {
		return err
	}

	defer func() {
		if err := session.Close(); err != nil {
			log.FromContext(ctx).Info("failed to close browser session", "error", err.Error())
		}
	}()

	if _, err := session.Find(homeLink); err != nil {
		return fmt.Errorf("checking playground home page: %w", err)
	}

	log.FromContext(ctx).Info("browser ready", "browser", options.Browser, "url", options.BaseURL)

	return nil
}
