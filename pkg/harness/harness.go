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

// Package harness assembles the process wide test environment once per suite.
package harness

import (
	"context"
	"io"
	"os"

	"github.com/unikorn-cloud/e2e/pkg/config"
	"github.com/unikorn-cloud/e2e/pkg/logging"
	"github.com/unikorn-cloud/e2e/pkg/petstore"
	"github.com/unikorn-cloud/e2e/pkg/schema"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// ConfigPathEnv overrides the configuration file a suite loads.
	ConfigPathEnv = "E2E_CONFIG"

	// SchemaDirEnv overrides the schema directory a suite loads.
	SchemaDirEnv = "E2E_SCHEMAS"
)

// Environment is everything a test needs that outlives a single test.
type Environment struct {
	Config    *config.Config
	Logger    *logging.Logger
	Schemas   *schema.Repository
	Generator *petstore.Generator
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// New loads configuration and schemas and opens the automation log.  The
// paths are used unless overridden from the environment.
func New(configPath, schemaDir string, console io.Writer) (*Environment, error) {
	c, err := config.Load(getStringWithDefault(ConfigPathEnv, configPath))
	if err != nil {
		return nil, err
	}

	schemas, err := schema.Load(getStringWithDefault(SchemaDirEnv, schemaDir))
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(c, console)
	if err != nil {
		return nil, err
	}

	logger.V(1).Info("environment ready", "api", c.API.BaseURL, "web", c.Web.BaseURL, "seed", c.Seed)

	return &Environment{
		Config:    c,
		Logger:    logger,
		Schemas:   schemas,
		Generator: petstore.NewGenerator(c.Seed),
	}, nil
}

// Context returns a context carrying the environment's logger.
func (e *Environment) Context(ctx context.Context) context.Context {
	return log.IntoContext(ctx, e.Logger.Logger)
}

// Client returns a pet store client for the configured API.
func (e *Environment) Client() *petstore.Client {
	return petstore.NewClient(&e.Config.API, e.Schemas)
}

func (e *Environment) Close() error {
	return e.Logger.Close()
}
