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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/e2e/pkg/web"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// ErrMalformedLoginData is raised when a login data record is not a
// [username, password, valid] triple.
var ErrMalformedLoginData = errors.New("malformed login data")

const screenshotTimestamp = "20060102-150405"

// LoginCase is a single set of credentials for the sample app.
type LoginCase struct {
	Username string
	Password string
	Valid    bool
}

// UnmarshalJSON reads the compact [username, password, valid] form.
func (c *LoginCase) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage

	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if len(fields) != 3 {
		return fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedLoginData, len(fields))
	}

	if err := json.Unmarshal(fields[0], &c.Username); err != nil {
		return fmt.Errorf("%w: username: %w", ErrMalformedLoginData, err)
	}

	if err := json.Unmarshal(fields[1], &c.Password); err != nil {
		return fmt.Errorf("%w: password: %w", ErrMalformedLoginData, err)
	}

	if err := json.Unmarshal(fields[2], &c.Valid); err != nil {
		return fmt.Errorf("%w: valid: %w", ErrMalformedLoginData, err)
	}

	return nil
}

// LoadLoginData reads the login cases file.
func LoadLoginData(path string) ([]LoginCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cases []LoginCase

	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cases, nil
}

// LoginTable builds DescribeTable arguments running check once per case in
// the login data file.
func LoginTable(check func(LoginCase), path string) ([]any, error) {
	cases, err := LoadLoginData(path)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(cases)+1)
	args = append(args, check)

	for _, c := range cases {
		args = append(args, Entry(fmt.Sprintf("%q/%q valid=%t", c.Username, c.Password, c.Valid), c))
	}

	return args, nil
}

// StartSession launches a browser for the current test.  On failure a
// screenshot is saved under dir and attached to the report, then the session
// is closed.
func StartSession(ctx context.Context, options web.Options, dir string) *web.Session {
	GinkgoHelper()

	session, err := web.Launch(ctx, options)
	Expect(err).NotTo(HaveOccurred())

	DeferCleanup(func() {
		if CurrentSpecReport().Failed() {
			captureScreenshot(ctx, session, dir)
		}

		if err := session.Close(); err != nil {
			log.FromContext(ctx).Info("failed to close browser session", "error", err.Error())
		}
	})

	return session
}

// captureScreenshot is best effort, a failure to capture must not mask the
// failure that triggered it.
func captureScreenshot(ctx context.Context, session *web.Session, dir string) {
	log := log.FromContext(ctx)

	data, err := session.Screenshot()
	if err != nil {
		log.Info("failed to capture screenshot", "error", err.Error())

		return
	}

	dir = filepath.Join(dir, "screenshots")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Info("failed to create screenshot directory", "error", err.Error())

		return
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", screenshotName(CurrentSpecReport().LeafNodeText), time.Now().Format(screenshotTimestamp)))

	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.Info("failed to save screenshot", "error", err.Error())

		return
	}

	log.Info("saved screenshot", "path", path)

	AddReportEntry("screenshot", path)
}

// screenshotName reduces a spec name to something safe in a file name.
func screenshotName(text string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}

		return '_'
	}, strings.TrimSpace(text))

	if name == "" {
		return "test"
	}

	return name
}
