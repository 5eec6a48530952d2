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

package pages

import (
	"strings"

	"github.com/unikorn-cloud/e2e/pkg/web"
)

//nolint:gochecknoglobals
var (
	loginStatusLabel = web.ByID("loginstatus")
	loginButton      = web.ByID("login")
	userNameField    = web.ByCSS("input[name='UserName']")
	passwordField    = web.ByCSS("input[name='Password']")
)

// SampleApp is a login form, the same button logs in and out.
type SampleApp struct {
	*Base
}

func (p *SampleApp) LoginStatus() (string, error) {
	text, err := p.Text(loginStatusLabel)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

func (p *SampleApp) LoginButtonText() (string, error) {
	return p.Text(loginButton)
}

func (p *SampleApp) ClickLogin() error {
	return p.Click(loginButton)
}

func (p *SampleApp) ClickLogout() error {
	return p.Click(loginButton)
}

func (p *SampleApp) TypeCredentials(username, password string) error {
	if err := p.TypeInto(userNameField, username); err != nil {
		return err
	}

	return p.TypeInto(passwordField, password)
}
