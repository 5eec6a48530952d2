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
	"github.com/unikorn-cloud/e2e/pkg/web"
)

//nolint:gochecknoglobals
var primaryButton = web.ByCSS(".container .btn-primary")

// ClassAttribute has three buttons told apart only by class, the primary
// one raises an alert.
type ClassAttribute struct {
	*Base
}

func (p *ClassAttribute) ClickPrimaryButton() error {
	return p.ClickExpectingAlert(primaryButton)
}

func (p *ClassAttribute) AssertAlertPresent() error {
	return p.AlertPresent()
}
