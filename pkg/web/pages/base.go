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
	"fmt"
	"time"

	"github.com/unikorn-cloud/e2e/pkg/web"
)

// DefaultAlertTimeout is how long to wait for an alert when none is configured.
const DefaultAlertTimeout = 2 * time.Second

// Base provides the element primitives shared by every page.
type Base struct {
	driver       web.Driver
	alertTimeout time.Duration

	// dialog is armed by ClickExpectingAlert, clickResult carries the
	// outcome of the click that is blocked until the alert is handled.
	dialog      web.Dialog
	clickResult chan error
}

// NewBase returns page primitives bound to a browser session.
func NewBase(driver web.Driver, alertTimeout time.Duration) *Base {
	if alertTimeout == 0 {
		alertTimeout = DefaultAlertTimeout
	}

	return &Base{
		driver:       driver,
		alertTimeout: alertTimeout,
	}
}

// next returns fresh primitives for a page reached from this one.
func (b *Base) next() *Base {
	return NewBase(b.driver, b.alertTimeout)
}

func (b *Base) Element(locator web.Locator) (web.Element, error) {
	return b.driver.Find(locator)
}

func (b *Base) Children(parent web.Element, locator web.Locator) ([]web.Element, error) {
	return parent.Children(locator)
}

// Click dispatches a DOM click event on the element.
func (b *Base) Click(locator web.Locator) error {
	el, err := b.Element(locator)
	if err != nil {
		return err
	}

	return el.Click()
}

// PointerClick clicks the element the way a user with a mouse would.
func (b *Base) PointerClick(locator web.Locator) error {
	el, err := b.Element(locator)
	if err != nil {
		return err
	}

	return el.PointerClick()
}

// FollowLink clicks a link and waits for the page it leads to.
func (b *Base) FollowLink(locator web.Locator) error {
	el, err := b.Element(locator)
	if err != nil {
		return err
	}

	wait := b.driver.ExpectNavigation()

	if err := el.Click(); err != nil {
		return err
	}

	return wait()
}

// TypeInto replaces the content of an input.
func (b *Base) TypeInto(locator web.Locator, text string) error {
	el, err := b.Element(locator)
	if err != nil {
		return err
	}

	if err := el.Clear(); err != nil {
		return fmt.Errorf("clearing %s: %w", locator, err)
	}

	return el.Type(text)
}

func (b *Base) Attribute(locator web.Locator, name string) (string, error) {
	el, err := b.Element(locator)
	if err != nil {
		return "", err
	}

	return el.Attribute(name)
}

func (b *Base) Text(locator web.Locator) (string, error) {
	el, err := b.Element(locator)
	if err != nil {
		return "", err
	}

	return el.Text()
}

// ClickExpectingAlert clicks an element that opens an alert.  The alert
// blocks the page so the click completes in the background, it must be
// followed by AcceptAlert.
func (b *Base) ClickExpectingAlert(locator web.Locator) error {
	el, err := b.Element(locator)
	if err != nil {
		return err
	}

	b.dialog = b.driver.ArmDialog()
	b.clickResult = make(chan error, 1)

	go func(result chan<- error) {
		result <- el.Click()
	}(b.clickResult)

	return nil
}

// AlertText waits for the alert and returns its message.
func (b *Base) AlertText() (string, error) {
	if b.dialog == nil {
		return "", web.ErrNoAlertPresent
	}

	return b.dialog.Wait(b.alertTimeout)
}

// AlertPresent returns web.ErrNoAlertPresent unless an alert opens in time.
func (b *Base) AlertPresent() error {
	_, err := b.AlertText()

	return err
}

// AcceptAlert dismisses the alert and returns the result of the click that
// raised it.
func (b *Base) AcceptAlert() error {
	if _, err := b.AlertText(); err != nil {
		return err
	}

	defer func() {
		b.dialog = nil
		b.clickResult = nil
	}()

	if err := b.dialog.Accept(); err != nil {
		return fmt.Errorf("accepting alert: %w", err)
	}

	return <-b.clickResult
}
