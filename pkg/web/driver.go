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

//go:generate mockgen -source=driver.go -destination=mock/interfaces.go -package=mock

package web

import (
	"errors"
	"time"
)

var (
	// ErrElementNotFound is raised when nothing matches a locator in time.
	ErrElementNotFound = errors.New("element not found")

	// ErrNoAlertPresent is raised when no alert opens in time.
	ErrNoAlertPresent = errors.New("no alert present")

	// ErrUnknownStrategy is raised for a locator strategy that cannot be lowered.
	ErrUnknownStrategy = errors.New("unknown locator strategy")

	// ErrUnknownBrowser is raised for a browser name that is not recognised.
	ErrUnknownBrowser = errors.New("unknown browser")

	// ErrUnsupportedBrowser is raised for a browser that is recognised but
	// cannot be driven.
	ErrUnsupportedBrowser = errors.New("unsupported browser")
)

// Driver is a single browser session.
type Driver interface {
	// Find waits up to the element timeout for the first match.
	Find(locator Locator) (Element, error)
	// Navigate loads a URL and waits for the page to load.
	Navigate(url string) error
	// ExpectNavigation starts watching for a page load triggered by a
	// later action, the returned function blocks until it completes.
	ExpectNavigation() func() error
	// ArmDialog starts watching for the next alert, it must be called
	// before the action that raises it.
	ArmDialog() Dialog
	// Screenshot captures the viewport as PNG.
	Screenshot() ([]byte, error)
	Close() error
}

// Element is a handle to a DOM element.
type Element interface {
	// Click dispatches a DOM click event.
	Click() error
	// PointerClick moves the pointer over the element, then presses and
	// releases the primary button.
	PointerClick() error
	Clear() error
	Type(text string) error
	// Attribute returns the attribute value, empty when it is not set.
	Attribute(name string) (string, error)
	Text() (string, error)
	// Children returns every descendant matching the locator without waiting.
	Children(locator Locator) ([]Element, error)
}

// Dialog is an armed watcher for a single JavaScript alert.
type Dialog interface {
	// Wait returns the alert message, or ErrNoAlertPresent on timeout.
	Wait(timeout time.Duration) (string, error)
	// Accept dismisses the alert with its OK button.
	Accept() error
}
