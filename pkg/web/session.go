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
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	defaultElementTimeout = 3 * time.Second
	navigationTimeout     = 30 * time.Second
)

// edgeBinaries are the executable names Edge installs under.
//
//nolint:gochecknoglobals
var edgeBinaries = []string{
	"microsoft-edge",
	"microsoft-edge-stable",
	"msedge",
	"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
}

// Session is a browser driven over the Chrome DevTools Protocol with a
// single stealth page open.
type Session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	options  Options
}

// Ensure the interfaces are implemented.
var _ Driver = &Session{}

func lookupBinary(options Options) (string, error) {
	if options.Bin != "" {
		return options.Bin, nil
	}

	switch options.Browser {
	case Edge:
		for _, name := range edgeBinaries {
			if path, err := exec.LookPath(name); err == nil {
				return path, nil
			}
		}

		return "", fmt.Errorf("%w: edge executable not found", ErrUnsupportedBrowser)
	case Chrome:
		// An empty path lets the launcher download a matching Chromium.
		path, _ := launcher.LookPath()

		return path, nil
	case Firefox:
		return "", fmt.Errorf("%w: %s does not speak the Chrome DevTools Protocol", ErrUnsupportedBrowser, options.Browser)
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownBrowser, options.Browser)
}

// Launch starts a browser, opens a maximised page and loads the base URL.
// The session is bound to ctx, cancelling it aborts any pending operation.
func Launch(ctx context.Context, options Options) (*Session, error) {
	logger := log.FromContext(ctx)

	if options.ElementTimeout == 0 {
		options.ElementTimeout = defaultElementTimeout
	}

	bin, err := lookupBinary(options)
	if err != nil {
		return nil, err
	}

	l := launcher.New().Context(ctx).Headless(options.Headless)

	if bin != "" {
		l = l.Bin(bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching %s: %w", options.Browser, err)
	}

	s := &Session{
		launcher: l,
		browser:  rod.New().Context(ctx).ControlURL(controlURL),
		options:  options,
	}

	if err := s.browser.Connect(); err != nil {
		l.Cleanup()

		return nil, fmt.Errorf("connecting to %s: %w", options.Browser, err)
	}

	page, err := stealth.Page(s.browser)
	if err != nil {
		_ = s.Close()

		return nil, fmt.Errorf("opening page: %w", err)
	}

	s.page = page

	// Headless shells may refuse window state changes, that is not fatal.
	if err := page.SetWindow(&proto.BrowserBounds{WindowState: proto.BrowserWindowStateMaximized}); err != nil {
		logger.V(1).Info("unable to maximise window", "error", err.Error())
	}

	logger.Info("browser session started", "browser", options.Browser, "headless", options.Headless, "bin", bin)

	if options.BaseURL != "" {
		if err := s.Navigate(options.BaseURL); err != nil {
			_ = s.Close()

			return nil, err
		}
	}

	return s, nil
}

func (s *Session) Navigate(url string) error {
	if err := s.page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}

	if err := s.page.WaitLoad(); err != nil {
		return fmt.Errorf("waiting for %s to load: %w", url, err)
	}

	return nil
}

func (s *Session) ExpectNavigation() func() error {
	page, cancel := s.page.WithCancel()

	wait := page.WaitNavigation(proto.PageLifecycleEventNameLoad)

	return func() error {
		defer cancel()

		done := make(chan struct{})

		go func() {
			wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(navigationTimeout):
			return fmt.Errorf("waiting for navigation: %w", context.DeadlineExceeded)
		}

		return s.page.WaitLoad()
	}
}

func (s *Session) Find(locator Locator) (Element, error) {
	query, err := locator.Query()
	if err != nil {
		return nil, err
	}

	page := s.page.Timeout(s.options.ElementTimeout)

	var el *rod.Element

	if query.XPath {
		el, err = page.ElementX(query.Selector)
	} else {
		el, err = page.Element(query.Selector)
	}

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s after %s", ErrElementNotFound, locator, s.options.ElementTimeout)
		}

		return nil, fmt.Errorf("finding %s: %w", locator, err)
	}

	return &element{el: el.CancelTimeout()}, nil
}

func (s *Session) ArmDialog() Dialog {
	page, cancel := s.page.WithCancel()

	wait, handle := page.HandleDialog()

	d := &dialog{
		handle: handle,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		d.event = wait()
		close(d.done)
	}()

	return d
}

func (s *Session) Screenshot() ([]byte, error) {
	return s.page.Screenshot(false, nil)
}

// Close shuts the browser down and removes its profile directory.
func (s *Session) Close() error {
	var err error

	if s.browser != nil {
		err = s.browser.Close()
	}

	if s.launcher != nil {
		s.launcher.Cleanup()
	}

	return err
}

// element adapts a rod element.
type element struct {
	el *rod.Element
}

func (e *element) Click() error {
	_, err := e.el.Eval(`() => this.click()`)

	return err
}

func (e *element) PointerClick() error {
	return e.el.Click(proto.InputMouseButtonLeft, 1)
}

func (e *element) Clear() error {
	_, err := e.el.Eval(`() => {
		this.value = '';
		this.dispatchEvent(new Event('input', { bubbles: true }));
		this.dispatchEvent(new Event('change', { bubbles: true }));
	}`)

	return err
}

func (e *element) Type(text string) error {
	return e.el.Input(text)
}

func (e *element) Attribute(name string) (string, error) {
	value, err := e.el.Attribute(name)
	if err != nil {
		return "", err
	}

	if value == nil {
		return "", nil
	}

	return *value, nil
}

func (e *element) Text() (string, error) {
	return e.el.Text()
}

func (e *element) Children(locator Locator) ([]Element, error) {
	query, err := locator.ChildQuery()
	if err != nil {
		return nil, err
	}

	var children rod.Elements

	if query.XPath {
		children, err = e.el.ElementsX(query.Selector)
	} else {
		children, err = e.el.Elements(query.Selector)
	}

	if err != nil {
		return nil, fmt.Errorf("finding children %s: %w", locator, err)
	}

	result := make([]Element, len(children))

	for i := range children {
		result[i] = &element{el: children[i]}
	}

	return result, nil
}

// dialog waits for the next JavaScript dialog on a cancellable page.
type dialog struct {
	handle func(*proto.PageHandleJavaScriptDialog) error
	cancel context.CancelFunc
	done   chan struct{}
	event  *proto.PageJavascriptDialogOpening
}

func (d *dialog) Wait(timeout time.Duration) (string, error) {
	select {
	case <-d.done:
	case <-time.After(timeout):
		d.cancel()

		return "", fmt.Errorf("%w after %s", ErrNoAlertPresent, timeout)
	}

	// A cancelled wait leaves the event empty.
	if d.event == nil || d.event.Type == "" {
		return "", ErrNoAlertPresent
	}

	return d.event.Message, nil
}

func (d *dialog) Accept() error {
	defer d.cancel()

	return d.handle(&proto.PageHandleJavaScriptDialog{Accept: true})
}
