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
)

// Strategy is how a locator value is interpreted.
type Strategy string

const (
	ID        Strategy = "id"
	CSS       Strategy = "css"
	ClassName Strategy = "class name"
	LinkText  Strategy = "link text"
	XPath     Strategy = "xpath"
)

// Locator finds elements in a document.
type Locator struct {
	Strategy Strategy
	Value    string
}

func ByID(id string) Locator {
	return Locator{Strategy: ID, Value: id}
}

func ByCSS(selector string) Locator {
	return Locator{Strategy: CSS, Value: selector}
}

func ByClassName(class string) Locator {
	return Locator{Strategy: ClassName, Value: class}
}

func ByLinkText(text string) Locator {
	return Locator{Strategy: LinkText, Value: text}
}

func ByXPath(expression string) Locator {
	return Locator{Strategy: XPath, Value: expression}
}

func (l Locator) String() string {
	return fmt.Sprintf("%s=%q", l.Strategy, l.Value)
}

// Query is a locator lowered to a selector the browser understands natively.
type Query struct {
	Selector string
	XPath    bool
}

// xpathLiteral quotes s for use in an XPath expression.  XPath 1.0 has no
// escapes so strings holding both quote kinds are built with concat().
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}

	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	parts := strings.Split(s, "'")
	quoted := make([]string, len(parts))

	for i, part := range parts {
		quoted[i] = "'" + part + "'"
	}

	return "concat(" + strings.Join(quoted, `, "'", `) + ")"
}

// cssString quotes s for use as a CSS attribute value.
func cssString(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

// Query lowers the locator for a document wide search.
func (l Locator) Query() (Query, error) {
	return l.query("//")
}

// ChildQuery lowers the locator for a search below an element.
func (l Locator) ChildQuery() (Query, error) {
	return l.query(".//")
}

func (l Locator) query(axis string) (Query, error) {
	switch l.Strategy {
	case ID:
		return Query{Selector: "[id=" + cssString(l.Value) + "]"}, nil
	case CSS:
		return Query{Selector: l.Value}, nil
	case ClassName:
		return Query{Selector: "." + l.Value}, nil
	case LinkText:
		return Query{Selector: axis + "a[normalize-space(.)=" + xpathLiteral(l.Value) + "]", XPath: true}, nil
	case XPath:
		return Query{Selector: l.Value, XPath: true}, nil
	}

	return Query{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, l.Strategy)
}
