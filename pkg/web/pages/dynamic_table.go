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
	"errors"
	"fmt"
	"strings"

	"github.com/unikorn-cloud/e2e/pkg/web"
)

var (
	// ErrUnexpectedTableLayout is raised when the table lacks a header
	// group, a body group or a CPU column.
	ErrUnexpectedTableLayout = errors.New("unexpected table layout")

	// ErrUnexpectedLabel is raised when the warning label has no value.
	ErrUnexpectedLabel = errors.New("unexpected label format")
)

const (
	cpuHeader   = "CPU"
	chromeLabel = "Chrome"
)

//nolint:gochecknoglobals
var (
	chromeCPULabel = web.ByClassName("bg-warning")
	tasksTable     = web.ByCSS("[role='table'][aria-label='Tasks']")
	rowGroups      = web.ByCSS("[role='rowgroup']")
	columnHeaders  = web.ByCSS("[role='columnheader']")
	rows           = web.ByCSS("[role='row']")
	cells          = web.ByCSS("[role='cell']")
)

// DynamicTable shows a task manager table whose columns and rows shuffle on
// every load, and a label quoting Chrome's CPU usage.
type DynamicTable struct {
	*Base
}

// ChromeCPUFromLabel returns the value of a "Chrome CPU: 3.1%" label.
func (p *DynamicTable) ChromeCPUFromLabel() (string, error) {
	text, err := p.Text(chromeCPULabel)
	if err != nil {
		return "", err
	}

	_, value, ok := strings.Cut(text, ":")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnexpectedLabel, text)
	}

	return strings.TrimSpace(value), nil
}

// ChromeCPUFromTable finds the CPU column by its header, then reads it from
// the first row named Chrome.  The first row group must hold the headers
// and the second the data, and names must be in the first cell.  When no
// row is named Chrome the result is empty.
func (p *DynamicTable) ChromeCPUFromTable() (string, error) {
	table, err := p.Element(tasksTable)
	if err != nil {
		return "", err
	}

	groups, err := p.Children(table, rowGroups)
	if err != nil {
		return "", err
	}

	if len(groups) < 2 {
		return "", fmt.Errorf("%w: expected header and body row groups, got %d", ErrUnexpectedTableLayout, len(groups))
	}

	column, err := p.columnIndex(groups[0], cpuHeader)
	if err != nil {
		return "", err
	}

	body, err := p.Children(groups[1], rows)
	if err != nil {
		return "", err
	}

	for _, row := range body {
		values, err := p.Children(row, cells)
		if err != nil {
			return "", err
		}

		if len(values) == 0 {
			continue
		}

		name, err := values[0].Text()
		if err != nil {
			return "", err
		}

		if name != chromeLabel {
			continue
		}

		if column >= len(values) {
			return "", nil
		}

		value, err := values[column].Text()
		if err != nil {
			return "", err
		}

		return strings.TrimSpace(value), nil
	}

	return "", nil
}

func (p *DynamicTable) columnIndex(headerGroup web.Element, header string) (int, error) {
	headers, err := p.Children(headerGroup, columnHeaders)
	if err != nil {
		return -1, err
	}

	for i, h := range headers {
		text, err := h.Text()
		if err != nil {
			return -1, err
		}

		if text == header {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: no %s column", ErrUnexpectedTableLayout, header)
}
