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
	"strconv"
)

// OptionalBool is a boolean flag that remembers whether it was given, so an
// unset flag leaves the configured value alone.  A bare -flag means true.
type OptionalBool struct {
	value bool
	set   bool
}

func (b *OptionalBool) String() string {
	if b == nil || !b.set {
		return ""
	}

	return strconv.FormatBool(b.value)
}

func (b *OptionalBool) Set(s string) error {
	value, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	b.value = value
	b.set = true

	return nil
}

// IsBoolFlag lets the flag package accept -flag without a value.
func (b *OptionalBool) IsBoolFlag() bool {
	return true
}

// Get returns the value and whether the flag was given.
func (b *OptionalBool) Get() (bool, bool) {
	return b.value, b.set
}
