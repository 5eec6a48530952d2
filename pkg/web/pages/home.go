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
	"time"

	"github.com/unikorn-cloud/e2e/pkg/web"
)

//nolint:gochecknoglobals
var (
	classAttributeLink = web.ByLinkText("Class Attribute")
	clickLink          = web.ByLinkText("Click")
	dynamicTableLink   = web.ByLinkText("Dynamic Table")
	sampleAppLink      = web.ByLinkText("Sample App")
)

// Home is the landing page listing every playground.
type Home struct {
	*Base
}

func NewHome(driver web.Driver, alertTimeout time.Duration) *Home {
	return &Home{
		Base: NewBase(driver, alertTimeout),
	}
}

func (p *Home) GoToClassAttribute() (*ClassAttribute, error) {
	if err := p.FollowLink(classAttributeLink); err != nil {
		return nil, err
	}

	return &ClassAttribute{Base: p.next()}, nil
}

func (p *Home) GoToClick() (*Click, error) {
	if err := p.FollowLink(clickLink); err != nil {
		return nil, err
	}

	return &Click{Base: p.next()}, nil
}

func (p *Home) GoToDynamicTable() (*DynamicTable, error) {
	if err := p.FollowLink(dynamicTableLink); err != nil {
		return nil, err
	}

	return &DynamicTable{Base: p.next()}, nil
}

func (p *Home) GoToSampleApp() (*SampleApp, error) {
	if err := p.FollowLink(sampleAppLink); err != nil {
		return nil, err
	}

	return &SampleApp{Base: p.next()}, nil
}
