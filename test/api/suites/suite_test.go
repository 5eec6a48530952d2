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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/e2e/pkg/harness"
	"github.com/unikorn-cloud/e2e/pkg/petstore"
)

var (
	env       *harness.Environment
	client    *petstore.Client
	generator *petstore.Generator
	ctx       context.Context
)

var _ = BeforeSuite(func() {
	var err error

	env, err = harness.New("../../../config/e2e.yaml", "../../data/schemas", GinkgoWriter)
	Expect(err).NotTo(HaveOccurred())

	client = env.Client()
	generator = env.Generator
})

var _ = AfterSuite(func() {
	if env != nil {
		Expect(env.Close()).To(Succeed())
	}
})

var _ = BeforeEach(func() {
	ctx = env.Context(context.Background())
})

var _ = ReportBeforeEach(func(report SpecReport) {
	if env != nil {
		env.Logger.Info("starting test", "name", report.FullText())
	}
})

var _ = ReportAfterEach(func(report SpecReport) {
	if env != nil {
		env.Logger.Info("finished test", "name", report.FullText(), "state", report.State.String(), "duration", report.RunTime.String())
	}
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Test Suites")
}
