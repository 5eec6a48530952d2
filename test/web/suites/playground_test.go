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
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	webfixtures "github.com/unikorn-cloud/e2e/test/web"
)

const (
	loginButtonLogIn  = "Log In"
	loginButtonLogOut = "Log Out"
)

// loginTable runs at tree construction time, so the path is relative to this
// package.
func loginTable(check func(webfixtures.LoginCase)) []any {
	args, err := webfixtures.LoginTable(check, "../../data/web_login_data.json")
	if err != nil {
		panic(err)
	}

	return args
}

var _ = Describe("UI Playground", func() {
	Context("When pressing a button identified by class", func() {
		It("should raise the primary button alert", func() {
			page, err := home.GoToClassAttribute()
			Expect(err).NotTo(HaveOccurred())

			Expect(page.ClickPrimaryButton()).To(Succeed())
			Expect(page.AssertAlertPresent()).To(Succeed())

			text, err := page.AlertText()
			Expect(err).NotTo(HaveOccurred())

			env.Logger.Info("checking alert text", "text", text)

			Expect(text).To(Equal("Primary button pressed"))
			Expect(page.AcceptAlert()).To(Succeed())
		})
	})

	Context("When clicking a button that ignores DOM events", func() {
		It("should only change state on a physical click", func() {
			page, err := home.GoToClick()
			Expect(err).NotTo(HaveOccurred())

			class, err := page.BadButtonClass()
			Expect(err).NotTo(HaveOccurred())
			Expect(class).To(ContainSubstring("btn-primary"))

			Expect(page.ClickBadButtonAsDOMEvent()).To(Succeed())

			class, err = page.BadButtonClass()
			Expect(err).NotTo(HaveOccurred())
			Expect(class).To(ContainSubstring("btn-primary"))

			Expect(page.ClickBadButtonAsPhysicalMouse()).To(Succeed())

			class, err = page.BadButtonClass()
			Expect(err).NotTo(HaveOccurred())

			env.Logger.Info("checking button class", "class", class)

			Expect(class).To(ContainSubstring("btn-success"))
		})
	})

	Context("When reading the dynamic table", func() {
		It("should agree with the summary label", func() {
			page, err := home.GoToDynamicTable()
			Expect(err).NotTo(HaveOccurred())

			label, err := page.ChromeCPUFromLabel()
			Expect(err).NotTo(HaveOccurred())

			value, err := page.ChromeCPUFromTable()
			Expect(err).NotTo(HaveOccurred())

			env.Logger.Info("checking chrome cpu", "label", label, "table", value)

			Expect(value).To(Equal(label))
		})
	})

	Context("When logging in to the sample app", func() {
		checkLogin := func(c webfixtures.LoginCase) {
			page, err := home.GoToSampleApp()
			Expect(err).NotTo(HaveOccurred())

			Expect(page.TypeCredentials(c.Username, c.Password)).To(Succeed())
			Expect(page.ClickLogin()).To(Succeed())

			status, err := page.LoginStatus()
			Expect(err).NotTo(HaveOccurred())

			button, err := page.LoginButtonText()
			Expect(err).NotTo(HaveOccurred())

			env.Logger.Info("checking login status", "username", c.Username, "status", status, "button", button)

			if !c.Valid {
				Expect(status).To(Equal("Invalid username/password"))
				Expect(button).To(Equal(loginButtonLogIn))

				return
			}

			Expect(status).To(Equal(fmt.Sprintf("Welcome, %s!", c.Username)))
			Expect(button).To(Equal(loginButtonLogOut))

			Expect(page.ClickLogout()).To(Succeed())

			status, err = page.LoginStatus()
			Expect(err).NotTo(HaveOccurred())

			button, err = page.LoginButtonText()
			Expect(err).NotTo(HaveOccurred())

			Expect(status).To(Equal("User logged out."))
			Expect(button).To(Equal(loginButtonLogIn))
		}

		DescribeTable("should report the login outcome", loginTable(checkLogin)...)
	})
})
