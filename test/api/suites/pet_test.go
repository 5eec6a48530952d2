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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/e2e/pkg/petstore"
	"github.com/unikorn-cloud/e2e/test/api"
)

var _ = Describe("Pet Management", func() {
	Context("When updating an existing pet", func() {
		Describe("Given an available pet in the store", func() {
			It("should persist the new name and status", func() {
				pet := api.PickRandomPet(ctx, client, generator, petstore.PetStatusAvailable)

				name := generator.PetName()
				status := generator.PetStatus()

				_, err := client.UpdatePet(ctx, *pet.ID, name, status, http.StatusOK)
				Expect(err).NotTo(HaveOccurred())

				result, err := client.GetPetByID(ctx, *pet.ID, http.StatusOK)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.IsSuccess()).To(BeTrue())

				expected := pet
				expected.Name = name
				expected.Status = status

				env.Logger.Info("checking updated pet", "id", *pet.ID, "name", name, "status", status)

				Expect(result.Must()).To(Equal(expected))
			})
		})
	})

	Context("When deleting an existing pet", func() {
		Describe("Given a pet created by the test", func() {
			It("should no longer be found", func() {
				pet := api.CreatePetWithCleanup(ctx, client, generator.PetPayload())

				result, err := client.GetPetByID(ctx, *pet.ID, http.StatusOK)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Must().Name).To(Equal(pet.Name))

				Expect(client.DeletePet(ctx, *pet.ID, http.StatusOK)).To(Succeed())

				result, err = client.GetPetByID(ctx, *pet.ID, http.StatusNotFound)
				Expect(err).NotTo(HaveOccurred())

				failure, ok := result.Failure()
				Expect(ok).To(BeTrue())

				env.Logger.Info("checking deleted pet error", "id", *pet.ID, "type", failure.Type, "message", failure.Message)

				Expect(failure.Type).To(Equal("error"))
				Expect(failure.Message).To(Equal("Pet not found"))
			})
		})
	})

	Context("When finding pets by status", func() {
		DescribeTable("should only return pets with the requested status",
			func(status petstore.PetStatus) {
				pets, err := client.ListPetsByStatus(ctx, status, http.StatusOK)
				Expect(err).NotTo(HaveOccurred())

				env.Logger.Info("checking pet statuses", "status", status, "count", len(pets))

				api.VerifyStatuses(pets, status)
			},
			Entry("available", petstore.PetStatusAvailable),
			Entry("pending", petstore.PetStatusPending),
			Entry("sold", petstore.PetStatusSold),
		)
	})
})
