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

var _ = Describe("Store Operations", func() {
	Context("When placing an order", func() {
		Describe("Given a pet created by the test", func() {
			It("should be retrievable by its ID", func() {
				pet := api.CreatePetWithCleanup(ctx, client, generator.PetPayload())

				order, err := client.PlaceOrder(ctx, generator.OrderPayload(*pet.ID), http.StatusOK)
				Expect(err).NotTo(HaveOccurred())
				Expect(order.ID).NotTo(BeNil())

				result, err := client.GetOrderByID(ctx, *order.ID, http.StatusOK)
				Expect(err).NotTo(HaveOccurred())

				env.Logger.Info("checking order", "id", *order.ID, "petId", order.PetID)

				Expect(result.Must()).To(Equal(order))
			})
		})
	})

	Context("When a pet changes status", func() {
		Describe("Given an available pet", func() {
			It("should move one pet from available to pending in the inventory", func() {
				pet := api.CreatePetWithCleanup(ctx, client, generator.PetPayload())

				before, err := client.GetInventory(ctx, http.StatusOK)
				Expect(err).NotTo(HaveOccurred())

				_, err = client.UpdatePet(ctx, *pet.ID, pet.Name, petstore.PetStatusPending, http.StatusOK)
				Expect(err).NotTo(HaveOccurred())

				after := api.WaitForInventory(ctx, client, before, api.InventoryDelta{
					petstore.PetStatusAvailable: -1,
					petstore.PetStatusPending:   1,
				})

				env.Logger.Info("checking inventory", "before", before, "after", after)

				Expect(after.Count(petstore.PetStatusAvailable)).To(Equal(before.Count(petstore.PetStatusAvailable) - 1))
				Expect(after.Count(petstore.PetStatusPending)).To(Equal(before.Count(petstore.PetStatusPending) + 1))
			})
		})
	})
})
