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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/e2e/pkg/petstore"

	"k8s.io/apimachinery/pkg/util/wait"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// InventoryPollInterval is how often the inventory is re-read while
	// waiting for it to catch up with a pet update.
	InventoryPollInterval = 250 * time.Millisecond

	// InventoryTimeout bounds the inventory recomputation delay.
	InventoryTimeout = 5 * time.Second
)

// CreatePetWithCleanup adds a pet and schedules its deletion, this runs whether
// the test passes or fails so we don't need to clean up manually.
func CreatePetWithCleanup(ctx context.Context, client *petstore.Client, payload petstore.Pet) petstore.Pet {
	GinkgoHelper()

	logger := log.FromContext(ctx)

	pet, err := client.AddPet(ctx, payload, http.StatusOK)
	Expect(err).NotTo(HaveOccurred())
	Expect(pet.ID).NotTo(BeNil())

	petID := *pet.ID

	logger.Info("created pet", "id", petID, "name", pet.Name)

	// The spec context only carries cancellation, the client logs through
	// the environment logger.
	DeferCleanup(func(specCtx SpecContext) {
		ctx := log.IntoContext(specCtx, logger)

		// The test may have deleted it already.
		if err := client.DeletePet(ctx, petID, http.StatusOK); err != nil && !errors.Is(err, petstore.ErrUnexpectedStatus) {
			logger.Info("failed to delete pet", "id", petID, "error", err.Error())
		}
	})

	return pet
}

// PickRandomPet lists pets with the status and returns one at random.  Records
// without a name are skipped as the shared store accumulates junk.
func PickRandomPet(ctx context.Context, client *petstore.Client, generator *petstore.Generator, status petstore.PetStatus) petstore.Pet {
	GinkgoHelper()

	pets, err := client.ListPetsByStatus(ctx, status, http.StatusOK)
	Expect(err).NotTo(HaveOccurred())

	candidates := slices.DeleteFunc(pets, func(pet petstore.Pet) bool {
		return pet.ID == nil || pet.Name == ""
	})

	Expect(candidates).NotTo(BeEmpty(), "no usable pets with status %s", status)

	pet := candidates[generator.Index(len(candidates))]

	log.FromContext(ctx).Info("selected random pet", "id", *pet.ID, "name", pet.Name, "status", pet.Status)

	return pet
}

// VerifyStatuses checks that every pet has the expected status.
func VerifyStatuses(pets []petstore.Pet, expected petstore.PetStatus) {
	GinkgoHelper()

	observed := make([]petstore.PetStatus, len(pets))

	for i := range pets {
		observed[i] = pets[i].Status
	}

	unexpected := set.New[petstore.PetStatus](observed...).Difference(set.New[petstore.PetStatus](expected))

	Expect(slices.Collect(unexpected.All())).To(BeEmpty(), "pets returned with statuses other than %s", expected)
}

// InventoryDelta is a change in the count of pets per status.
type InventoryDelta map[petstore.PetStatus]int

// matches reports whether after differs from before by exactly delta.
func (d InventoryDelta) matches(before, after petstore.Inventory) bool {
	for status, change := range d {
		if after.Count(status)-before.Count(status) != change {
			return false
		}
	}

	return true
}

// WaitForInventory polls the inventory until it reflects the delta relative to
// before, or the timeout expires.  The last inventory read is returned either
// way so the caller can assert on it.
func WaitForInventory(ctx context.Context, client *petstore.Client, before petstore.Inventory, delta InventoryDelta) petstore.Inventory {
	GinkgoHelper()

	var after petstore.Inventory

	err := wait.PollUntilContextTimeout(ctx, InventoryPollInterval, InventoryTimeout, false, func(ctx context.Context) (bool, error) {
		inventory, err := client.GetInventory(ctx, http.StatusOK)
		if err != nil {
			return false, err
		}

		after = inventory

		return delta.matches(before, after), nil
	})

	if err != nil && !wait.Interrupted(err) {
		Expect(err).NotTo(HaveOccurred())
	}

	return after
}
