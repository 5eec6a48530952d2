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

package petstore

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"k8s.io/utils/ptr"
)

// ErrUnknownDataKind is raised when Generate is asked for a kind it cannot produce.
var ErrUnknownDataKind = errors.New("unknown data kind")

// DataKind names a kind of generated test data.
type DataKind string

const (
	DataKindPetName      DataKind = "pet_name"
	DataKindPetStatus    DataKind = "pet_status"
	DataKindPetPayload   DataKind = "pet_payload"
	DataKindOrderPayload DataKind = "order_payload"
)

const (
	minOrderQuantity = 1
	maxOrderQuantity = 5

	// shipDateFormat is RFC3339 with millisecond precision.
	shipDateFormat = "2006-01-02T15:04:05.000Z07:00"
)

// Generator produces randomized payloads.  It is safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewGenerator returns a generator seeded with seed, zero picks a random seed
// so runs are not reproducible unless asked to be.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

func (g *Generator) PetName() string {
	return g.faker.FirstName()
}

func (g *Generator) PetStatus() PetStatus {
	statuses := PetStatuses()

	return statuses[g.faker.IntRange(0, len(statuses)-1)]
}

// Index picks a random index into a collection of length n, which must be
// positive.
func (g *Generator) Index(n int) int {
	return g.faker.IntRange(0, n-1)
}

func (g *Generator) orderStatus() OrderStatus {
	statuses := OrderStatuses()

	return statuses[g.faker.IntRange(0, len(statuses)-1)]
}

func (g *Generator) photoURL() string {
	return fmt.Sprintf("%s/%s.jpg", strings.TrimSuffix(g.faker.URL(), "/"), strings.ToLower(g.faker.LetterN(8)))
}

// PetPayload returns a new available pet with a single photo.
func (g *Generator) PetPayload() Pet {
	return Pet{
		Name:      g.PetName(),
		PhotoURLs: []string{g.photoURL()},
		Status:    PetStatusAvailable,
	}
}

// OrderPayload returns an order for the pet shipping now.
func (g *Generator) OrderPayload(petID int64) Order {
	return Order{
		PetID:    petID,
		Quantity: g.faker.IntRange(minOrderQuantity, maxOrderQuantity),
		ShipDate: g.now().UTC().Format(shipDateFormat),
		Status:   g.orderStatus(),
		Complete: ptr.To(g.faker.Bool()),
	}
}

// Generate dispatches on a data kind name, petID is only used by orders.
func (g *Generator) Generate(kind DataKind, petID int64) (any, error) {
	switch kind {
	case DataKindPetName:
		return g.PetName(), nil
	case DataKindPetStatus:
		return g.PetStatus(), nil
	case DataKindPetPayload:
		return g.PetPayload(), nil
	case DataKindOrderPayload:
		return g.OrderPayload(petID), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownDataKind, kind)
}
