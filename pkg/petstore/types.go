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
	"fmt"
)

// PetStatus is the sale status of a pet.
type PetStatus string

const (
	PetStatusAvailable PetStatus = "available"
	PetStatusPending   PetStatus = "pending"
	PetStatusSold      PetStatus = "sold"
)

// PetStatuses lists every pet status the API defines.
func PetStatuses() []PetStatus {
	return []PetStatus{PetStatusAvailable, PetStatusPending, PetStatusSold}
}

// OrderStatus is the fulfilment status of an order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusDelivered OrderStatus = "delivered"
)

// OrderStatuses lists every order status the API defines.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPlaced, OrderStatusApproved, OrderStatusDelivered}
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Pet is a pet resource.  ID is nil on payloads for pets yet to be created.
type Pet struct {
	ID        *int64    `json:"id,omitempty"`
	Category  *Category `json:"category,omitempty"`
	Name      string    `json:"name"`
	PhotoURLs []string  `json:"photoUrls"`
	Tags      []Tag     `json:"tags,omitempty"`
	Status    PetStatus `json:"status,omitempty"`
}

// Order is a store order resource.
type Order struct {
	ID       *int64      `json:"id,omitempty"`
	PetID    int64       `json:"petId"`
	Quantity int         `json:"quantity"`
	ShipDate string      `json:"shipDate,omitempty"`
	Status   OrderStatus `json:"status,omitempty"`
	Complete *bool       `json:"complete,omitempty"`
}

// Inventory maps a pet status to the number of pets in it.
type Inventory map[string]int

// Count returns the number of pets with the status, zero when the status is absent.
func (i Inventory) Count(status PetStatus) int {
	return i[string(status)]
}

// APIError is the generic response envelope the API returns for errors and
// for operations that have no resource to return.
type APIError struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (type %s, code %d)", e.Message, e.Type, e.Code)
}

// Result is either a resource or an API error, decided by the shape of the
// response rather than its status code.
type Result[T any] struct {
	value   *T
	failure *APIError
}

// Success wraps a resource.
func Success[T any](value T) Result[T] {
	return Result[T]{value: &value}
}

// Failure wraps an API error.
func Failure[T any](err *APIError) Result[T] {
	return Result[T]{failure: err}
}

func (r Result[T]) IsSuccess() bool {
	return r.value != nil
}

// Value returns the resource and whether there was one.
func (r Result[T]) Value() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}

	return *r.value, true
}

// Failure returns the API error and whether there was one.
func (r Result[T]) Failure() (*APIError, bool) {
	return r.failure, r.failure != nil
}

// Must returns the resource, panicking if the API answered with an error
// envelope instead.  Intended for test code where that is already a failure.
func (r Result[T]) Must() T {
	if r.value == nil {
		if r.failure == nil {
			panic(ErrUnexpectedShape)
		}

		panic(fmt.Errorf("%w: %w", ErrUnexpectedShape, r.failure))
	}

	return *r.value
}
