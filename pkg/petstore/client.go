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
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/unikorn-cloud/e2e/pkg/config"
	"github.com/unikorn-cloud/e2e/pkg/schema"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	// ErrUnexpectedStatus is raised when the API answers with a status
	// other than the one the caller expected.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrUnexpectedContentType is raised when a response is not JSON.
	ErrUnexpectedContentType = errors.New("unexpected content type")

	// ErrUnexpectedShape is raised when a resource was required but the
	// API returned its error envelope.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	// basicAuthUser is the fixed user name for credentialed calls, the
	// API key is the password.
	basicAuthUser = "apikey"
)

// Client is a thin wrapper around the pet store HTTP API that checks the
// status, content type and schema of every response.
type Client struct {
	client    *http.Client
	endpoints *Endpoints
	schemas   *schema.Repository
	config    *config.APIConfig
}

// NewClient returns a client for the API described by the configuration.
func NewClient(c *config.APIConfig, schemas *schema.Repository) *Client {
	return &Client{
		client: &http.Client{
			Timeout: c.RequestTimeout,
		},
		endpoints: NewEndpoints(c.BaseURL),
		schemas:   schemas,
		config:    c,
	}
}

func (c *Client) Endpoints() *Endpoints {
	return c.endpoints
}

// request describes a single HTTP exchange.
type request struct {
	method        string
	url           string
	body          []byte
	contentType   string
	authenticated bool
}

// response is a fully read HTTP response.
type response struct {
	status      int
	contentType string
	body        []byte
}

// traceContext identifies one request in the server's W3C trace logs.
type traceContext struct {
	traceID string
	spanID  string
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)

	return hex.EncodeToString(b)
}

func newTraceContext() traceContext {
	return traceContext{
		traceID: randomHex(16),
		spanID:  randomHex(8),
	}
}

// parent is the traceparent header value, version 00 and sampled.
func (t traceContext) parent() string {
	return fmt.Sprintf("00-%s-%s-01", t.traceID, t.spanID)
}

// doRequest performs exactly one attempt and checks the status code and
// content type of the response.
func (c *Client) doRequest(ctx context.Context, r *request, expectedStatus int) (*response, error) {
	logger := log.FromContext(ctx).WithValues("method", r.method, "url", r.url)

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	trace := newTraceContext()
	traceParent := trace.parent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=e2e")
	req.Header.Set("Accept", contentTypeJSON)

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	if r.authenticated {
		req.SetBasicAuth(basicAuthUser, c.config.APIKey)
		req.Header.Set("api_key", c.config.APIKey)
	}

	if c.config.LogRequests {
		logger.Info("sending request", "body", string(r.body), "traceparent", traceParent)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		logger.Error(err, "http request failed", "duration", duration, "traceID", trace.traceID)
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	result := &response{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        respBody,
	}

	if c.config.LogResponses {
		logger.Info("received response", "status", result.status, "duration", duration, "body", string(respBody))
	}

	if result.status != expectedStatus {
		logger.Info("unexpected status", "expected", expectedStatus, "actual", result.status, "body", string(respBody), "traceID", trace.traceID)

		return nil, fmt.Errorf("%w: expected %d, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, expectedStatus, result.status, string(respBody), trace.traceID)
	}

	if err := checkContentType(result.contentType); err != nil {
		return nil, fmt.Errorf("%w (trace ID: %s)", err, trace.traceID)
	}

	return result, nil
}

// checkContentType requires the header to be exactly application/json, a
// charset parameter or a change of case is a failure.
func checkContentType(header string) error {
	if header != contentTypeJSON {
		return fmt.Errorf("%w: expected %s, got %q", ErrUnexpectedContentType, contentTypeJSON, header)
	}

	return nil
}

// decode validates the body against a schema and unmarshals it.  Decoding
// into typed values is done from the raw body so large identifiers keep
// their precision.
func decode[T any](schemas *schema.Repository, name schema.Name, body []byte) (T, error) {
	var value T

	if err := schemas.ValidateBytes(name, body); err != nil {
		return value, err
	}

	if err := json.Unmarshal(body, &value); err != nil {
		return value, fmt.Errorf("unmarshaling %s response: %w", name, err)
	}

	return value, nil
}

// decodeResult picks the resource schema when the body carries an id and
// the error schema otherwise.
func decodeResult[T any](schemas *schema.Repository, name schema.Name, body []byte) (Result[T], error) {
	var document any

	if err := json.Unmarshal(body, &document); err != nil {
		return Result[T]{}, fmt.Errorf("%w: %s: body is not JSON: %s", schema.ErrSchemaViolation, name, err.Error())
	}

	if object, ok := document.(map[string]any); ok {
		if _, ok := object["id"]; ok {
			value, err := decode[T](schemas, name, body)
			if err != nil {
				return Result[T]{}, err
			}

			return Success(value), nil
		}
	}

	failure, err := decode[APIError](schemas, schema.Error, body)
	if err != nil {
		return Result[T]{}, err
	}

	return Failure[T](&failure), nil
}

func (c *Client) ListPetsByStatus(ctx context.Context, status PetStatus, expectedStatus int) ([]Pet, error) {
	path, err := c.endpoints.FindPetsByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("building find by status query: %w", err)
	}

	resp, err := c.doRequest(ctx, &request{method: http.MethodGet, url: path}, expectedStatus)
	if err != nil {
		return nil, fmt.Errorf("listing pets by status %s: %w", status, err)
	}

	return decode[[]Pet](c.schemas, schema.PetsList, resp.body)
}

func (c *Client) GetInventory(ctx context.Context, expectedStatus int) (Inventory, error) {
	resp, err := c.doRequest(ctx, &request{method: http.MethodGet, url: c.endpoints.Inventory()}, expectedStatus)
	if err != nil {
		return nil, fmt.Errorf("getting inventory: %w", err)
	}

	return decode[Inventory](c.schemas, schema.Inventory, resp.body)
}

// GetPetByID returns the pet, or the API error envelope when it is not found.
func (c *Client) GetPetByID(ctx context.Context, petID int64, expectedStatus int) (Result[Pet], error) {
	resp, err := c.doRequest(ctx, &request{method: http.MethodGet, url: c.endpoints.PetByID(petID)}, expectedStatus)
	if err != nil {
		return Result[Pet]{}, fmt.Errorf("getting pet %d: %w", petID, err)
	}

	return decodeResult[Pet](c.schemas, schema.Pet, resp.body)
}

// GetOrderByID returns the order, or the API error envelope when it is not found.
func (c *Client) GetOrderByID(ctx context.Context, orderID int64, expectedStatus int) (Result[Order], error) {
	resp, err := c.doRequest(ctx, &request{method: http.MethodGet, url: c.endpoints.OrderByID(orderID)}, expectedStatus)
	if err != nil {
		return Result[Order]{}, fmt.Errorf("getting order %d: %w", orderID, err)
	}

	return decodeResult[Order](c.schemas, schema.Order, resp.body)
}

// UpdatePet updates a pet's name and status with a form post.  The server
// usually answers with its generic envelope rather than the pet, so callers
// should read the pet back to observe the change.
func (c *Client) UpdatePet(ctx context.Context, petID int64, name string, status PetStatus, expectedStatus int) (Result[Pet], error) {
	form := url.Values{}
	form.Set("name", name)
	form.Set("status", string(status))

	r := &request{
		method:      http.MethodPost,
		url:         c.endpoints.PetByID(petID),
		body:        []byte(form.Encode()),
		contentType: contentTypeForm,
	}

	resp, err := c.doRequest(ctx, r, expectedStatus)
	if err != nil {
		return Result[Pet]{}, fmt.Errorf("updating pet %d: %w", petID, err)
	}

	return decodeResult[Pet](c.schemas, schema.PostPet, resp.body)
}

// AddPet creates a pet.  The payload is sent as is so callers can exercise
// server side validation.
func (c *Client) AddPet(ctx context.Context, payload Pet, expectedStatus int) (Pet, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Pet{}, fmt.Errorf("marshaling pet body: %w", err)
	}

	r := &request{
		method:      http.MethodPost,
		url:         c.endpoints.Pet(),
		body:        body,
		contentType: contentTypeJSON,
	}

	resp, err := c.doRequest(ctx, r, expectedStatus)
	if err != nil {
		return Pet{}, fmt.Errorf("adding pet: %w", err)
	}

	return decode[Pet](c.schemas, schema.Pet, resp.body)
}

func (c *Client) PlaceOrder(ctx context.Context, payload Order, expectedStatus int) (Order, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Order{}, fmt.Errorf("marshaling order body: %w", err)
	}

	r := &request{
		method:      http.MethodPost,
		url:         c.endpoints.Order(),
		body:        body,
		contentType: contentTypeJSON,
	}

	resp, err := c.doRequest(ctx, r, expectedStatus)
	if err != nil {
		return Order{}, fmt.Errorf("placing order for pet %d: %w", payload.PetID, err)
	}

	return decode[Order](c.schemas, schema.Order, resp.body)
}

// DeletePet deletes a pet using the configured API credential.
func (c *Client) DeletePet(ctx context.Context, petID int64, expectedStatus int) error {
	r := &request{
		method:        http.MethodDelete,
		url:           c.endpoints.PetByID(petID),
		authenticated: true,
	}

	if _, err := c.doRequest(ctx, r, expectedStatus); err != nil {
		return fmt.Errorf("deleting pet %d: %w", petID, err)
	}

	return nil
}
