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

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	// ErrSchemaViolation is raised when a document does not conform to its schema.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrUnknownSchema is raised when a schema name is not in the repository.
	ErrUnknownSchema = errors.New("unknown schema")
)

// Name is the logical name of a response schema.
type Name string

const (
	Pet       Name = "pet"
	PetsList  Name = "pets-list"
	PostPet   Name = "post-pet"
	Order     Name = "order"
	Inventory Name = "inventory"
	Error     Name = "error"
)

// Names lists every schema the repository loads.
func Names() []Name {
	return []Name{Pet, PetsList, PostPet, Order, Inventory, Error}
}

// Repository holds parsed schemas keyed by logical name.
type Repository struct {
	schemas map[Name]*openapi3.Schema
}

// Load reads <name>.json for every known schema from dir.
func Load(dir string) (*Repository, error) {
	r := &Repository{
		schemas: map[Name]*openapi3.Schema{},
	}

	for _, name := range Names() {
		path := filepath.Join(dir, string(name)+".json")

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", path, err)
		}

		if err := r.Add(name, data); err != nil {
			return nil, fmt.Errorf("loading schema %s: %w", path, err)
		}
	}

	return r, nil
}

// Add parses a JSON Schema document and registers it under name, replacing
// anything already there.
func (r *Repository) Add(name Name, data []byte) error {
	schema := &openapi3.Schema{}

	if err := json.Unmarshal(data, schema); err != nil {
		return fmt.Errorf("parsing schema %s: %w", name, err)
	}

	if r.schemas == nil {
		r.schemas = map[Name]*openapi3.Schema{}
	}

	r.schemas[name] = schema

	return nil
}

// Validate checks a decoded JSON document against the named schema.  The
// document must be made of the types encoding/json produces for any.
func (r *Repository) Validate(name Name, document any) error {
	schema, ok := r.schemas[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	if err := schema.VisitJSON(document, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrSchemaViolation, name, err.Error())
	}

	return nil
}

// ValidateBytes decodes a JSON body and validates it against the named schema.
func (r *Repository) ValidateBytes(name Name, body []byte) error {
	var document any

	if err := json.Unmarshal(body, &document); err != nil {
		return fmt.Errorf("%w: %s: body is not JSON: %s", ErrSchemaViolation, name, err.Error())
	}

	return r.Validate(name, document)
}
