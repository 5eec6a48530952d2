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
	"net/url"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns rooted at a base URL.
type Endpoints struct {
	baseURL string
}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints(baseURL string) *Endpoints {
	return &Endpoints{
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (e *Endpoints) BaseURL() string {
	return e.baseURL
}

// Pet endpoints.
func (e *Endpoints) Pet() string {
	return e.baseURL + "/pet"
}

func (e *Endpoints) PetByID(petID int64) string {
	return fmt.Sprintf("%s/pet/%s", e.baseURL, url.PathEscape(strconv.FormatInt(petID, 10)))
}

func (e *Endpoints) FindPetsByStatus(status PetStatus) (string, error) {
	queryURL, err := url.Parse(e.baseURL + "/pet/findByStatus")
	if err != nil {
		return "", err
	}

	queryFrag, err := runtime.StyleParamWithLocation("form", true, "status", runtime.ParamLocationQuery, []string{string(status)})
	if err != nil {
		return "", err
	}

	parsed, err := url.ParseQuery(queryFrag)
	if err != nil {
		return "", err
	}

	queryValues := queryURL.Query()

	for k, v := range parsed {
		for _, v2 := range v {
			queryValues.Add(k, v2)
		}
	}

	queryURL.RawQuery = queryValues.Encode()

	return queryURL.String(), nil
}

// Store endpoints.
func (e *Endpoints) Order() string {
	return e.baseURL + "/store/order"
}

func (e *Endpoints) OrderByID(orderID int64) string {
	return fmt.Sprintf("%s/store/order/%s", e.baseURL, url.PathEscape(strconv.FormatInt(orderID, 10)))
}

func (e *Endpoints) Inventory() string {
	return e.baseURL + "/store/inventory"
}
