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

// Package api provides fixtures for the pet store API test suites.
//
// The suites drive a shared public pet store, so fixtures never assume they
// are alone:
//   - pets the suite creates are deleted again with DeferCleanup
//   - random pets are picked from live listings rather than fixed IDs
//   - asynchronous side effects such as inventory counts are polled for
//     within a bounded delay instead of slept on
//
// Every client call still makes exactly one HTTP attempt, only fixtures
// that wait on eventual consistency repeat reads.
package api
