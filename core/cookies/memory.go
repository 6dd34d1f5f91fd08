/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Tablesort Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cookies

import (
	"maps"
	"time"
)

// MemoryStore keeps cookies in a map, for callers without an HTTP exchange
type MemoryStore struct {
	values map[string]string
	paths  map[string]string
}

// NewMemoryStore creates a store seeded with initial values
func NewMemoryStore(initial map[string]string) *MemoryStore {
	values := maps.Clone(initial)
	if values == nil {
		values = make(map[string]string)
	}
	return &MemoryStore{values: values, paths: make(map[string]string)}
}

// Get returns the stored value or def
func (m *MemoryStore) Get(name, def string) string {
	if v, ok := m.values[name]; ok {
		return v
	}
	return def
}

// Set stores the value; expiry is not tracked
func (m *MemoryStore) Set(name, value string, _ time.Time, path string) {
	m.values[name] = value
	m.paths[name] = path
}

// Delete removes the value
func (m *MemoryStore) Delete(name string) {
	delete(m.values, name)
	delete(m.paths, name)
}

// Path returns the path the named cookie was last set with
func (m *MemoryStore) Path(name string) string {
	return m.paths[name]
}

// Values returns a copy of the stored cookies
func (m *MemoryStore) Values() map[string]string {
	return maps.Clone(m.values)
}
