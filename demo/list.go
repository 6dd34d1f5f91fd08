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

package demo

import (
	"slices"

	"github.com/google/tablesort/core/tablesort"
)

// List defines a demo list page.
type List struct {
	// Name is the URL path identifier for this list.
	Name string

	// Title is displayed above the table.
	Title string

	// Columns are the header columns, in display order.
	Columns []tablesort.Column

	// Rows are shown unsorted below the header.
	Rows []map[string]string
}

// GetName returns the list name.
func (l *List) GetName() string {
	return l.Name
}

// GetTitle returns the list title.
func (l *List) GetTitle() string {
	return l.Title
}

// GetColumns returns a copy of the list columns.
func (l *List) GetColumns() []tablesort.Column {
	return slices.Clone(l.Columns)
}

// GetRows returns the list rows.
func (l *List) GetRows() []map[string]string {
	return l.Rows
}
