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

package views

import (
	"github.com/google/safehtml"

	"github.com/google/tablesort/core/tablesort"
)

// ListViewModel contains a sortable list formatted for template consumption
type ListViewModel struct {
	Title     string
	Header    safehtml.HTML // Rendered <thead> with sort links
	Columns   []string      // Column keys, in display order
	Rows      [][]string    // Cell values aligned with Columns
	SortBy    string
	Direction string
	Page      int
	ResetURL  safehtml.URL // URL that clears the remembered sort
}

// BuildListViewModel builds the view model from a resolved header renderer.
// Row values are looked up by column key; missing values render empty.
func BuildListViewModel(title string, r *tablesort.Renderer, rows []map[string]string, page int, resetURL string) ListViewModel {
	columns := r.Columns()
	keys := make([]string, 0, len(columns))
	for _, col := range columns {
		keys = append(keys, col.Key())
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		values := make([]string, len(keys))
		for i, key := range keys {
			values[i] = row[key]
		}
		cells = append(cells, values)
	}

	return ListViewModel{
		Title:     title,
		Header:    r.RenderHeaderHTML(),
		Columns:   keys,
		Rows:      cells,
		SortBy:    r.SortBy(),
		Direction: string(r.Direction()),
		Page:      page,
		ResetURL:  safehtml.URLSanitized(resetURL),
	}
}
