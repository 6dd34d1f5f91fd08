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

// Package tablesort renders the <thead> of a sortable list view.
//
// A Renderer is built per request from a column list and template fragments.
// It reads the current sort key and direction from a path segment such as
// "name-desc", falling back to cookies and then to the configured defaults.
// Each sortable header cell links to the same list sorted by that column. The
// link on the active column flips the direction, and the active cell gets an
// extra class:
//
//	r, err := tablesort.New(query.NewPath(req.URL), cookies.NewHTTPStore(w, req, nil),
//		tablesort.WithBaseURL("/people"),
//		tablesort.WithColumns(
//			tablesort.Sortable("id", "ID", map[string]string{"class": "first"}),
//			tablesort.Sortable("name", "Name", nil),
//			tablesort.Plain("Actions"),
//		),
//	)
//	header := r.RenderHeader()
package tablesort
