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

package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"

	"github.com/google/tablesort/core/views"
)

//go:embed templates/*
var templateFS embed.FS

// ListRenderer handles rendering of list view models to HTML
type ListRenderer struct {
	listTemplate *template.Template
}

// NewListRenderer creates a new list renderer
func NewListRenderer() (*ListRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	listTemplate, err := template.New("list.html").ParseFS(trustedFS, "templates/list.html")
	if err != nil {
		return nil, err
	}

	return &ListRenderer{listTemplate: listTemplate}, nil
}

// Render renders a ListViewModel to the provided writer
func (r *ListRenderer) Render(w io.Writer, vm views.ListViewModel) error {
	return r.listTemplate.Execute(w, vm)
}
