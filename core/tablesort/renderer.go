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

package tablesort

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/uncheckedconversions"
	"github.com/google/tablesort/core/query"
)

// noColumnsRow is rendered in place of the header row when no columns are configured
const noColumnsRow = "<tr><th>No columns config</th></tr>"

// Renderer builds the sortable header of one list view.
// A Renderer holds per-request state and is not safe for concurrent use;
// construct one per request.
type Renderer struct {
	settings

	segments SegmentReader
	cookies  CookieStore
	source   Source

	// Resolved sort state; settings.sortBy and settings.direction keep the
	// configured defaults that Reset restores.
	current sortState
}

type sortState struct {
	sortBy    string
	direction Direction
}

// New creates a Renderer from the defaults and the given options, then
// resolves the sort state from segments and cookies. Either may be nil.
func New(segments SegmentReader, cookies CookieStore, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		settings: defaultSettings(),
		segments: segments,
		cookies:  cookies,
	}
	if err := r.Configure(opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Configure applies opts over the current configuration. If any option fails
// the configuration is left unchanged. On success the configured sort key and
// direction become the reset default and the state is resolved again.
func (r *Renderer) Configure(opts ...Option) error {
	next := r.settings
	for _, opt := range opts {
		if err := opt(&next); err != nil {
			return fmt.Errorf("configure tablesort: %w", err)
		}
	}
	r.settings = next
	r.initialize()
	return nil
}

func (r *Renderer) initialize() {
	r.current = sortState{sortBy: r.sortBy, direction: r.direction}

	var segment string
	if r.segments != nil {
		segment = r.segments.Segment(r.uriSegment)
	}
	r.ResolveState(segment, r.cookies)
}

// SortBy returns the current sort key
func (r *Renderer) SortBy() string {
	return r.current.sortBy
}

// Direction returns the current sort direction
func (r *Renderer) Direction() Direction {
	return r.current.direction
}

// Source returns where the current sort state came from
func (r *Renderer) Source() Source {
	return r.source
}

// Columns returns a copy of the configured columns
func (r *Renderer) Columns() []Column {
	return slices.Clone(r.columns)
}

// Template returns the configured template fragments
func (r *Renderer) Template() Template {
	return r.template
}

// RenderHeader returns the header markup for the configured columns
func (r *Renderer) RenderHeader() string {
	t := r.template
	if len(r.columns) == 0 {
		return t.WrapperStart + noColumnsRow + t.WrapperEnd
	}

	var sb strings.Builder
	sb.WriteString(t.WrapperStart)
	sb.WriteString("<tr>")
	for _, col := range r.columns {
		sb.WriteString(r.renderCell(col))
	}
	sb.WriteString("</tr>")
	sb.WriteString(t.WrapperEnd)
	return sb.String()
}

// RenderHeaderHTML returns the header typed for embedding in safehtml templates
func (r *Renderer) RenderHeaderHTML() safehtml.HTML {
	// Fragments come from trusted configuration; labels and attributes are escaped.
	return uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(r.RenderHeader())
}

// renderCell renders a single header cell
func (r *Renderer) renderCell(col Column) string {
	t := r.template
	key := col.Key()
	attrs := col.Attrs()

	// Links target the current direction, except on the active column where they flip it
	next := r.current.direction
	if key == r.current.sortBy {
		active := t.ColClassActive + " " + t.ColClassActive + "_" + string(next)
		if class, ok := attrs["class"]; ok {
			attrs["class"] = class + " " + active
		} else {
			attrs["class"] = active
		}
		next = next.Toggle()
	}

	var content string
	if col.Linked() {
		link := r.SortURL(key, next)
		content = strings.TrimRight(t.LinkStart, "> ") + ` href="` + escape(link.String()) + `">` +
			escape(col.Label()) + t.LinkEnd
	} else {
		content = t.NolinkStart + escape(col.Label()) + t.NolinkEnd
	}

	return BuildTag(t.ColTag, attrs, content)
}

// SortURL returns the link that sorts by key in the given direction
func (r *Renderer) SortURL(key string, d Direction) safehtml.URL {
	spec := query.SortSpec{Key: key, Direction: string(d)}
	return query.SortURL(r.baseURL, r.currentPage, spec, r.delimiter)
}
