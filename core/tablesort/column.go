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
	"maps"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ColumnKind distinguishes plain header text from sortable columns
type ColumnKind int

const (
	// KindPlain is a non-sortable column rendered as bare text
	KindPlain ColumnKind = iota
	// KindSortable is a column that can be matched against the sort state
	KindSortable
)

// Column describes one header cell
type Column struct {
	kind   ColumnKind
	key    string
	label  string
	noLink bool
	attrs  map[string]string
}

// Plain creates a non-sortable column. Its text doubles as its key.
// Labels are plain text and are HTML-escaped when rendered.
func Plain(text string) Column {
	return Column{kind: KindPlain, label: text}
}

// Sortable creates a linked sortable column.
// An empty key is derived by lower-casing the label; an empty label shows the key.
// The label is plain text; markup in it is escaped.
func Sortable(key, label string, attrs map[string]string) Column {
	return Column{kind: KindSortable, key: key, label: label, attrs: maps.Clone(attrs)}
}

// Indicator creates a sortable column that is marked when active but never linked.
// Key and label follow the same rules as Sortable.
func Indicator(key, label string, attrs map[string]string) Column {
	return Column{kind: KindSortable, key: key, label: label, noLink: true, attrs: maps.Clone(attrs)}
}

// Kind returns the column variant
func (c Column) Kind() ColumnKind {
	return c.kind
}

// Key returns the identifier compared against the current sort key
func (c Column) Key() string {
	switch {
	case c.kind == KindPlain:
		return c.label
	case c.key != "":
		return c.key
	default:
		// Casers are stateful, so one is created per call.
		return cases.Lower(language.Und).String(c.label)
	}
}

// Label returns the text shown inside the cell
func (c Column) Label() string {
	if c.label != "" {
		return c.label
	}
	return c.Key()
}

// Linked reports whether the cell carries a sort toggle link
func (c Column) Linked() bool {
	return c.kind == KindSortable && !c.noLink
}

// Attrs returns a copy of the configured cell attributes, never nil
func (c Column) Attrs() map[string]string {
	attrs := make(map[string]string, len(c.attrs)+1)
	maps.Copy(attrs, c.attrs)
	return attrs
}
