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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/google/tablesort/core/tablesort"
)

// ErrUnknownKey is returned for keys a column definition does not support
var ErrUnknownKey = errors.New("unknown key")

// File is the YAML form of the header renderer options.
// Absent keys leave the renderer defaults in place.
type File struct {
	SortBy      *string           `yaml:"sort_by"`
	Direction   *string           `yaml:"direction"`
	Columns     *[]ColumnSpec     `yaml:"columns"`
	Template    map[string]string `yaml:"template"`
	Delimiter   *string           `yaml:"uri_delimiter"`
	URISegment  *int              `yaml:"uri_segment"`
	CurrentPage *int              `yaml:"current_page"`
	BaseURL     *string           `yaml:"base_url"`
	UseCookies  *bool             `yaml:"use_cookies"`
	CookieNames *CookieNames      `yaml:"cookie_names"`
}

// CookieNames overrides the names of the sort cookies
type CookieNames struct {
	SortBy    string `yaml:"sort_by"`
	Direction string `yaml:"direction"`
}

// ColumnSpec decodes one column. Three forms are accepted:
//
//	- Actions                                  # plain text, not sortable
//	- {key: id, label: ID, attrs: {class: x}}  # sortable
//	- [status, false, {class: y}]              # key, label or false, attrs
//
// A label of false, or nolink: true, marks a column that is highlighted
// when active but never linked.
type ColumnSpec struct {
	Column tablesort.Column
}

var columnKeys = []string{"key", "label", "nolink", "attrs"}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *ColumnSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		c.Column = tablesort.Plain(value.Value)
		return nil
	case yaml.SequenceNode:
		return c.unmarshalSequence(value)
	case yaml.MappingNode:
		return c.unmarshalMapping(value)
	}
	return fmt.Errorf("line %d: column must be a string, sequence or mapping", value.Line)
}

func (c *ColumnSpec) unmarshalSequence(value *yaml.Node) error {
	items := value.Content
	if len(items) == 0 || len(items) > 3 {
		return fmt.Errorf("line %d: column sequence needs 1 to 3 items, got %d", value.Line, len(items))
	}
	if items[0].Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: column key must be a string", items[0].Line)
	}
	key := items[0].Value

	var label string
	noLink := false
	if len(items) > 1 {
		n := items[1]
		switch {
		case n.Kind != yaml.ScalarNode:
			return fmt.Errorf("line %d: column label must be a string or false", n.Line)
		case n.ShortTag() == "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return err
			}
			if b {
				return fmt.Errorf("line %d: column label may be false but not true", n.Line)
			}
			noLink = true
		case n.ShortTag() != "!!null":
			label = n.Value
		}
	}

	var attrs map[string]string
	if len(items) > 2 {
		if err := items[2].Decode(&attrs); err != nil {
			return fmt.Errorf("line %d: column attrs: %w", items[2].Line, err)
		}
	}

	if noLink {
		c.Column = tablesort.Indicator(key, "", attrs)
	} else {
		c.Column = tablesort.Sortable(key, label, attrs)
	}
	return nil
}

func (c *ColumnSpec) unmarshalMapping(value *yaml.Node) error {
	for i := 0; i+1 < len(value.Content); i += 2 {
		k := value.Content[i]
		if !slices.Contains(columnKeys, k.Value) {
			return fmt.Errorf("line %d: %w %q in column", k.Line, ErrUnknownKey, k.Value)
		}
	}

	var raw struct {
		Key    string            `yaml:"key"`
		Label  string            `yaml:"label"`
		NoLink bool              `yaml:"nolink"`
		Attrs  map[string]string `yaml:"attrs"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Key == "" && raw.Label == "" {
		return fmt.Errorf("line %d: column needs a key or a label", value.Line)
	}

	if raw.NoLink {
		c.Column = tablesort.Indicator(raw.Key, raw.Label, raw.Attrs)
	} else {
		c.Column = tablesort.Sortable(raw.Key, raw.Label, raw.Attrs)
	}
	return nil
}

// ParseTableSort decodes YAML options. Unknown keys are rejected.
func ParseTableSort(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode tablesort options: %w", err)
	}
	for name := range f.Template {
		if _, err := tablesort.DefaultTemplate().Get(name); err != nil {
			return File{}, fmt.Errorf("decode tablesort options: %w", err)
		}
	}
	if f.Direction != nil {
		switch tablesort.Direction(*f.Direction) {
		case tablesort.Asc, tablesort.Desc:
		default:
			return File{}, fmt.Errorf("decode tablesort options: direction must be %q or %q, got %q",
				tablesort.Asc, tablesort.Desc, *f.Direction)
		}
	}
	return f, nil
}

// LoadTableSort reads and decodes a YAML options file
func LoadTableSort(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading tablesort options %s: %w", path, err)
	}
	f, err := ParseTableSort(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// RoutingKeys returns the keys set in the file that describe where sort links
// point: base_url, uri_segment and current_page. A server that derives these
// from its routes overrides them.
func (f File) RoutingKeys() []string {
	var keys []string
	if f.BaseURL != nil {
		keys = append(keys, "base_url")
	}
	if f.URISegment != nil {
		keys = append(keys, "uri_segment")
	}
	if f.CurrentPage != nil {
		keys = append(keys, "current_page")
	}
	return keys
}

// Options converts the file into renderer options, in a stable order.
// Template fragments are merged one at a time over the current template.
func (f File) Options() []tablesort.Option {
	var opts []tablesort.Option
	if f.SortBy != nil {
		opts = append(opts, tablesort.WithSortBy(*f.SortBy))
	}
	if f.Direction != nil {
		opts = append(opts, tablesort.WithDirection(tablesort.Direction(*f.Direction)))
	}
	if f.Columns != nil {
		cols := make([]tablesort.Column, 0, len(*f.Columns))
		for _, spec := range *f.Columns {
			cols = append(cols, spec.Column)
		}
		opts = append(opts, tablesort.WithColumns(cols...))
	}
	names := make([]string, 0, len(f.Template))
	for name := range f.Template {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		opts = append(opts, tablesort.WithFragment(name, f.Template[name]))
	}
	if f.Delimiter != nil {
		opts = append(opts, tablesort.WithDelimiter(*f.Delimiter))
	}
	if f.URISegment != nil {
		opts = append(opts, tablesort.WithURISegment(*f.URISegment))
	}
	if f.CurrentPage != nil {
		opts = append(opts, tablesort.WithCurrentPage(*f.CurrentPage))
	}
	if f.BaseURL != nil {
		opts = append(opts, tablesort.WithBaseURL(*f.BaseURL))
	}
	if f.UseCookies != nil {
		opts = append(opts, tablesort.WithCookies(*f.UseCookies))
	}
	if f.CookieNames != nil {
		opts = append(opts, tablesort.WithCookieNames(f.CookieNames.SortBy, f.CookieNames.Direction))
	}
	return opts
}
