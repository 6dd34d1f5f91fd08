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
	"errors"
	"fmt"
)

// ErrUnknownFragment is returned when a template fragment name is not recognized
var ErrUnknownFragment = errors.New("unknown template fragment")

// Template fragment names, as used in configuration files
const (
	FragmentWrapperStart   = "wrapper_start"
	FragmentWrapperEnd     = "wrapper_end"
	FragmentColTag         = "col_tag"
	FragmentColClassActive = "col_class_active"
	FragmentLinkStart      = "link_start"
	FragmentLinkEnd        = "link_end"
	FragmentNolinkStart    = "nolink_start"
	FragmentNolinkEnd      = "nolink_end"
)

// Template holds the markup fragments used to assemble the header
type Template struct {
	WrapperStart   string
	WrapperEnd     string
	ColTag         string
	ColClassActive string
	LinkStart      string
	LinkEnd        string
	NolinkStart    string
	NolinkEnd      string
}

// DefaultTemplate returns the fragments for a <thead> with <th> cells
func DefaultTemplate() Template {
	return Template{
		WrapperStart:   "<thead>",
		WrapperEnd:     "</thead>",
		ColTag:         "th",
		ColClassActive: "active",
		LinkStart:      "<a>",
		LinkEnd:        "</a>",
		NolinkStart:    "<span>",
		NolinkEnd:      "</span>",
	}
}

func (t *Template) fragment(name string) (*string, error) {
	switch name {
	case FragmentWrapperStart:
		return &t.WrapperStart, nil
	case FragmentWrapperEnd:
		return &t.WrapperEnd, nil
	case FragmentColTag:
		return &t.ColTag, nil
	case FragmentColClassActive:
		return &t.ColClassActive, nil
	case FragmentLinkStart:
		return &t.LinkStart, nil
	case FragmentLinkEnd:
		return &t.LinkEnd, nil
	case FragmentNolinkStart:
		return &t.NolinkStart, nil
	case FragmentNolinkEnd:
		return &t.NolinkEnd, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFragment, name)
}

// Set overrides a single fragment by name
func (t *Template) Set(name, value string) error {
	f, err := t.fragment(name)
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// Get returns a single fragment by name
func (t Template) Get(name string) (string, error) {
	f, err := t.fragment(name)
	if err != nil {
		return "", err
	}
	return *f, nil
}

// Merge returns t with every non-empty fragment of o applied over it
func (t Template) Merge(o Template) Template {
	merged := t
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&merged.WrapperStart, o.WrapperStart)
	set(&merged.WrapperEnd, o.WrapperEnd)
	set(&merged.ColTag, o.ColTag)
	set(&merged.ColClassActive, o.ColClassActive)
	set(&merged.LinkStart, o.LinkStart)
	set(&merged.LinkEnd, o.LinkEnd)
	set(&merged.NolinkStart, o.NolinkStart)
	set(&merged.NolinkEnd, o.NolinkEnd)
	return merged
}
