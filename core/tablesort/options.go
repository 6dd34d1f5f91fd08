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
	"slices"

	"github.com/rs/zerolog"
)

// Default cookie names for the persisted sort state
const (
	DefaultSortByCookie    = "tablesort_sort_by"
	DefaultDirectionCookie = "tablesort_direction"
)

// settings is everything an Option may change
type settings struct {
	sortBy      string
	direction   Direction
	columns     []Column
	template    Template
	delimiter   string
	uriSegment  int
	currentPage int
	baseURL     string
	useCookies  bool
	sortCookie  string
	dirCookie   string
	logger      zerolog.Logger
}

func defaultSettings() settings {
	return settings{
		sortBy:    "id",
		direction: Asc,
		columns: []Column{
			Sortable("id", "ID", map[string]string{"class": "first"}),
			Sortable("name", "Name", map[string]string{"class": "second"}),
		},
		template:   DefaultTemplate(),
		delimiter:  "-",
		uriSegment: 3,
		useCookies: true,
		sortCookie: DefaultSortByCookie,
		dirCookie:  DefaultDirectionCookie,
		logger:     zerolog.Nop(),
	}
}

// Option overrides one part of the renderer configuration
type Option func(*settings) error

// WithSortBy sets the default sort key
func WithSortBy(key string) Option {
	return func(s *settings) error {
		s.sortBy = key
		return nil
	}
}

// WithDirection sets the default sort direction
func WithDirection(d Direction) Option {
	return func(s *settings) error {
		s.direction = d
		return nil
	}
}

// WithColumns replaces the column list. Calling it with no columns configures an empty list.
func WithColumns(columns ...Column) Option {
	return func(s *settings) error {
		s.columns = slices.Clone(columns)
		if s.columns == nil {
			s.columns = []Column{}
		}
		return nil
	}
}

// WithTemplate merges the non-empty fragments of t over the current template
func WithTemplate(t Template) Option {
	return func(s *settings) error {
		s.template = s.template.Merge(t)
		return nil
	}
}

// WithFragment sets a single template fragment by name, allowing empty values
func WithFragment(name, value string) Option {
	return func(s *settings) error {
		return s.template.Set(name, value)
	}
}

// WithDelimiter sets the separator between sort key and direction in the URL segment
func WithDelimiter(delimiter string) Option {
	return func(s *settings) error {
		if delimiter == "" {
			return errors.New("delimiter must not be empty")
		}
		s.delimiter = delimiter
		return nil
	}
}

// WithURISegment sets the 1-based path segment holding the sort spec
func WithURISegment(index int) Option {
	return func(s *settings) error {
		if index < 1 {
			return fmt.Errorf("uri segment must be at least 1, got %d", index)
		}
		s.uriSegment = index
		return nil
	}
}

// WithCurrentPage sets the page number added to sort links; 0 omits it
func WithCurrentPage(page int) Option {
	return func(s *settings) error {
		if page < 0 {
			return fmt.Errorf("current page must not be negative, got %d", page)
		}
		s.currentPage = page
		return nil
	}
}

// WithBaseURL sets the prefix of sort links and the scope of the sort cookies
func WithBaseURL(baseURL string) Option {
	return func(s *settings) error {
		s.baseURL = baseURL
		return nil
	}
}

// WithCookies enables or disables persisting the sort state in cookies
func WithCookies(enabled bool) Option {
	return func(s *settings) error {
		s.useCookies = enabled
		return nil
	}
}

// WithCookieNames overrides the names of the sort key and direction cookies
func WithCookieNames(sortBy, direction string) Option {
	return func(s *settings) error {
		if sortBy == "" || direction == "" {
			return errors.New("cookie names must not be empty")
		}
		if sortBy == direction {
			return fmt.Errorf("cookie names must differ, both are %q", sortBy)
		}
		s.sortCookie = sortBy
		s.dirCookie = direction
		return nil
	}
}

// WithLogger sets the logger used for state resolution events
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) error {
		s.logger = logger
		return nil
	}
}
