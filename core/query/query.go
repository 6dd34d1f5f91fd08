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

package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/safehtml"
)

// Path holds the non-empty segments of a request path. Segments are addressed
// 1-based, so for "/people/2/id-desc" Segment(3) is "id-desc".
type Path []string

// NewPath creates a Path from a URL
func NewPath(u *url.URL) Path {
	if u == nil {
		return Path{}
	}
	return ParsePath(u.Path)
}

// ParsePath splits a raw path on "/" and drops empty segments
func ParsePath(raw string) Path {
	parts := strings.Split(raw, "/")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			p = append(p, part)
		}
	}
	return p
}

// Segment returns the segment at the given 1-based index, or "" when out of range
func (p Path) Segment(index int) string {
	if index < 1 || index > len(p) {
		return ""
	}
	return p[index-1]
}

// String joins the segments back into an absolute path
func (p Path) String() string {
	return "/" + strings.Join(p, "/")
}

// SortSpec is the sort key and direction carried in a single path segment
type SortSpec struct {
	Key       string
	Direction string
}

// ParseSortSpec parses a "<key><delimiter><direction>" segment.
// It reports false when the segment is empty or does not contain the delimiter.
// Parts after the second one are ignored.
func ParseSortSpec(segment, delimiter string) (SortSpec, bool) {
	if segment == "" || delimiter == "" || !strings.Contains(segment, delimiter) {
		return SortSpec{}, false
	}
	parts := strings.Split(segment, delimiter)
	return SortSpec{Key: parts[0], Direction: parts[1]}, true
}

// Segment formats the spec back into a single path segment
func (s SortSpec) Segment(delimiter string) string {
	return s.Key + delimiter + s.Direction
}

// SortURL builds the link for a sort toggle:
// base (trailing slash trimmed) + optional "/<page>" + "/" + key + delimiter + direction.
func SortURL(baseURL string, page int, spec SortSpec, delimiter string) safehtml.URL {
	u := strings.TrimRight(baseURL, "/")
	if page != 0 {
		u += "/" + strconv.Itoa(page)
	}
	u += "/" + spec.Segment(delimiter)
	// URLSanitized sanitizes the input string and returns a URL
	return safehtml.URLSanitized(u)
}

// CookiePath returns the path component of a base URL, suitable for scoping cookies.
// Absolute URLs are reduced to their path; an empty result becomes "/".
func CookiePath(baseURL string) string {
	p := baseURL
	if u, err := url.Parse(baseURL); err == nil && (u.Scheme != "" || u.Host != "") {
		p = u.Path
	}
	if p == "" {
		return "/"
	}
	return p
}
