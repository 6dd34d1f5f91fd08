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
	"time"

	"github.com/google/tablesort/core/query"
)

// Direction is a sort direction. Values read from URLs or cookies are kept
// verbatim, so a Direction is not guaranteed to be Asc or Desc.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Toggle returns the opposite direction. Anything other than Asc toggles to Asc.
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Source records where the current sort state came from
type Source string

const (
	SourceDefault Source = "default"
	SourceURL     Source = "url"
	SourceCookie  Source = "cookie"
)

// SegmentReader exposes the path segments of the current request
type SegmentReader interface {
	Segment(index int) string
}

// CookieStore reads and writes the cookies of the current request
type CookieStore interface {
	Get(name, def string) string
	// Set writes a cookie; a zero expires makes it a session cookie.
	Set(name, value string, expires time.Time, path string)
	Delete(name string)
}

// ResolveState updates the sort state from a URL segment, else from cookies.
// A segment containing the delimiter wins and, with cookies enabled, is
// persisted to the store. Without a usable segment the cookies are read,
// falling back to the current values. Parsed values are not validated.
func (r *Renderer) ResolveState(segment string, cookies CookieStore) {
	r.cookies = cookies
	r.source = SourceDefault
	useCookies := r.useCookies && cookies != nil

	if spec, ok := query.ParseSortSpec(segment, r.delimiter); ok {
		r.current = sortState{sortBy: spec.Key, direction: Direction(spec.Direction)}
		r.source = SourceURL
		if useCookies {
			path := query.CookiePath(r.baseURL)
			cookies.Set(r.sortCookie, r.current.sortBy, time.Time{}, path)
			cookies.Set(r.dirCookie, string(r.current.direction), time.Time{}, path)
		}
	} else if useCookies {
		stored := sortState{
			sortBy:    cookies.Get(r.sortCookie, r.current.sortBy),
			direction: Direction(cookies.Get(r.dirCookie, string(r.current.direction))),
		}
		if stored != r.current {
			r.source = SourceCookie
		}
		r.current = stored
	}

	r.logger.Debug().
		Str("segment", segment).
		Str("source", string(r.source)).
		Str("sort_by", r.current.sortBy).
		Str("direction", string(r.current.direction)).
		Msg("resolved sort state")
}

// Reset restores the sort key and direction configured at the last Configure
// call and, with cookies enabled, deletes the sort cookies.
func (r *Renderer) Reset() {
	if r.useCookies && r.cookies != nil {
		r.cookies.Delete(r.sortCookie)
		r.cookies.Delete(r.dirCookie)
	}
	r.current = sortState{sortBy: r.sortBy, direction: r.direction}
	r.source = SourceDefault
}
