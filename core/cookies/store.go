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

// Package cookies provides the cookie stores the header renderer persists its
// sort state into.
package cookies

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/rs/zerolog"
)

// NewCodec creates a codec that signs cookie values with hashKey.
// An empty key returns nil, which stores values unsigned.
func NewCodec(hashKey []byte) *securecookie.SecureCookie {
	if len(hashKey) == 0 {
		return nil
	}
	return securecookie.New(hashKey, nil).SetSerializer(securecookie.JSONEncoder{})
}

// HTTPStore reads cookies from a request and writes them to its response.
// Writes made through the store are visible to later reads on the same store.
// Unsigned values are query-escaped, since net/http drops bytes such as ';'
// and non-ASCII from cookie values.
type HTTPStore struct {
	w     http.ResponseWriter
	r     *http.Request
	codec *securecookie.SecureCookie
	path  string
	log   zerolog.Logger

	// pending holds values written during this request; nil marks a deletion
	pending map[string]*string
}

// StoreOption configures an HTTPStore
type StoreOption func(*HTTPStore)

// WithPath sets the path used when deleting cookies and when Set is given no path
func WithPath(path string) StoreOption {
	return func(s *HTTPStore) {
		if path != "" {
			s.path = path
		}
	}
}

// WithLogger sets the logger used to report cookies that could not be written
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *HTTPStore) {
		s.log = logger
	}
}

// NewHTTPStore creates a store for a single request. codec may be nil.
func NewHTTPStore(w http.ResponseWriter, r *http.Request, codec *securecookie.SecureCookie, opts ...StoreOption) *HTTPStore {
	s := &HTTPStore{
		w:       w,
		r:       r,
		codec:   codec,
		path:    "/",
		log:     zerolog.Nop(),
		pending: make(map[string]*string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the cookie value, or def when it is absent or fails verification
func (s *HTTPStore) Get(name, def string) string {
	if v, ok := s.pending[name]; ok {
		if v == nil {
			return def
		}
		return *v
	}

	cookie, err := s.r.Cookie(name)
	if err != nil {
		return def
	}
	if s.codec == nil {
		value, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			return def
		}
		return value
	}
	var value string
	if err := s.codec.Decode(name, cookie.Value, &value); err != nil {
		return def
	}
	return value
}

// Set writes the cookie to the response. A zero expires makes it a session cookie.
func (s *HTTPStore) Set(name, value string, expires time.Time, path string) {
	encoded := url.QueryEscape(value)
	if s.codec != nil {
		var err error
		if encoded, err = s.codec.Encode(name, value); err != nil {
			s.log.Error().Err(err).Str("cookie", name).Msg("encoding cookie failed, not set")
			return
		}
	}
	if path == "" {
		path = s.path
	}

	http.SetCookie(s.w, &http.Cookie{
		Name:     name,
		Value:    encoded,
		Path:     path,
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.pending[name] = &value
}

// Delete expires the cookie on the client
func (s *HTTPStore) Delete(name string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     s.path,
		HttpOnly: true,
		MaxAge:   -1,
	})
	s.pending[name] = nil
}
