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

package server

import (
	"bytes"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/google/tablesort/core/cookies"
	"github.com/google/tablesort/core/query"
	"github.com/google/tablesort/core/rendering"
	"github.com/google/tablesort/core/tablesort"
	"github.com/google/tablesort/core/views"
)

// sortSegment is the path segment holding the sort spec in /<list>/<page>/<sort>
const sortSegment = 3

// ListConfig defines a list page served by the server.
// Lists provide their columns and the rows shown below the header.
type ListConfig interface {
	GetName() string
	GetTitle() string
	GetColumns() []tablesort.Column
	GetRows() []map[string]string
}

// Server represents the application server with all its dependencies
type Server struct {
	renderer *rendering.ListRenderer
	router   *mux.Router
	registry *prometheus.Registry
	metrics  *metrics
	logger   zerolog.Logger
	codec    *securecookie.SecureCookie

	// Options applied to every header renderer, after the list columns
	options []tablesort.Option
	lists   []string
}

// NewServer creates a new server. opts are applied to the header renderer of every list.
func NewServer(logger zerolog.Logger, opts ...tablesort.Option) (*Server, error) {
	renderer, err := rendering.NewListRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	registry := prometheus.NewRegistry()
	s := &Server{
		renderer: renderer,
		router:   mux.NewRouter(),
		registry: registry,
		metrics:  newMetrics(registry),
		logger:   logger,
		options:  slices.Clone(opts),
	}
	s.router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return s, nil
}

// SetCookieCodec sets the codec used to sign sort cookies. nil stores them unsigned.
func (s *Server) SetCookieCodec(codec *securecookie.SecureCookie) {
	s.codec = codec
}

// Handler returns the HTTP handler serving all registered lists
func (s *Server) Handler() http.Handler {
	return s.router
}

// Lists returns the names of the registered lists
func (s *Server) Lists() []string {
	return slices.Clone(s.lists)
}

// Register mounts a list under /<name>
func (s *Server) Register(list ListConfig) {
	base := "/" + list.GetName()
	s.lists = append(s.lists, list.GetName())

	s.router.Handle(base+"/reset", s.instrument(list, "reset", s.handleReset(list))).
		Methods(http.MethodGet, http.MethodPost)
	for _, path := range []string{base, base + "/{page:[0-9]+}", base + "/{page:[0-9]+}/{sort}"} {
		s.router.Handle(path, s.instrument(list, "list", s.handleList(list))).Methods(http.MethodGet)
	}
}

// newHeaderRenderer builds the per-request header renderer for a list
func (s *Server) newHeaderRenderer(w http.ResponseWriter, r *http.Request, list ListConfig, page int) (*tablesort.Renderer, error) {
	base := "/" + list.GetName()
	logger := s.logger.With().Str("list", list.GetName()).Logger()
	store := cookies.NewHTTPStore(w, r, s.codec, cookies.WithPath(base), cookies.WithLogger(logger))

	opts := make([]tablesort.Option, 0, len(s.options)+5)
	opts = append(opts, tablesort.WithColumns(list.GetColumns()...))
	opts = append(opts, s.options...)
	opts = append(opts,
		tablesort.WithBaseURL(base),
		tablesort.WithURISegment(sortSegment),
		tablesort.WithCurrentPage(page),
		tablesort.WithLogger(logger),
	)
	return tablesort.New(query.NewPath(r.URL), store, opts...)
}

// pageNumber returns the page from the route, defaulting to 1
func pageNumber(r *http.Request) (int, error) {
	raw, ok := mux.Vars(r)["page"]
	if !ok {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("invalid page %q", raw)
	}
	return page, nil
}

func (s *Server) handleList(list ListConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageNumber(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		header, err := s.newHeaderRenderer(w, r, list, page)
		if err != nil {
			s.logger.Error().Err(err).Str("list", list.GetName()).Msg("header renderer configuration failed")
			http.Error(w, "list is misconfigured", http.StatusInternalServerError)
			return
		}
		s.metrics.renders.WithLabelValues(list.GetName(), string(header.Source())).Inc()

		vm := views.BuildListViewModel(list.GetTitle(), header, list.GetRows(), page, "/"+list.GetName()+"/reset")

		var buf bytes.Buffer
		if err := s.renderer.Render(&buf, vm); err != nil {
			s.logger.Error().Err(err).Str("list", list.GetName()).Msg("template rendering error")
			http.Error(w, "rendering failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

func (s *Server) handleReset(list ListConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header, err := s.newHeaderRenderer(w, r, list, 1)
		if err != nil {
			s.logger.Error().Err(err).Str("list", list.GetName()).Msg("header renderer configuration failed")
			http.Error(w, "list is misconfigured", http.StatusInternalServerError)
			return
		}
		header.Reset()
		http.Redirect(w, r, "/"+list.GetName(), http.StatusSeeOther)
	}
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// instrument logs each request and records its duration
func (s *Server) instrument(list ListConfig, route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		s.metrics.duration.
			WithLabelValues(list.GetName(), route, strconv.Itoa(rec.status)).
			Observe(elapsed.Seconds())
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", elapsed).
			Msg("request")
	})
}
