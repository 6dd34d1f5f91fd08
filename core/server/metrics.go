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
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the collectors the server records into
type metrics struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tablesort",
			Name:      "header_renders_total",
			Help:      "Number of rendered list headers, by where the sort state came from.",
		}, []string{"list", "source"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tablesort",
			Name:      "request_duration_seconds",
			Help:      "Time spent serving list requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"list", "route", "status"}),
	}
	reg.MustRegister(m.renders, m.duration)
	return m
}
