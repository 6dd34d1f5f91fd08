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
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server holds the process configuration of the demo server
type Server struct {
	Addr          string `env:"TABLESORT_ADDR" envDefault:":8080"`
	ConfigPath    string `env:"TABLESORT_CONFIG"`
	CookieHashKey string `env:"TABLESORT_COOKIE_HASH_KEY"`
	LogLevel      string `env:"TABLESORT_LOG_LEVEL" envDefault:"info"`
}

// LoadServer reads the server configuration from the environment
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
