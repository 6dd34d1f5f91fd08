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

package demo

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/google/tablesort/core/config"
	"github.com/google/tablesort/core/cookies"
	"github.com/google/tablesort/core/server"
	"github.com/google/tablesort/core/tablesort"
)

// SetupDemoServer creates and configures a server with the demo lists
func SetupDemoServer(cfg config.Server, logger zerolog.Logger) (*server.Server, error) {
	var opts []tablesort.Option
	if cfg.ConfigPath != "" {
		f, err := config.LoadTableSort(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		opts = f.Options()
		if keys := f.RoutingKeys(); len(keys) > 0 {
			logger.Warn().Str("path", cfg.ConfigPath).Strs("keys", keys).
				Msg("options are overridden by the server routes and ignored")
		}
		logger.Info().Str("path", cfg.ConfigPath).Int("options", len(opts)).Msg("loaded tablesort options")
	}

	srv, err := server.NewServer(logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	if cfg.CookieHashKey != "" {
		srv.SetCookieCodec(cookies.NewCodec([]byte(cfg.CookieHashKey)))
	} else {
		logger.Warn().Msg("no cookie hash key configured, sort cookies are stored unsigned")
	}

	for _, list := range []*List{CreatePeopleList(), CreateProjectsList()} {
		srv.Register(list)
		logger.Debug().Str("list", list.Name).Int("columns", len(list.Columns)).Msg("registered list")
	}
	return srv, nil
}
