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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/google/tablesort/core/config"
	"github.com/google/tablesort/core/cookies"
	"github.com/google/tablesort/core/tablesort"
)

// NewRenderCmd creates the command that prints a header fragment to stdout
func NewRenderCmd() *cobra.Command {
	var (
		configPath string
		segment    string
		baseURL    string
		page       int
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the header markup for a column configuration",
		Example: `  tablesort render --config demo/tablesort.yaml --segment name-desc --base-url /people
  tablesort render --page 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []tablesort.Option
			if configPath != "" {
				f, err := config.LoadTableSort(configPath)
				if err != nil {
					return err
				}
				opts = f.Options()
			}
			if cmd.Flags().Changed("base-url") {
				opts = append(opts, tablesort.WithBaseURL(baseURL))
			}
			if cmd.Flags().Changed("page") {
				opts = append(opts, tablesort.WithCurrentPage(page))
			}
			opts = append(opts, tablesort.WithLogger(config.NewLogger(logLevel, cmd.ErrOrStderr())))

			r, err := tablesort.New(nil, nil, opts...)
			if err != nil {
				return err
			}
			if segment != "" {
				r.ResolveState(segment, cookies.NewMemoryStore(nil))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.RenderHeader())
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with header options")
	cmd.Flags().StringVar(&segment, "segment", "", `sort segment such as "name-desc"`)
	cmd.Flags().StringVar(&baseURL, "base-url", "", "prefix of the generated sort links")
	cmd.Flags().IntVar(&page, "page", 0, "page number added to the sort links")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	return cmd
}
