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

// Package cli implements the tablesort command line.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root Cobra command for the tablesort CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tablesort",
		Short:         "Sortable table headers for list pages",
		Long:          "tablesort renders sortable <thead> markup and serves demo list pages that use it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(NewServeCmd(), NewRenderCmd())
	return cmd
}
