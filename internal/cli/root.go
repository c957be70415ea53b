/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package cli wires the paginator, exporters and run history into the
// tatefmt command tree.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"tatefmt/internal/config"
	"tatefmt/internal/telemetry"
)

// App carries state shared across subcommands.
type App struct {
	Cfg       config.AppConfig
	NoHistory bool
}

// NewRootCmd builds the tatefmt command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tatefmt",
		Short:        "Paginate Japanese scripts for vertical 17x29 manuscript pages",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Paginate a script from stdin to stdout
  tatefmt format < script.txt

  # Paginate a file and write the result next to it
  tatefmt format script.txt --out script.pages.txt

  # Inspect page breaks in the terminal
  tatefmt preview script.txt

  # Scene heading table of contents
  tatefmt outline script.txt

  # Render a print-ready PDF
  tatefmt export pdf script.txt --out script.pdf --font NotoSerifCJK.ttf
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		app.Cfg = cfg
		if cfg.General.TelemetryOptIn {
			telemetry.InitDefault()
		}
		return nil
	}

	cmd.PersistentFlags().BoolVar(&app.NoHistory, "no-history", false, "Do not record this run in the history database")

	cmd.AddCommand(newFormatCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newOutlineCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
