/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"tatefmt/internal/export"
	"tatefmt/internal/history"
	applog "tatefmt/internal/log"
	"tatefmt/internal/paginate"
	"tatefmt/internal/telemetry"
)

func newFormatCmd(app *App) *cobra.Command {
	var outPath string
	var separator string

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Wrap and paginate a script (stdin when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := applog.WithComponent("format")
			text, source, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			sep := separator
			if !cmd.Flags().Changed("separator") {
				sep = app.Cfg.Export.PageSeparator
			}

			start := time.Now()
			pages := paginate.Paginate(text)
			l.Debug("paginated",
				slog.String("source", source),
				slog.Int("pages", len(pages)),
				slog.Duration("took", time.Since(start)))

			if outPath != "" {
				if err := export.WriteText(outPath, pages, sep); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), export.RenderText(pages, sep))
			}

			recordRun(cmd.Context(), app, l, text, source, pages)
			telemetry.Event("format_run", map[string]any{"pages": len(pages)})
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the paginated text to a file instead of stdout")
	cmd.Flags().StringVar(&separator, "separator", "\f", "Page separator line (default from config)")
	return cmd
}

// recordRun stores run statistics in the history database. Failures are
// logged, never fatal; pagination output already went to the user.
func recordRun(ctx context.Context, app *App, l *slog.Logger, text, source string, pages []paginate.Page) {
	if !app.Cfg.General.HistoryEnabled || app.NoHistory {
		return
	}
	db, err := history.Open(app.Cfg.History.Path)
	if err != nil {
		l.Warn("history unavailable", slog.Any("err", err))
		return
	}
	defer func() { _ = db.Close() }()

	stats := paginate.Summarize(pages)
	run := history.Run{
		TS:       time.Now().UTC(),
		Source:   source,
		InputSHA: inputSHA(text),
		Chars:    len([]rune(text)),
		Lines:    len(paginate.SplitLines(text)),
		Pages:    stats.Pages,
		Headings: stats.Headings,
	}
	if err := history.SaveRun(ctx, db, run); err != nil {
		l.Warn("history write failed", slog.Any("err", err))
	}
}
