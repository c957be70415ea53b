/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"tatefmt/internal/export"
	applog "tatefmt/internal/log"
	"tatefmt/internal/paginate"
	"tatefmt/internal/telemetry"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render pages to PDF, SVG or PNG proof sheets",
	}
	cmd.AddCommand(newExportPDFCmd(app))
	cmd.AddCommand(newExportSVGCmd(app))
	cmd.AddCommand(newExportPNGCmd(app))
	return cmd
}

// paperFor resolves the effective paper preset: flag beats config.
func paperFor(app *App, flag string) (export.PaperPreset, error) {
	name := flag
	if name == "" {
		name = app.Cfg.Export.Paper
	}
	return export.ParsePaper(name)
}

func newExportPDFCmd(app *App) *cobra.Command {
	var outPath, paper, fontPath, title string

	cmd := &cobra.Command{
		Use:   "pdf [file]",
		Short: "Write all pages to a single PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := applog.WithComponent("export")
			text, source, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			preset, err := paperFor(app, paper)
			if err != nil {
				return err
			}
			font := fontPath
			if font == "" {
				font = app.Cfg.Export.PDFFont
			}
			pages := paginate.Paginate(text)
			opt := export.PDFOptions{Paper: preset, FontPath: font, Title: title}
			if err := export.ExportPDF(pages, outPath, opt); err != nil {
				return err
			}
			l.Info("pdf written",
				slog.String("source", source),
				slog.String("out", outPath),
				slog.Int("pages", len(pages)))
			telemetry.Event("export_run", map[string]any{"kind": "pdf", "pages": len(pages)})
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "script.pdf", "Output PDF path")
	cmd.Flags().StringVar(&paper, "paper", "", "Paper preset: a4, b5 or a5 (default from config)")
	cmd.Flags().StringVar(&fontPath, "font", "", "TTF font to embed (default from config; Helvetica without one)")
	cmd.Flags().StringVar(&title, "title", "", "PDF document title")
	return cmd
}

func newExportSVGCmd(app *App) *cobra.Command {
	var outDir, paper, family, prefix string

	cmd := &cobra.Command{
		Use:   "svg [file]",
		Short: "Write one SVG file per page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := applog.WithComponent("export")
			text, source, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			preset, err := paperFor(app, paper)
			if err != nil {
				return err
			}
			pages := paginate.Paginate(text)
			opt := export.SVGOptions{Paper: preset, FontFamily: family, Prefix: prefix}
			if err := export.ExportSVGPages(pages, outDir, opt); err != nil {
				return err
			}
			l.Info("svg written",
				slog.String("source", source),
				slog.String("dir", outDir),
				slog.Int("pages", len(pages)))
			telemetry.Event("export_run", map[string]any{"kind": "svg", "pages": len(pages)})
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "svg", "Output directory")
	cmd.Flags().StringVar(&paper, "paper", "", "Paper preset: a4, b5 or a5 (default from config)")
	cmd.Flags().StringVar(&family, "font-family", "", "CSS font-family hint for the text elements")
	cmd.Flags().StringVar(&prefix, "prefix", "page", "Output file name prefix")
	return cmd
}

func newExportPNGCmd(app *App) *cobra.Command {
	var outDir, paper string
	var dpi int

	cmd := &cobra.Command{
		Use:   "png [file]",
		Short: "Write one density proof sheet PNG per page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := applog.WithComponent("export")
			text, source, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			preset, err := paperFor(app, paper)
			if err != nil {
				return err
			}
			pages := paginate.Paginate(text)
			opt := export.PNGOptions{Paper: preset, DPI: dpi}
			if err := export.ExportProofPNGPages(pages, outDir, opt); err != nil {
				return err
			}
			l.Info("png written",
				slog.String("source", source),
				slog.String("dir", outDir),
				slog.Int("pages", len(pages)))
			telemetry.Event("export_run", map[string]any{"kind": "png", "pages": len(pages)})
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "proof", "Output directory")
	cmd.Flags().StringVar(&paper, "paper", "", "Paper preset: a4, b5 or a5 (default from config)")
	cmd.Flags().IntVar(&dpi, "dpi", 144, "Output pixel density")
	return cmd
}
