/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"tatefmt/internal/paginate"
)

// PDFOptions controls PDF export behavior.
// Units are points (pt) unless otherwise noted.
//
// Layout:
// - One PDF page per composed script page.
// - Columns run right to left, one column per line slot on the page.
// - Each column holds up to paginate.PageWidth glyphs, top to bottom.
// - Scene heading columns are tinted dark red.
//
// Fonts: with no FontPath the built-in Helvetica is used, which keeps the
// file portable but renders CJK glyphs as replacement boxes in most viewers.
// Pass a TTF path for production output.
type PDFOptions struct {
	Paper    PaperPreset
	FontPath string // optional UTF-8 TTF to embed
	Title    string
}

const pdfFontName = "scripttext"

// ExportPDF writes all pages to a single multi-page PDF at outPath.
func ExportPDF(pages []paginate.Page, outPath string, opt PDFOptions) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to export")
	}
	size := PaperDimensions(opt.Paper)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.Width, Ht: size.Height},
		OrientationStr: "",
	})
	title := opt.Title
	if title == "" {
		title = "Script"
	}
	pdf.SetTitle(title, true)
	pdf.SetAuthor("tatefmt", false)

	font := "Helvetica"
	if opt.FontPath != "" {
		pdf.AddUTF8Font(pdfFontName, "", opt.FontPath)
		font = pdfFontName
	}

	cols := float64(paginate.PageLines)
	rows := float64(paginate.PageWidth)
	cellW := (size.Width - 2*size.Margin) / cols
	cellH := (size.Height - 2*size.Margin) / rows
	fontSize := cellH * 0.82

	pdf.SetFont(font, "", fontSize)

	for pi, pg := range pages {
		pdf.AddPageFormat("", gofpdf.SizeType{Wd: size.Width, Ht: size.Height})

		// Page number, bottom left corner.
		pdf.SetTextColor(128, 128, 128)
		pdf.SetFontSize(9)
		pdf.Text(size.Margin, size.Height-size.Margin/2, fmt.Sprintf("%d", pi+1))
		pdf.SetFontSize(fontSize)

		for li, rec := range pg.Records {
			if li >= paginate.PageLines {
				break
			}
			// Column li counts from the right edge.
			x := size.Width - size.Margin - float64(li+1)*cellW + (cellW-fontSize)/2
			if rec.IsScene {
				pdf.SetTextColor(139, 0, 0)
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			y := size.Margin + cellH
			for _, r := range rec.Text {
				pdf.Text(x, y-cellH*0.2, string(r))
				y += cellH
			}
		}
	}

	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
