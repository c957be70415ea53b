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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"tatefmt/internal/paginate"
)

// PNGOptions controls proof sheet rendering.
// - DPI: output pixel density, default 144
// - Pages: if empty, export all
type PNGOptions struct {
	Paper PaperPreset
	DPI   int
	Pages []int
}

// ExportProofPNGPages renders each page as a density proof sheet: a grid of
// paginate.PageLines columns (right to left) by paginate.PageWidth rows,
// with occupied glyph cells filled gray and scene heading columns tinted.
// Glyph shapes are intentionally not rendered; the sheets are for checking
// page balance at a glance. Files are named proof-<n>.png under outDir.
func ExportProofPNGPages(pages []paginate.Page, outDir string, opt PNGOptions) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to export")
	}
	size := PaperDimensions(opt.Paper)
	dpi := opt.DPI
	if dpi <= 0 {
		dpi = 144
	}
	scale := float64(dpi) / 72.0
	pixW := int(math.Round(size.Width * scale))
	pixH := int(math.Round(size.Height * scale))
	margin := int(math.Round(size.Margin * scale))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}

	cellW := (pixW - 2*margin) / paginate.PageLines
	cellH := (pixH - 2*margin) / paginate.PageWidth

	white := color.RGBA{255, 255, 255, 255}
	gridCol := color.RGBA{220, 220, 220, 255}
	glyphCol := color.RGBA{96, 96, 96, 255}
	sceneCol := color.RGBA{200, 160, 160, 255}
	labelCol := color.RGBA{128, 128, 128, 255}

	want := pageIndexSet(len(pages), opt.Pages)

	for pi, pg := range pages {
		if !want[pi] {
			continue
		}
		img := image.NewRGBA(image.Rect(0, 0, pixW, pixH))
		draw.Draw(img, img.Bounds(), &image.Uniform{C: white}, image.Point{}, draw.Src)

		for li := 0; li < paginate.PageLines; li++ {
			// Column li counts from the right edge.
			x0 := pixW - margin - (li+1)*cellW
			var rec paginate.LineRecord
			if li < len(pg.Records) {
				rec = pg.Records[li]
			}
			if rec.IsScene {
				fillRect(img, x0, margin, x0+cellW-1, margin+paginate.PageWidth*cellH-1, sceneCol)
			}
			runes := []rune(rec.Text)
			for row := 0; row < paginate.PageWidth; row++ {
				y0 := margin + row*cellH
				strokeRect(img, x0, y0, x0+cellW-1, y0+cellH-1, gridCol)
				if row < len(runes) && runes[row] != '　' && runes[row] != ' ' {
					fillRect(img, x0+2, y0+2, x0+cellW-3, y0+cellH-3, glyphCol)
				}
			}
		}

		drawLabel(img, margin, pixH-margin/2, fmt.Sprintf("page %d", pi+1), labelCol)

		name := filepath.Join(outDir, fmt.Sprintf("proof-%d.png", pi+1))
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("create png: %w", err)
		}
		if err := png.Encode(f, img); err != nil {
			_ = f.Close()
			return fmt.Errorf("encode png: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close png: %w", err)
		}
	}
	return nil
}

func pageIndexSet(total int, specific []int) map[int]bool {
	want := make(map[int]bool, total)
	if len(specific) == 0 {
		for i := 0; i < total; i++ {
			want[i] = true
		}
		return want
	}
	for _, i := range specific {
		if i >= 0 && i < total {
			want[i] = true
		}
	}
	return want
}

// drawLabel renders an ASCII label with the fixed 7x13 face; enough for page
// numbers on proof sheets.
func drawLabel(img *image.RGBA, x, y int, s string, col color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// strokeRect draws a 1px axis-aligned rectangle border inclusive of endpoints.
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, col)
		img.SetRGBA(x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, col)
		img.SetRGBA(x1, y, col)
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}
