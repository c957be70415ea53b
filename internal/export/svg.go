/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"tatefmt/internal/paginate"
)

// SVGOptions controls SVG export behavior.
// - Coordinates are in points; a viewBox maps them 1:1 onto the page.
// - FontFamily is a hint only; no fonts are embedded.
type SVGOptions struct {
	Paper      PaperPreset
	FontFamily string
	Prefix     string // file name prefix, default "page"
}

// ExportSVGPages writes each composed page as a separate SVG file under
// outDir, named <prefix>-<n>.svg. Columns run right to left with one glyph
// per tspan so viewers without vertical text support still stack correctly.
func ExportSVGPages(pages []paginate.Page, outDir string, opt SVGOptions) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to export")
	}
	size := PaperDimensions(opt.Paper)
	family := opt.FontFamily
	if family == "" {
		family = "'Noto Serif CJK JP', 'Hiragino Mincho ProN', serif"
	}
	prefix := opt.Prefix
	if prefix == "" {
		prefix = "page"
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}

	cols := float64(paginate.PageLines)
	rows := float64(paginate.PageWidth)
	cellW := (size.Width - 2*size.Margin) / cols
	cellH := (size.Height - 2*size.Margin) / rows
	fontSize := cellH * 0.82

	for pi, pg := range pages {
		var buf bytes.Buffer
		var werr error
		wf := func(format string, args ...any) {
			if werr != nil {
				return
			}
			_, werr = fmt.Fprintf(&buf, format, args...)
		}

		wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%gpt\" height=\"%gpt\" viewBox=\"0 0 %g %g\">\n", size.Width, size.Height, size.Width, size.Height)
		wf("  <rect x=\"0\" y=\"0\" width=\"%g\" height=\"%g\" fill=\"#ffffff\"/>\n", size.Width, size.Height)
		wf("  <text x=\"%g\" y=\"%g\" font-family=\"%s\" font-size=\"9\" fill=\"#808080\">%d</text>\n", size.Margin, size.Height-size.Margin/2, escAttr(family), pi+1)

		for li, rec := range pg.Records {
			if li >= paginate.PageLines {
				break
			}
			x := size.Width - size.Margin - float64(li+1)*cellW + cellW/2
			fill := "#000000"
			if rec.IsScene {
				fill = "#8b0000"
			}
			wf("  <text font-family=\"%s\" font-size=\"%g\" fill=\"%s\" text-anchor=\"middle\">\n", escAttr(family), fontSize, fill)
			y := size.Margin + cellH*0.8
			for _, r := range rec.Text {
				wf("    <tspan x=\"%g\" y=\"%g\">%s</tspan>\n", x, y, escText(string(r)))
				y += cellH
			}
			wf("  </text>\n")
		}

		wf("</svg>\n")

		if werr != nil {
			return fmt.Errorf("build svg: %w", werr)
		}

		name := filepath.Join(outDir, fmt.Sprintf("%s-%d.svg", prefix, pi+1))
		if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	}
	return nil
}

func escAttr(s string) string {
	// naive escaping sufficient for our simple usage
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '"':
			out = append(out, '&', 'q', 'u', 'o', 't', ';')
		case '\n':
			out = append(out, ' ')
		case '\r':
			// skip
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}

func escText(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '&':
			out = append(out, '&', 'a', 'm', 'p', ';')
		case '<':
			out = append(out, '&', 'l', 't', ';')
		case '>':
			out = append(out, '&', 'g', 't', ';')
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}
