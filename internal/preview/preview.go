/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package preview renders composed pages as styled terminal boxes.
//
// The preview lays lines out horizontally (terminals cannot do vertical
// writing); the point is to inspect page breaks, heading placement and
// padding, not final typography.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tatefmt/internal/paginate"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	pageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ac("250", "243")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ac("240", "245"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ac("88", "173")) // dark red / salmon

	blankStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(ac("250", "240"))
)

// Options controls preview rendering.
type Options struct {
	// Plain disables all styling; useful when stdout is not a terminal.
	Plain bool
}

// Render returns the styled preview of all pages, one bordered box per page.
func Render(pages []paginate.Page, opt Options) string {
	var b strings.Builder
	for i, pg := range pages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderPage(pg, i+1, opt))
		b.WriteString("\n")
	}
	return b.String()
}

func renderPage(pg paginate.Page, number int, opt Options) string {
	lines := make([]string, 0, len(pg.Records)+1)
	title := fmt.Sprintf("page %d", number)
	if !opt.Plain {
		title = titleStyle.Render(title)
	}
	lines = append(lines, title)

	for _, rec := range pg.Records {
		text := rec.Text
		switch {
		case opt.Plain:
		case rec.IsScene:
			text = headingStyle.Render(text)
		case strings.TrimSpace(text) == "":
			// Mark padding and blank records so page balance stays visible.
			text = blankStyle.Render("·")
		}
		lines = append(lines, text)
	}

	body := strings.Join(lines, "\n")
	if opt.Plain {
		return body
	}
	return pageStyle.Render(body)
}
