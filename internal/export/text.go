/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders composed pages to plain text, PDF, SVG and PNG
// proof sheets.
package export

import (
	"os"
	"path/filepath"
	"strings"

	"tatefmt/internal/paginate"
)

// RenderText serializes pages back to plain text. Pages are joined with the
// separator followed by a newline; every record keeps its trailing newline so
// the output is line-addressable.
func RenderText(pages []paginate.Page, separator string) string {
	var b strings.Builder
	for i, pg := range pages {
		if i > 0 {
			b.WriteString(separator)
			b.WriteString("\n")
		}
		for _, rec := range pg.Records {
			b.WriteString(rec.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// WriteText renders pages and writes them to path, creating parent
// directories as needed.
func WriteText(path string, pages []paginate.Page, separator string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(RenderText(pages, separator)), 0o644)
}
