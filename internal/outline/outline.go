/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package outline builds the navigable heading list for a document. It reuses
// the pagination engine's classifier and counter threading, so the outline
// and the rendered pages can never disagree about which lines are headings
// or how they are numbered.
package outline

import (
	"strings"

	"tatefmt/internal/paginate"
)

// Entry is one heading in document order. Line is the zero-based raw line
// index usable for jump-to-line; Display is the heading text as it appears
// on the page (normalized label or number field plus remainder).
type Entry struct {
	Line    int
	Display string
}

// Scan collects all heading lines of input.
func Scan(input string) []Entry {
	var out []Entry
	sceneNo := 1
	for _, raw := range paginate.SplitLines(input) {
		h, next, ok := paginate.ClassifyHeading(strings.TrimSpace(raw.Text), sceneNo)
		sceneNo = next
		if !ok {
			continue
		}
		out = append(out, Entry{Line: raw.Index, Display: h.Display + h.Rest})
	}
	return out
}
