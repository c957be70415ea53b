/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package paginate

// weightOf returns the page weight of a record in tenths. Heading lines
// occupy visually taller space because of their annotation style.
func weightOf(rec LineRecord) int {
	if rec.IsScene {
		return weightHeading
	}
	return weightLine
}

// ceilLines rounds a weight in tenths up to whole lines.
func ceilLines(w int) int { return (w + weightLine - 1) / weightLine }

// composePages folds visual lines into sealed pages. A page is sealed when
// the next record would overflow the weighted budget; sealing pads the page
// with blank records until its ceiling-rounded weight equals PageLines.
// Even an empty document yields one all-blank page.
func composePages(records []LineRecord) []Page {
	var pages []Page
	var cur []LineRecord
	w := 0

	seal := func() {
		for ceilLines(w) < PageLines {
			cur = append(cur, LineRecord{})
			w += weightLine
		}
		pages = append(pages, Page{Records: cur})
		cur = nil
		w = 0
	}

	for _, rec := range records {
		if rw := weightOf(rec); w+rw > pageBudget && len(cur) > 0 {
			seal()
		}
		cur = append(cur, rec)
		w += weightOf(rec)
	}
	if len(cur) > 0 || len(pages) == 0 {
		seal()
	}
	return pages
}
