/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package paginate

import "strings"

// SplitLines splits pre-decoded input on single newlines into position-tagged
// raw lines. A trailing carriage return is stripped per line so CRLF input
// degrades gracefully.
func SplitLines(input string) []RawLine {
	parts := strings.Split(input, "\n")
	out := make([]RawLine, len(parts))
	for i, p := range parts {
		out[i] = RawLine{Text: strings.TrimSuffix(p, "\r"), Index: i}
	}
	return out
}

// Paginate formats a whole document. It is deterministic and total: any
// string yields at least one page, and no error conditions exist. The auto
// heading counter starts at 1 and is threaded through the fold, so
// concurrent calls never interfere.
func Paginate(input string) []Page {
	var records []LineRecord
	sceneNo := 1
	for _, raw := range SplitLines(input) {
		recs, next := wrapLine(raw, sceneNo)
		records = append(records, recs...)
		sceneNo = next
	}
	return composePages(records)
}

// Stats summarizes a pagination result for reporting.
type Stats struct {
	Pages    int
	Headings int
}

// Summarize counts pages and scene heading records.
func Summarize(pages []Page) Stats {
	s := Stats{Pages: len(pages)}
	for _, pg := range pages {
		for _, rec := range pg.Records {
			if rec.IsScene {
				s.Headings++
			}
		}
	}
	return s
}

// OffsetOfLine maps a zero-based raw line index back to the rune offset of
// that line's first character in input. Out-of-range indexes clamp to the
// end of the document.
func OffsetOfLine(input string, index int) int {
	if index <= 0 {
		return 0
	}
	off := 0
	line := 0
	for _, r := range input {
		off++
		if r == '\n' {
			line++
			if line == index {
				return off
			}
		}
	}
	return off
}
