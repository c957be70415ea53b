/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package paginate turns line-delimited Japanese script text into fixed-size
// manuscript pages for vertical-writing layout. The pipeline is a pure
// function of its input: split into raw lines, classify headings, wrap long
// lines under kinsoku rules, and fold the resulting visual lines into pages
// of a fixed weighted capacity.
package paginate

// Manuscript geometry. Widths and budgets count runes, not display cells;
// full-width and half-width characters weigh the same.
const (
	// PageWidth is the number of character cells in one visual line.
	PageWidth = 29
	// PageLines is the weighted line budget of one page.
	PageLines = 17
)

// Line weights are carried in tenths so the page budget check stays exact.
const (
	weightHeading = 18 // heading lines render taller
	weightLine    = 10
	pageBudget    = PageLines * weightLine
)

// RawLine is one line of the original document plus its zero-based position.
type RawLine struct {
	Text  string
	Index int
}

// LineRecord is one visual line after wrapping. Source back-references the
// RawLine the record was derived from; it is nil for padding records that
// have no origin in the document.
type LineRecord struct {
	Text    string
	IsScene bool
	Source  *int
}

// Page is a sealed, ordered run of LineRecords whose weights fill the page
// budget exactly (after ceiling rounding). Pages are created only by the
// compositor and never modified afterwards.
type Page struct {
	Records []LineRecord
}
