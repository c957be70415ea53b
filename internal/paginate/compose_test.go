/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package paginate

import "testing"

func pageWeight(p Page) int {
	w := 0
	for _, rec := range p.Records {
		w += weightOf(rec)
	}
	return w
}

func TestComposeEmptyInputYieldsOneBlankPage(t *testing.T) {
	pages := composePages(nil)
	if len(pages) != 1 {
		t.Fatalf("expected exactly 1 page, got %d", len(pages))
	}
	if len(pages[0].Records) != PageLines {
		t.Fatalf("expected %d padding records, got %d", PageLines, len(pages[0].Records))
	}
	for i, rec := range pages[0].Records {
		if rec.Text != "" || rec.IsScene || rec.Source != nil {
			t.Fatalf("record %d: expected blank padding, got %+v", i, rec)
		}
	}
}

func TestComposeSingleRecordPadsToCapacity(t *testing.T) {
	idx := 0
	pages := composePages([]LineRecord{{Text: "あ", Source: &idx}})
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if len(pages[0].Records) != PageLines {
		t.Fatalf("expected %d records after padding, got %d", PageLines, len(pages[0].Records))
	}
}

func TestComposeSplitsAfterSeventeenthOrdinaryLine(t *testing.T) {
	var recs []LineRecord
	for i := 0; i < 20; i++ {
		recs = append(recs, LineRecord{Text: "あ"})
	}
	pages := composePages(recs)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if got := len(pages[0].Records); got != 17 {
		t.Fatalf("first page must hold exactly 17 ordinary lines, got %d", got)
	}
	for i, rec := range pages[0].Records {
		if rec.Text != "あ" {
			t.Fatalf("first page record %d is padding, split happened too early", i)
		}
	}
	// Second page: 3 content lines + 14 padding.
	if got := len(pages[1].Records); got != 17 {
		t.Fatalf("second page must pad to 17, got %d", got)
	}
	if pages[1].Records[3].Text != "" || pages[1].Records[2].Text != "あ" {
		t.Fatalf("second page content/padding boundary wrong: %+v", pages[1].Records[2:4])
	}
}

func TestComposeHeadingWeights(t *testing.T) {
	// Nine headings weigh 16.2 lines; the ceiling already hits the budget so
	// no padding is required and a tenth heading opens a new page.
	var recs []LineRecord
	for i := 0; i < 10; i++ {
		recs = append(recs, LineRecord{Text: "見出し", IsScene: true})
	}
	pages := composePages(recs)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if got := len(pages[0].Records); got != 9 {
		t.Fatalf("first page should hold 9 headings, got %d", got)
	}
}

func TestComposeSealedPagesRoundUpToBudget(t *testing.T) {
	mixed := []LineRecord{
		{Text: "h", IsScene: true},
		{Text: "a"}, {Text: "b"},
		{Text: "h2", IsScene: true},
	}
	var recs []LineRecord
	for i := 0; i < 20; i++ {
		recs = append(recs, mixed...)
	}
	pages := composePages(recs)
	if len(pages) < 2 {
		t.Fatalf("expected multiple pages, got %d", len(pages))
	}
	for i, p := range pages {
		if got := ceilLines(pageWeight(p)); got != PageLines {
			t.Fatalf("page %d: ceiling weight %d, want %d", i, got, PageLines)
		}
	}
}
