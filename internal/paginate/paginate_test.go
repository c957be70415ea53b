/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package paginate

import (
	"strings"
	"testing"
)

func TestPaginateEmptyInput(t *testing.T) {
	pages := Paginate("")
	if len(pages) != 1 {
		t.Fatalf("expected exactly 1 page, got %d", len(pages))
	}
	if len(pages[0].Records) != PageLines {
		t.Fatalf("expected %d records, got %d", PageLines, len(pages[0].Records))
	}
	for i, rec := range pages[0].Records {
		if rec.Text != "" || rec.IsScene {
			t.Fatalf("record %d: expected blank non-heading line, got %+v", i, rec)
		}
	}
}

func TestPaginateExactWidthLine(t *testing.T) {
	text := strings.Repeat("あ", PageWidth)
	pages := Paginate(text)
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	recs := pages[0].Records
	if recs[0].Text != text {
		t.Fatalf("first record must equal input, got %q", recs[0].Text)
	}
	blanks := 0
	for _, rec := range recs[1:] {
		if rec.Text == "" {
			blanks++
		}
	}
	if blanks != 16 {
		t.Fatalf("expected 16 blank padding records, got %d", blanks)
	}
}

func TestPaginateThirtyCharacterLine(t *testing.T) {
	pages := Paginate(strings.Repeat("あ", 30))
	recs := pages[0].Records
	if recs[0].Text != strings.Repeat("あ", 29) {
		t.Fatalf("first record: %q", recs[0].Text)
	}
	if recs[1].Text != "あ" {
		t.Fatalf("second record: %q", recs[1].Text)
	}
}

func TestPaginateAutoHeadingNumbering(t *testing.T) {
	input := "◯最初\n本文です。\n【章】◎手動\n◯二番目"
	pages := Paginate(input)
	recs := pages[0].Records
	if recs[0].Text != "   1 最初" || !recs[0].IsScene {
		t.Fatalf("first heading wrong: %+v", recs[0])
	}
	if recs[1].Text != "本文です。" || recs[1].IsScene {
		t.Fatalf("ordinary line wrong: %+v", recs[1])
	}
	if recs[2].Text != "   章 ◎手動" || !recs[2].IsScene {
		t.Fatalf("manual heading wrong: %+v", recs[2])
	}
	// Manual heading must not consume an auto number.
	if recs[3].Text != "   2 二番目" || !recs[3].IsScene {
		t.Fatalf("second auto heading wrong: %+v", recs[3])
	}
}

func TestPaginateSourceIndexes(t *testing.T) {
	input := "一行目\n" + strings.Repeat("あ", 40) + "\n三行目"
	pages := Paginate(input)
	recs := pages[0].Records
	wants := []int{0, 1, 1, 2}
	for i, want := range wants {
		if recs[i].Source == nil || *recs[i].Source != want {
			t.Fatalf("record %d: expected source %d, got %v", i, want, recs[i].Source)
		}
	}
}

func TestPaginateDeterministic(t *testing.T) {
	input := "◯場面\n「長い台詞" + strings.Repeat("あ", 50) + "」\n\n地の文。"
	a := Paginate(input)
	b := Paginate(input)
	if len(a) != len(b) {
		t.Fatalf("page counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if len(a[i].Records) != len(b[i].Records) {
			t.Fatalf("page %d record counts differ", i)
		}
		for j := range a[i].Records {
			if a[i].Records[j].Text != b[i].Records[j].Text {
				t.Fatalf("page %d record %d differ", i, j)
			}
		}
	}
}

func TestPaginateWidthInvariant(t *testing.T) {
	input := strings.Join([]string{
		"◯" + strings.Repeat("場", 50),
		strings.Repeat("あ。", 40),
		"「" + strings.Repeat("い", 70) + "」",
		"【ラベル超過分】◯" + strings.Repeat("う", 33),
	}, "\n")
	for _, p := range Paginate(input) {
		for i, rec := range p.Records {
			if n := len([]rune(rec.Text)); n > PageWidth {
				t.Fatalf("record %d: %d runes exceeds page width", i, n)
			}
		}
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\r\nb\nc")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].Text != "a" || lines[1].Text != "b" || lines[2].Text != "c" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
	for i, l := range lines {
		if l.Index != i {
			t.Fatalf("line %d has index %d", i, l.Index)
		}
	}
}

func TestOffsetOfLine(t *testing.T) {
	input := "あい\nうえお\nか"
	cases := []struct{ line, want int }{
		{0, 0},
		{1, 3},
		{2, 7},
		{9, 8}, // clamps to end
	}
	for _, c := range cases {
		if got := OffsetOfLine(input, c.line); got != c.want {
			t.Fatalf("line %d: offset %d, want %d", c.line, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	pages := Paginate("◯一\n本文\n◯二\n")
	s := Summarize(pages)
	if s.Pages != len(pages) {
		t.Fatalf("pages %d, want %d", s.Pages, len(pages))
	}
	if s.Headings != 2 {
		t.Fatalf("headings %d, want 2", s.Headings)
	}
}
