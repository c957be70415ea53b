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

func TestWrapEmptyLine(t *testing.T) {
	recs, next := wrapLine(RawLine{Text: "", Index: 3}, 1)
	if next != 1 {
		t.Fatalf("counter must not move, got %d", next)
	}
	if len(recs) != 1 || recs[0].Text != "" || recs[0].IsScene {
		t.Fatalf("expected single blank non-heading record, got %+v", recs)
	}
	if recs[0].Source == nil || *recs[0].Source != 3 {
		t.Fatalf("expected source line 3, got %v", recs[0].Source)
	}
}

func TestWrapShortOrdinaryLineVerbatim(t *testing.T) {
	text := "　こんにちは。"
	recs, _ := wrapLine(RawLine{Text: text, Index: 0}, 1)
	if len(recs) != 1 || recs[0].Text != text || recs[0].IsScene {
		t.Fatalf("expected verbatim record, got %+v", recs)
	}
}

func TestWrapExactWidthLine(t *testing.T) {
	text := strings.Repeat("あ", PageWidth)
	recs, _ := wrapLine(RawLine{Text: text, Index: 0}, 1)
	if len(recs) != 1 || recs[0].Text != text {
		t.Fatalf("29-rune line must not wrap, got %d records", len(recs))
	}
}

func TestWrapThirtyPlainCharacters(t *testing.T) {
	text := strings.Repeat("あ", 30)
	recs, _ := wrapLine(RawLine{Text: text, Index: 0}, 1)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Text != strings.Repeat("あ", 29) {
		t.Fatalf("unexpected first segment: %q", recs[0].Text)
	}
	if recs[1].Text != "あ" {
		t.Fatalf("unexpected continuation: %q", recs[1].Text)
	}
}

func TestWrapOrdinaryContinuationReusesBaseIndent(t *testing.T) {
	indent := "　　"
	text := indent + strings.Repeat("あ", 40)
	recs, _ := wrapLine(RawLine{Text: text, Index: 5}, 1)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if !strings.HasPrefix(recs[1].Text, indent) {
		t.Fatalf("continuation must reuse base indent, got %q", recs[1].Text)
	}
	for i, rec := range recs {
		if rec.Source == nil || *rec.Source != 5 {
			t.Fatalf("record %d: expected source 5, got %v", i, rec.Source)
		}
	}
}

func TestWrapDialogueContinuationIndent(t *testing.T) {
	text := "「" + strings.Repeat("あ", 40) + "」"
	recs, _ := wrapLine(RawLine{Text: text, Index: 0}, 1)
	if len(recs) < 2 {
		t.Fatalf("expected wrapping, got %d records", len(recs))
	}
	for _, rec := range recs[1:] {
		if !strings.HasPrefix(rec.Text, dialogueIndent) {
			t.Fatalf("dialogue continuation must use full-width indent, got %q", rec.Text)
		}
	}

	// Single closing quote convention applies to both quote pairs.
	text = "『" + strings.Repeat("い", 40) + "』"
	recs, _ = wrapLine(RawLine{Text: text, Index: 0}, 1)
	if !strings.HasPrefix(recs[1].Text, dialogueIndent) {
		t.Fatalf("double-quote dialogue continuation not indented: %q", recs[1].Text)
	}
}

func TestWrapHeadingSubstitutionAndContinuations(t *testing.T) {
	recs, next := wrapLine(RawLine{Text: "◯" + strings.Repeat("見", 40), Index: 2}, 1)
	if next != 2 {
		t.Fatalf("auto heading must advance counter once, got %d", next)
	}
	if len(recs) < 2 {
		t.Fatalf("expected heading to wrap, got %d records", len(recs))
	}
	if !strings.HasPrefix(recs[0].Text, "   1 ") {
		t.Fatalf("first heading record missing number field: %q", recs[0].Text)
	}
	for i, rec := range recs {
		if !rec.IsScene {
			t.Fatalf("record %d: all heading segments must stay headings", i)
		}
		if rec.Source == nil || *rec.Source != 2 {
			t.Fatalf("record %d: expected source 2", i)
		}
	}
}

func TestWrapHeadingPreservesLeadingWhitespace(t *testing.T) {
	recs, _ := wrapLine(RawLine{Text: "　◯場面", Index: 0}, 4)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Text != "　   4 場面" {
		t.Fatalf("unexpected substituted heading: %q", recs[0].Text)
	}
}

func TestWrapOverlongIndentFallsBackToFullWidth(t *testing.T) {
	indent := strings.Repeat("　", PageWidth)
	text := indent + strings.Repeat("あ", 40)
	recs, _ := wrapLine(RawLine{Text: text, Index: 0}, 1)
	if len(recs) < 2 {
		t.Fatalf("expected wrapping, got %d records", len(recs))
	}
	for i, rec := range recs {
		if n := len([]rune(rec.Text)); n > PageWidth {
			t.Fatalf("record %d exceeds page width: %d runes", i, n)
		}
	}
	// Continuations must not carry the degenerate indent.
	if strings.HasPrefix(recs[1].Text, "　") {
		t.Fatalf("degenerate indent should be dropped, got %q", recs[1].Text)
	}
}

func TestWrapNeverProducesOversizedRecords(t *testing.T) {
	inputs := []string{
		strings.Repeat("あ。", 50),
		"「" + strings.Repeat("あ、", 40) + "」",
		"【長いラベル名称】◯" + strings.Repeat("。", 60),
		strings.Repeat("「", 90),
	}
	for _, s := range inputs {
		recs, _ := wrapLine(RawLine{Text: s, Index: 0}, 1)
		for i, rec := range recs {
			if n := len([]rune(rec.Text)); n > PageWidth {
				t.Fatalf("input %q record %d: %d runes exceeds width", s, i, n)
			}
		}
	}
}
