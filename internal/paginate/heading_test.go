/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package paginate

import "testing"

func TestClassifyManualHeading(t *testing.T) {
	h, next, ok := ClassifyHeading("【AB】◯本文", 1)
	if !ok {
		t.Fatalf("expected manual heading match")
	}
	if h.Kind != HeadingManual {
		t.Fatalf("expected manual kind, got %v", h.Kind)
	}
	if h.Display != "  AB " {
		t.Fatalf("unexpected display field: %q", h.Display)
	}
	if h.Rest != "◯本文" {
		t.Fatalf("unexpected rest: %q", h.Rest)
	}
	if next != 1 {
		t.Fatalf("manual heading must not advance the counter, got %d", next)
	}
}

func TestClassifyManualLabelWidths(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"A", "   A "},
		{"AB", "  AB "},
		{"ABCD", "ABCD "},
		{"ABCDE", "ABCDE"},
		{"ABCDEFGH", "ABCDE"}, // silent truncation to exactly 5
		{"", "     "},
		{"場面一", " 場面一 "},
	}
	for _, c := range cases {
		h, _, ok := ClassifyHeading("【"+c.label+"】◯x", 1)
		if !ok {
			t.Fatalf("label %q: expected match", c.label)
		}
		if h.Display != c.want {
			t.Fatalf("label %q: display %q, want %q", c.label, h.Display, c.want)
		}
	}
}

func TestClassifyAutoHeadingAdvancesCounter(t *testing.T) {
	h, next, ok := ClassifyHeading("◯見出し", 1)
	if !ok || h.Kind != HeadingAuto {
		t.Fatalf("expected auto heading, got ok=%v kind=%v", ok, h.Kind)
	}
	if h.Display != "   1 " {
		t.Fatalf("unexpected number field: %q", h.Display)
	}
	if h.Rest != "見出し" {
		t.Fatalf("unexpected rest: %q", h.Rest)
	}
	if next != 2 {
		t.Fatalf("auto heading must advance counter to 2, got %d", next)
	}

	h, next, ok = ClassifyHeading("◎次の場面", next)
	if !ok || h.Display != "   2 " || next != 3 {
		t.Fatalf("second auto heading: ok=%v display=%q next=%d", ok, h.Display, next)
	}
}

func TestClassifyOrdinaryAndMalformed(t *testing.T) {
	cases := []string{
		"",
		"ただの台詞の行です。",
		"【ラベルだけで閉じない",        // unterminated label
		"【ラベル】マーカーなし",        // close bracket not followed by a marker
		"【ラベル】",              // nothing after the label at all
		"本文の途中に◯マーカーがあっても無関係", // marker not at line start
	}
	for _, c := range cases {
		if _, next, ok := ClassifyHeading(c, 7); ok || next != 7 {
			t.Fatalf("%q: expected ordinary line with counter untouched, got ok=%v next=%d", c, ok, next)
		}
	}
}

func TestClassifyAllMarkerCharacters(t *testing.T) {
	for _, m := range "○◯◎●◇◆□■☆★" {
		if _, _, ok := ClassifyHeading(string(m)+"場面", 1); !ok {
			t.Fatalf("marker %q not recognized", m)
		}
	}
}
