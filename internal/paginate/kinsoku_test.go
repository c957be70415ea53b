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

func TestCanBreakAfter(t *testing.T) {
	cases := []struct {
		c, next rune
		want    bool
	}{
		{'あ', 'い', true},
		{'あ', '。', false}, // terminal punctuation cannot start a line
		{'あ', '」', false}, // closing quote cannot start a line
		{'あ', 'ー', false}, // long-vowel mark cannot start a line
		{'あ', '：', false},
		{'「', 'あ', false}, // opening quote cannot end a line
		{'（', 'あ', false},
		{'。', 'あ', true}, // breaking after terminal punctuation is fine
	}
	for _, c := range cases {
		if got := CanBreakAfter(c.c, c.next); got != c.want {
			t.Fatalf("CanBreakAfter(%q, %q) = %v, want %v", c.c, c.next, got, c.want)
		}
	}
}

func TestFindBreakPointFitsUnchanged(t *testing.T) {
	for _, n := range []int{0, 1, 28, 29} {
		text := []rune(strings.Repeat("あ", n))
		if got := FindBreakPoint(text, 29); got != 29 {
			t.Fatalf("len=%d: expected 29 unchanged, got %d", n, got)
		}
	}
}

func TestFindBreakPointBackwardSearch(t *testing.T) {
	// 30 plain characters: position 29 is already compliant.
	plain := []rune(strings.Repeat("あ", 30))
	if got := FindBreakPoint(plain, 29); got != 29 {
		t.Fatalf("plain text: expected 29, got %d", got)
	}

	// Forbidden starter at index 29 pushes the break back one position.
	r := []rune(strings.Repeat("あ", 29) + "。あ")
	if got := FindBreakPoint(r, 29); got != 28 {
		t.Fatalf("single forbidden starter: expected 28, got %d", got)
	}

	// A run of forbidden starters longer than the search window forces the
	// break at maxLen despite the rule violation.
	r = []rune(strings.Repeat("あ", 24) + strings.Repeat("。", 10))
	if got := FindBreakPoint(r, 29); got != 29 {
		t.Fatalf("forced break: expected 29, got %d", got)
	}
}

func TestFindBreakPointStaysInWindow(t *testing.T) {
	texts := []string{
		strings.Repeat("あ", 60),
		strings.Repeat("「", 60),
		strings.Repeat("。", 60),
		"あ「い」う。えーお！かきくけこ「さしすせそ」たちつてとなにぬねの",
	}
	for _, s := range texts {
		r := []rune(s)
		for m := 1; m <= 30; m++ {
			got := FindBreakPoint(r, m)
			if len(r) <= m {
				if got != m {
					t.Fatalf("%q max=%d: expected %d unchanged, got %d", s, m, m, got)
				}
				continue
			}
			low := m - 5
			if low < 1 {
				low = 1
			}
			if got <= low-1 || got > m {
				t.Fatalf("%q max=%d: break %d outside (max-5, max]", s, m, got)
			}
		}
	}
}
