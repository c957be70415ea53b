/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package paginate

import "strings"

// Kinsoku shori: certain punctuation must not begin a visual line and
// opening brackets must not end one.

// lineStartForbidden holds characters that must never begin a visual line:
// closing quotes/brackets, terminal punctuation, the long-vowel mark, and
// colons/semicolons.
const lineStartForbidden = "、。，．！？：；ー」』）｝〕〉》】"

// lineEndForbidden holds opening brackets that must never end a visual line.
const lineEndForbidden = "「『（｛〔〈《【"

// CanBreakAfter reports whether a line break is allowed between c and next.
func CanBreakAfter(c, next rune) bool {
	if strings.ContainsRune(lineEndForbidden, c) {
		return false
	}
	if strings.ContainsRune(lineStartForbidden, next) {
		return false
	}
	return true
}

// FindBreakPoint returns the rune index to break text at so the first
// segment is at most maxLen runes. Text that already fits yields maxLen
// unchanged. Otherwise candidates are scanned from maxLen down to
// max(1, maxLen-5) exclusive, and the first rule-compliant position wins.
// When no candidate within that window complies, maxLen is returned anyway:
// a forced break is preferred over an oversized line, and the bounded search
// caps how much line length a pathological punctuation run can sacrifice.
func FindBreakPoint(text []rune, maxLen int) int {
	if len(text) <= maxLen {
		return maxLen
	}
	low := maxLen - 5
	if low < 1 {
		low = 1
	}
	for i := maxLen; i > low; i-- {
		if i >= len(text) {
			continue
		}
		if CanBreakAfter(text[i-1], text[i]) {
			return i
		}
	}
	return maxLen
}
