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
	"unicode"
)

// dialogueIndent prefixes continuation lines of dialogue: four full-width
// spaces, the typographic convention for wrapped speech.
const dialogueIndent = "　　　　"

// closingQuotes are the paired-quote closers that mark a raw line as
// dialogue for continuation-indent purposes.
const closingQuotes = "」』"

// wrapLine expands one raw line into its visual LineRecords. sceneNo is the
// next auto heading number; the updated counter is returned so the caller
// can thread it through the document fold.
func wrapLine(raw RawLine, sceneNo int) ([]LineRecord, int) {
	idx := raw.Index
	src := &idx

	trimmed := strings.TrimSpace(raw.Text)
	if trimmed == "" {
		return []LineRecord{{Text: "", Source: src}}, sceneNo
	}

	baseIndent := leadingWhitespace(raw.Text)

	if h, next, ok := ClassifyHeading(trimmed, sceneNo); ok {
		full := baseIndent + h.Display + h.Rest
		return wrapSegments(full, baseIndent, true, src), next
	}

	contIndent := baseIndent
	if last := []rune(trimmed); strings.ContainsRune(closingQuotes, last[len(last)-1]) {
		contIndent = dialogueIndent
	}
	return wrapSegments(raw.Text, contIndent, false, src), sceneNo
}

// wrapSegments cuts text into records of at most PageWidth runes. The first
// segment keeps the text verbatim; every continuation is prefixed with
// contIndent. An indent of PageWidth or more cells would leave no room for
// content, so it is dropped and segments are cut at full width instead.
func wrapSegments(text, contIndent string, scene bool, src *int) []LineRecord {
	r := []rune(text)
	if len(r) <= PageWidth {
		return []LineRecord{{Text: text, IsScene: scene, Source: src}}
	}

	bp := FindBreakPoint(r, PageWidth)
	out := []LineRecord{{Text: string(r[:bp]), IsScene: scene, Source: src}}
	rest := r[bp:]

	avail := PageWidth - len([]rune(contIndent))
	if avail <= 0 {
		contIndent = ""
		avail = PageWidth
	}
	for len(rest) > 0 {
		if len(rest) <= avail {
			out = append(out, LineRecord{Text: contIndent + string(rest), IsScene: scene, Source: src})
			break
		}
		bp := FindBreakPoint(rest, avail)
		out = append(out, LineRecord{Text: contIndent + string(rest[:bp]), IsScene: scene, Source: src})
		rest = rest[bp:]
	}
	return out
}

func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsSpace))]
}
