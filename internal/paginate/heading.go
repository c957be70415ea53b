/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package paginate

import (
	"fmt"
	"strings"
)

// Heading syntax:
//   - Manual: 【label】<marker>rest: the bracketed label is normalized to a
//     fixed 5-cell display field and substituted for the bracket group; the
//     marker and everything after it stay in place.
//   - Auto: <marker>rest: the marker is replaced by the current scene
//     number rendered as a 4-cell right-aligned field plus one space.
//
// Anything else is an ordinary line; malformed heading syntax (e.g. an
// unterminated label) simply falls through.

// headingMarkers are the characters recognized as scene markers.
const headingMarkers = "○◯◎●◇◆□■☆★"

const (
	labelOpen  = '【'
	labelClose = '】'
	labelPad   = 4
)

// HeadingKind distinguishes how a heading line was matched.
type HeadingKind int

const (
	HeadingManual HeadingKind = iota
	HeadingAuto
)

// Heading is a classified heading line, split into the normalized 5-cell
// display field and the untouched remainder of the line.
type Heading struct {
	Kind    HeadingKind
	Display string
	Rest    string
}

// IsMarker reports whether r is a recognized scene marker character.
func IsMarker(r rune) bool { return strings.ContainsRune(headingMarkers, r) }

// ClassifyHeading tests a whitespace-trimmed line against the two heading
// patterns, manual first. sceneNo is the next auto heading number; the
// returned value is sceneNo+1 when an auto heading matched and sceneNo
// otherwise, so callers can thread the counter through a fold. ok is false
// for ordinary lines.
func ClassifyHeading(trimmed string, sceneNo int) (h Heading, next int, ok bool) {
	next = sceneNo
	r := []rune(trimmed)
	if len(r) == 0 {
		return h, next, false
	}
	if r[0] == labelOpen {
		for j := 1; j < len(r); j++ {
			if r[j] != labelClose {
				continue
			}
			if j+1 >= len(r) || !IsMarker(r[j+1]) {
				break
			}
			h = Heading{
				Kind:    HeadingManual,
				Display: normalizeLabel(r[1:j]),
				Rest:    string(r[j+1:]),
			}
			return h, next, true
		}
		return h, next, false
	}
	if IsMarker(r[0]) {
		h = Heading{
			Kind:    HeadingAuto,
			Display: fmt.Sprintf("%*d ", labelPad, sceneNo),
			Rest:    string(r[1:]),
		}
		return h, next + 1, true
	}
	return h, next, false
}

// normalizeLabel renders a manual label at a fixed display width of 5 cells:
// short labels are right-aligned into 4 cells with one trailing space, long
// labels are cut to exactly 5 runes. Truncation is silent.
func normalizeLabel(label []rune) string {
	if len(label) > labelPad {
		return string(label[:labelPad+1])
	}
	return fmt.Sprintf("%*s ", labelPad, string(label))
}
