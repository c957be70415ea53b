/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"strings"
)

// PaperPreset names a supported output paper size.
type PaperPreset string

const (
	PaperA4 PaperPreset = "a4"
	PaperB5 PaperPreset = "b5"
	PaperA5 PaperPreset = "a5"
)

// PaperSize holds page dimensions in points.
type PaperSize struct {
	Width  float64
	Height float64
	Margin float64
}

// ParsePaper normalizes a user-supplied paper name.
func ParsePaper(s string) (PaperPreset, error) {
	switch PaperPreset(strings.ToLower(strings.TrimSpace(s))) {
	case PaperA4, "":
		return PaperA4, nil
	case PaperB5:
		return PaperB5, nil
	case PaperA5:
		return PaperA5, nil
	}
	return PaperA4, fmt.Errorf("unknown paper preset %q (want a4, b5 or a5)", s)
}

// PaperDimensions returns the point dimensions for a preset. Unknown presets
// fall back to A4.
func PaperDimensions(p PaperPreset) PaperSize {
	switch p {
	case PaperB5:
		return PaperSize{Width: 498.9, Height: 708.66, Margin: 32}
	case PaperA5:
		return PaperSize{Width: 419.53, Height: 595.28, Margin: 28}
	default:
		return PaperSize{Width: 595.28, Height: 841.89, Margin: 36}
	}
}
