// seehuhn.de/go/perspective - perspective projection of layered drawings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package perspective

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Lengths are measured in CSS pixels, 96 to the inch.
var lengthUnits = map[string]float64{
	"px": 1,
	"in": 96,
	"ft": 12 * 96,
	"yd": 36 * 96,
	"mm": 96 / 25.4,
	"cm": 96 / 2.54,
	"m":  100 * 96 / 2.54,
	"km": 100_000 * 96 / 2.54,
	"pt": 96.0 / 72,
	"pc": 16,
}

var angleUnits = map[string]float64{
	"deg":  1,
	"rad":  180 / math.Pi,
	"grad": 0.9,
	"turn": 360,
}

// DefaultDepthSpacing is the distance between consecutive layer planes
// used when a document does not specify one: 1cm.
var DefaultDepthSpacing = lengthUnits["cm"]

// ParseLength converts a string like "1cm", "2.5 mm" or "12" into a length
// in pixels.  Numbers without a unit are taken to be pixels.
func ParseLength(s string) (float64, error) {
	return parseWithUnit(s, lengthUnits, "length")
}

// ParseAngle converts a string like "30", "30deg", "0.5rad" or "0.25turn"
// into an angle in degrees.  Numbers without a unit are taken to be degrees.
func ParseAngle(s string) (float64, error) {
	return parseWithUnit(s, angleUnits, "angle")
}

func parseWithUnit(s string, units map[string]float64, what string) (float64, error) {
	s = strings.TrimSpace(s)
	split := len(s)
	for split > 0 {
		c := s[split-1]
		if c < 'a' || c > 'z' {
			break
		}
		split--
	}
	num := strings.TrimSpace(s[:split])
	unit := s[split:]

	factor := 1.0
	if unit != "" {
		f, ok := units[unit]
		if !ok {
			return 0, fmt.Errorf("%w: unknown %s unit %q", ErrInvalidParameter, what, unit)
		}
		factor = f
	}

	x, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, fmt.Errorf("%w: malformed %s %q", ErrInvalidParameter, what, s)
	}
	return x * factor, nil
}
