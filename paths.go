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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the default maximum distance, in page units, between a
// curve and the polyline which replaces it.
const DefaultFlatness = 0.25

// Polylines converts a path into polylines.
//
// Each subpath becomes one polyline.  Curves are replaced by line segments
// which deviate from the curve by at most flatness; a non-positive value
// selects [DefaultFlatness].  Closed subpaths end with a copy of their first
// point.  Subpaths consisting of a single MoveTo are dropped.
func Polylines(p path.Path, flatness float64) []Polyline {
	if !(flatness > 0) {
		flatness = DefaultFlatness
	}

	var res []Polyline
	var cur Polyline
	flush := func() {
		if len(cur) > 1 {
			res = append(res, cur)
		}
		cur = nil
	}
	emit := func(_, to vec.Vec2) {
		cur = append(cur, to)
	}

	var currentPt, startPt vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			currentPt = pts[0]
			startPt = currentPt
			cur = Polyline{currentPt}

		case path.CmdLineTo:
			if cur == nil {
				continue
			}
			cur = append(cur, pts[0])
			currentPt = pts[0]

		case path.CmdQuadTo:
			if cur == nil {
				continue
			}
			flattenQuadratic(currentPt, pts[0], pts[1], flatness, emit)
			currentPt = pts[1]

		case path.CmdCubeTo:
			if cur == nil {
				continue
			}
			flattenCubic(currentPt, pts[0], pts[1], pts[2], flatness, emit)
			currentPt = pts[2]

		case path.CmdClose:
			if cur == nil {
				continue
			}
			if cur[len(cur)-1] != startPt {
				cur = append(cur, startPt)
			}
			currentPt = startPt
			flush()
		}
	}
	flush()

	return res
}

// ToPath converts polylines into a path made of straight line segments.
// Polylines which end at their starting point are closed.
func ToPath(lines []Polyline) *path.Data {
	p := &path.Data{}
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		p = p.MoveTo(line[0])
		closed := len(line) > 2 && line[0] == line[len(line)-1]
		last := len(line)
		if closed {
			last--
		}
		for _, pt := range line[1:last] {
			p = p.LineTo(pt)
		}
		if closed {
			p = p.Close()
		}
	}
	return p
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errLen := e.Length(); errLen > flatness {
		n = int(math.Ceil(math.Sqrt(errLen / flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		if i == n {
			pt = p2
		}
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		if i == n {
			pt = p3
		}
		emit(prev, pt)
		prev = pt
	}
}
