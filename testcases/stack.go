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

package testcases

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/perspective"
)

const cm = 96 / 2.54

var page = vec.Vec2{X: 800, Y: 600}

var stackScenes = []Scene{
	{
		Name:     "single_square",
		PageSize: page,
		Layers: map[int]path.Path{
			1: square(400, 300, 200),
		},
		Camera: perspective.DefaultCamera(),
	},
	{
		Name:     "three_squares",
		PageSize: page,
		Layers: map[int]path.Path{
			1: square(400, 300, 300),
			2: square(400, 300, 200),
			3: square(400, 300, 100),
		},
		Camera: perspective.DefaultCamera(),
	},
	{
		Name:     "wide_spacing",
		PageSize: page,
		Spacing:  5 * cm,
		Layers: map[int]path.Path{
			1: square(400, 300, 300),
			2: square(400, 300, 300),
			3: square(400, 300, 300),
			4: square(400, 300, 300),
		},
		Camera: perspective.Camera{HFOV: 90},
	},
	{
		Name:     "selected_layers",
		PageSize: page,
		Layers: map[int]path.Path{
			1: square(400, 300, 300),
			2: fivePointStar(400, 300, 150),
			3: square(400, 300, 100),
		},
		Camera: perspective.DefaultCamera(),
		Select: []int{1, 2},
	},
	{
		Name:     "cylinders",
		PageSize: page,
		Spacing:  0.5 * cm,
		Layers:   cylinderLayers(12),
		Steps: []Step{
			{Layers: seq(12), Command: perspective.TranslateLayer{Offset: mgl64.Vec3{0, 0, 3 * cm}}},
		},
		Camera: perspective.Camera{HFOV: 120},
	},
}

// cylinderLayers places two rows of circles on each of n layers, so that
// the stacked layers form cylinders.
func cylinderLayers(n int) map[int]path.Path {
	res := make(map[int]path.Path, n)
	for id := 1; id <= n; id++ {
		var circles []path.Path
		for x := 100.0; x <= 700; x += 100 {
			r := 20 + 5*float64(id%3)
			circles = append(circles, circle(x, 200, r), circle(x, 400, r))
		}
		res[id] = join(circles...)
	}
	return res
}

// seq returns the layer ids 1, ..., n.
func seq(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = i + 1
	}
	return res
}
