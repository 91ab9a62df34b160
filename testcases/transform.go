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
	"seehuhn.de/go/perspective"
)

var transformScenes = []Scene{
	{
		Name:     "rotate_x_layer",
		PageSize: page,
		Layers: map[int]path.Path{
			1: grid(200, 100, 600, 500, 8),
			2: square(400, 300, 200),
		},
		Steps: []Step{
			{Layers: []int{1}, Command: perspective.RotateLayer{Axis: perspective.AxisX, Angle: 60}},
		},
		Camera: perspective.DefaultCamera(),
	},
	{
		Name:     "rotate_y_world",
		PageSize: page,
		Layers: map[int]path.Path{
			1: square(400, 300, 200),
			2: square(400, 300, 200),
		},
		Steps: []Step{
			{Layers: []int{2}, Command: perspective.RotateLayer{
				Axis:   perspective.AxisY,
				Angle:  30,
				Origin: perspective.OriginWorld,
			}},
		},
		Camera: perspective.DefaultCamera(),
	},
	{
		Name:     "rotate_z_stack",
		PageSize: page,
		Layers: map[int]path.Path{
			1: square(400, 300, 250),
			2: square(400, 300, 250),
			3: square(400, 300, 250),
		},
		Steps: []Step{
			{Layers: []int{2}, Command: perspective.RotateLayer{Axis: perspective.AxisZ, Angle: 15}},
			{Layers: []int{3}, Command: perspective.RotateLayer{Axis: perspective.AxisZ, Angle: 30}},
		},
		Camera: perspective.Camera{HFOV: 60, Tilt: 20},
	},
	{
		Name:     "translate_relative",
		PageSize: page,
		Layers: map[int]path.Path{
			1: square(400, 300, 200),
			2: square(400, 300, 200),
		},
		Steps: []Step{
			{Layers: []int{2}, Command: perspective.TranslateLayer{Offset: mgl64.Vec3{100, 50, 2 * cm}}},
		},
		Camera: perspective.DefaultCamera(),
	},
	{
		Name:     "translate_absolute",
		PageSize: page,
		Layers: map[int]path.Path{
			1: square(400, 300, 200),
			3: square(400, 300, 200),
		},
		Steps: []Step{
			{Layers: []int{3}, Command: perspective.TranslateLayer{
				Offset:   mgl64.Vec3{-150, 0, cm},
				Absolute: true,
			}},
		},
		Camera: perspective.DefaultCamera(),
	},
	{
		Name:     "scale_layer",
		PageSize: page,
		Layers: map[int]path.Path{
			1: fivePointStar(400, 300, 200),
			2: fivePointStar(400, 300, 200),
		},
		Steps: []Step{
			{Layers: []int{2}, Command: perspective.ScaleLayer{Factors: mgl64.Vec3{0.5, 0.5, 1}}},
		},
		Camera: perspective.DefaultCamera(),
	},
	{
		Name:     "scale_then_reset",
		PageSize: page,
		Layers: map[int]path.Path{
			1: square(400, 300, 200),
			2: square(400, 300, 200),
		},
		Steps: []Step{
			{Layers: []int{1, 2}, Command: perspective.ScaleLayer{
				Factors: mgl64.Vec3{2, 2, 2},
				Origin:  perspective.OriginWorld,
			}},
			{Layers: []int{1}, Command: perspective.ResetLayer{}},
		},
		Camera: perspective.DefaultCamera(),
	},
}
