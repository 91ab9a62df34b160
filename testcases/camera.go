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

// floor is a stack of layers rotated to lie flat, like a set of shelves.
var floor = []Step{
	{Layers: []int{1, 2, 3}, Command: perspective.RotateLayer{Axis: perspective.AxisX, Angle: -90}},
}

var floorLayers = map[int]path.Path{
	1: grid(250, 150, 550, 450, 6),
	2: square(400, 300, 300),
	3: fivePointStar(400, 300, 150),
}

var cameraScenes = []Scene{
	{
		Name:     "tilt_down",
		PageSize: page,
		Layers:   floorLayers,
		Steps:    floor,
		Camera:   perspective.Camera{HFOV: 45, Tilt: 30},
	},
	{
		Name:     "tilt_up",
		PageSize: page,
		Layers:   floorLayers,
		Steps:    floor,
		Camera:   perspective.Camera{HFOV: 45, Tilt: -30},
	},
	{
		Name:     "pan_right",
		PageSize: page,
		Layers: map[int]path.Path{
			1: square(400, 300, 300),
			2: square(400, 300, 300),
			3: square(400, 300, 300),
		},
		Camera: perspective.Camera{HFOV: 45, Pan: 40},
	},
	{
		Name:     "tilt_and_pan",
		PageSize: page,
		Spacing:  3 * cm,
		Layers: map[int]path.Path{
			1: square(400, 300, 300),
			2: square(400, 300, 300),
			3: square(400, 300, 300),
		},
		Camera: perspective.Camera{HFOV: 60, Tilt: 25, Pan: -35},
	},
	{
		Name:     "move",
		PageSize: page,
		Layers: map[int]path.Path{
			1: grid(200, 100, 600, 500, 4),
			2: square(400, 300, 200),
		},
		Camera: perspective.Camera{HFOV: 45, Move: mgl64.Vec3{100, -50, 200}},
	},
	{
		Name:     "aiming_point",
		PageSize: page,
		Layers: map[int]path.Path{
			1: square(400, 300, 300),
			2: square(400, 300, 200),
			3: square(400, 300, 100),
		},
		Camera: perspective.Camera{HFOV: 45, Pan: 30, Aim: &mgl64.Vec3{100, 0, 0}},
	},
}
