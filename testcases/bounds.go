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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/perspective"
)

// Scenes without a page size.  The world origin is placed at the centre of
// the bounding box of the selected layers.
var boundsScenes = []Scene{
	{
		Name: "from_bounds",
		Layers: map[int]path.Path{
			1: square(150, 150, 200),
			2: fivePointStar(150, 150, 80),
		},
		Camera: perspective.Camera{HFOV: 60, Tilt: 15},
	},
	{
		Name: "offset_bounds",
		Layers: map[int]path.Path{
			1: rectangle(1000, 2000, 1400, 2300),
			2: rectangle(1100, 2050, 1300, 2250),
		},
		Camera: perspective.DefaultCamera(),
	},
}
