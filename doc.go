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

// Package perspective projects layered 2D drawings through a pinhole camera.
//
// Each layer of a [Document] is a plane in a 3D scene.  Layer 1 lies in the
// plane z=0, and every further layer is [Document.DepthSpacing] closer to
// the viewer.  Layers can be rotated, moved and scaled in 3D using the
// layer commands [RotateLayer], [TranslateLayer], [ScaleLayer] and
// [ResetLayer]; the commands accumulate into a 4×4 matrix per layer.
// [Document.Project] then replaces the layer geometry by its image under a
// perspective camera.
//
// Three coordinate systems are used:
//   - Page coordinates have the origin in the top-left corner of the page,
//     with y pointing down.  The lines of a layer are stored in page
//     coordinates.
//   - World coordinates have the origin in the centre of the page, in the
//     plane of layer 1.  The y axis points up and the z axis points
//     towards the viewer.
//   - Camera coordinates have the camera at the origin, looking along +z.
package perspective

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
