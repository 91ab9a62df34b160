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

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Camera describes the simulated pinhole camera.
//
// In its default position, the camera sits on the z axis in front of the
// front-most selected layer and looks at the point halfway between layer 1
// and that layer.  The distance to the front-most layer is chosen so that
// the page width exactly fills the horizontal field of view.
type Camera struct {
	// HFOV is the horizontal field of view in degrees, in the range (0, 180).
	HFOV float64

	// Tilt rotates the camera up (positive) or down around the aiming point,
	// in degrees.
	Tilt float64

	// Pan rotates the camera right (positive) or left around the aiming point,
	// in degrees.
	Pan float64

	// Move displaces the camera, in camera coordinates.
	Move mgl64.Vec3

	// Aim is the point the camera rotates around, in world coordinates.
	// If nil, the midpoint between the world origin and the front-most
	// selected layer is used.
	Aim *mgl64.Vec3
}

// DefaultCamera returns the camera used when no options are given.
func DefaultCamera() Camera {
	return Camera{HFOV: 45}
}

// Frame holds the chain of matrices used to project one scene.
//
// World coordinates have the origin at the centre of the page, in the plane
// of layer 1.  The y axis points up and the z axis points towards the viewer.
type Frame struct {
	PageToWorld Matrix
	WorldToPage Matrix

	// Orientation applies the aiming point, pan, tilt and move settings.
	Orientation Matrix

	// WorldToCamera moves the camera to the origin, looking along +z.
	WorldToCamera Matrix
	CameraToWorld Matrix

	// Camera maps world coordinates to projected world coordinates.
	// The x and y components are valid after the homogeneous divide.
	Camera Matrix

	Focal float64 // camera distance of the plane which keeps its size
	MaxZ  float64 // depth of the front-most layer
	Aim   mgl64.Vec3
}

// NewFrame sets up the projection for a scene.  The centre of page becomes
// the world origin, spacing is the layer depth spacing, and maxLayer is the
// highest selected layer id.
func NewFrame(page rect.Rect, spacing float64, maxLayer int, cam Camera) (*Frame, error) {
	if !(cam.HFOV > 0 && cam.HFOV < 180) {
		return nil, fmt.Errorf("%w: field of view %g", ErrInvalidParameter, cam.HFOV)
	}
	width := page.URx - page.LLx
	if !(width > 0) {
		return nil, ErrNoGeometry
	}

	f := &Frame{}

	cx := (page.LLx + page.URx) / 2
	cy := (page.LLy + page.URy) / 2
	f.PageToWorld = Scale(1, -1, 1).Mul(Translate(-cx, -cy, 0))
	inv, err := f.PageToWorld.Inv()
	if err != nil {
		return nil, fmt.Errorf("page to world: %w", err)
	}
	f.WorldToPage = inv

	f.Focal = width / 2 / math.Tan(mgl64.DegToRad(cam.HFOV)/2)
	f.MaxZ = LayerZ(maxLayer, spacing)
	if cam.Aim != nil {
		f.Aim = *cam.Aim
	} else {
		f.Aim = mgl64.Vec3{0, 0, f.MaxZ / 2}
	}

	// The aiming point is moved to the origin first, so that pan and tilt
	// rotate around it.  Tilt is applied as a positive x rotation, which
	// points the camera down at the scene.
	f.Orientation = Translate(-cam.Move[0], -cam.Move[1], -cam.Move[2]).
		Mul(RotateX(cam.Tilt)).
		Mul(RotateY(-cam.Pan)).
		Mul(Translate(-f.Aim[0], -f.Aim[1], -f.Aim[2]))

	// The projection matrix needs the camera at the origin, looking along +z.
	f.WorldToCamera = Translate(0, 0, f.Focal).
		Mul(Scale(1, 1, -1)).
		Mul(Translate(0, 0, -f.MaxZ/2))
	inv, err = f.WorldToCamera.Inv()
	if err != nil {
		return nil, fmt.Errorf("world to camera: %w", err)
	}
	f.CameraToWorld = inv

	f.Camera = f.CameraToWorld.
		Mul(Perspective(f.Focal)).
		Mul(f.WorldToCamera).
		Mul(f.Orientation)

	return f, nil
}

// LayerMatrix returns the complete transformation for a layer with the
// given accumulated transformation, mapping page coordinates (lifted to the
// layer depth) to projected homogeneous page coordinates.
func (f *Frame) LayerMatrix(transform Matrix) Matrix {
	return f.WorldToPage.Mul(f.Camera).Mul(transform).Mul(f.PageToWorld)
}

// ToWorld converts a page point on the plane at depth z to homogeneous
// world coordinates.
func (f *Frame) ToWorld(p vec.Vec2, z float64) mgl64.Vec4 {
	return f.PageToWorld.Apply(mgl64.Vec4{p.X, p.Y, z, 1})
}

// ToPage converts homogeneous world coordinates to a page point.
// The caller must ensure that w is not zero.
func (f *Frame) ToPage(q mgl64.Vec4) vec.Vec2 {
	r := f.WorldToPage.Apply(q)
	return vec.Vec2{X: r[0] / r[3], Y: r[1] / r[3]}
}
