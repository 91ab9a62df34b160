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
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects one of the world coordinate axes.
type Axis int

// These are the valid values for [Axis].
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis converts "x", "y" or "z" (in either case) to an [Axis].
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: invalid rotation axis %q", ErrInvalidParameter, s)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Origin selects the fixed point of a rotation or scaling.
type Origin int

// These are the valid values for [Origin].
const (
	// OriginLayer pivots around the current centre of the layer plane.
	OriginLayer Origin = iota

	// OriginWorld pivots around the world origin.
	OriginWorld
)

// ParseOrigin converts "layer" or "world" to an [Origin].
func ParseOrigin(s string) (Origin, error) {
	switch strings.ToLower(s) {
	case "layer":
		return OriginLayer, nil
	case "world":
		return OriginWorld, nil
	}
	return 0, fmt.Errorf("%w: invalid origin %q", ErrInvalidParameter, s)
}

func (o Origin) String() string {
	switch o {
	case OriginLayer:
		return "layer"
	case OriginWorld:
		return "world"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

// A Command changes the transformation of a single layer.
//
// Apply computes the new state of layer id in doc.  The document is not
// modified; the returned layer is a copy which shares its lines with the
// original.
type Command interface {
	Apply(doc *Document, id int) (*Layer, error)
}

// Run applies cmd to each of the given layers.  If any layer fails, the
// document is left unchanged.
func (d *Document) Run(ids []int, cmd Command) error {
	updated := make([]*Layer, len(ids))
	for i, id := range ids {
		l, err := cmd.Apply(d, id)
		if err != nil {
			return fmt.Errorf("layer %d: %w", id, err)
		}
		updated[i] = l
	}
	for i, id := range ids {
		d.Layers[id] = updated[i]
	}
	return nil
}

// RotateLayer turns the layer plane by Angle degrees around one of the world
// axes, through either the layer centre or the world origin.
type RotateLayer struct {
	Axis   Axis
	Angle  float64
	Origin Origin
}

// Apply implements the [Command] interface.
func (c RotateLayer) Apply(doc *Document, id int) (*Layer, error) {
	var M Matrix
	switch c.Axis {
	case AxisX:
		M = RotateX(c.Angle)
	case AxisY:
		M = RotateY(c.Angle)
	case AxisZ:
		M = RotateZ(c.Angle)
	default:
		return nil, fmt.Errorf("%w: invalid rotation axis %s", ErrInvalidParameter, c.Axis)
	}
	return pivoted(doc, id, M, c.Origin)
}

// ScaleLayer stretches the layer plane along the world axes, around either the
// layer centre or the world origin.
type ScaleLayer struct {
	Factors mgl64.Vec3
	Origin  Origin
}

// Apply implements the [Command] interface.
func (c ScaleLayer) Apply(doc *Document, id int) (*Layer, error) {
	return pivoted(doc, id, Scale(c.Factors[0], c.Factors[1], c.Factors[2]), c.Origin)
}

// TranslateLayer moves the layer plane.  If Absolute is set, the plane is moved
// so that its centre ends up at Offset.
type TranslateLayer struct {
	Offset   mgl64.Vec3
	Absolute bool
}

// Apply implements the [Command] interface.
func (c TranslateLayer) Apply(doc *Document, id int) (*Layer, error) {
	l, err := doc.Layer(id)
	if err != nil {
		return nil, err
	}
	M := Translate(c.Offset[0], c.Offset[1], c.Offset[2])
	if c.Absolute {
		center := l.Center(id, doc.depthSpacing())
		M = M.Mul(Translate(-center[0], -center[1], -center[2]))
	}
	res := l.clone()
	res.Apply(M)
	return res, nil
}

// ResetLayer discards all transformations of the layer.
type ResetLayer struct{}

// Apply implements the [Command] interface.
func (ResetLayer) Apply(doc *Document, id int) (*Layer, error) {
	l, err := doc.Layer(id)
	if err != nil {
		return nil, err
	}
	res := l.clone()
	res.Reset()
	return res, nil
}

// pivoted applies M to layer id, with the fixed point chosen by origin.
func pivoted(doc *Document, id int, M Matrix, origin Origin) (*Layer, error) {
	if origin != OriginLayer && origin != OriginWorld {
		return nil, fmt.Errorf("%w: invalid origin %s", ErrInvalidParameter, origin)
	}
	l, err := doc.Layer(id)
	if err != nil {
		return nil, err
	}
	if origin == OriginLayer {
		c := l.Center(id, doc.depthSpacing())
		M = Translate(c[0], c[1], c[2]).Mul(M).Mul(Translate(-c[0], -c[1], -c[2]))
	}
	res := l.clone()
	res.Apply(M)
	return res, nil
}
