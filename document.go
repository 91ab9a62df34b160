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
	"maps"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polyline is a sequence of connected points in page coordinates.
// Page coordinates have the origin in the top-left corner of the page,
// with the y axis pointing down.
type Polyline []vec.Vec2

// Layer is one plane of a layered drawing.
// Layers must be created using [NewLayer] or [Document.AddLayer]; the zero
// value has no valid transformation and is rejected by [Document.Layer].
type Layer struct {
	Lines []Polyline

	// Transform is the accumulated transformation of the layer plane,
	// in world coordinates.  It is the product of all transformations
	// applied to the layer so far, the most recent one leftmost.
	Transform Matrix
}

// NewLayer returns a layer holding the given lines, with the identity
// transformation.
func NewLayer(lines ...Polyline) *Layer {
	return &Layer{
		Lines:     lines,
		Transform: Identity,
	}
}

// Apply composes M onto the accumulated transformation of the layer.
// After the call, the transformation is M·T where T is the previous value.
func (l *Layer) Apply(M Matrix) {
	l.Transform = M.Mul(l.Transform)
}

// Reset sets the accumulated transformation back to the identity.
func (l *Layer) Reset() {
	l.Transform = Identity
}

// Center returns the current position of the centre of the layer plane in
// world coordinates.  The layer id and the depth spacing determine where
// the plane starts, before any transformation is applied.
func (l *Layer) Center(id int, spacing float64) mgl64.Vec4 {
	return l.Transform.Apply(BasePosition(id, spacing))
}

// clone returns a shallow copy of the layer.  The lines are shared.
func (l *Layer) clone() *Layer {
	c := *l
	return &c
}

// LayerZ returns the world depth of the plane of layer id.
// Layer 1 lies at z=0, every further layer is spacing closer to the viewer.
func LayerZ(id int, spacing float64) float64 {
	return float64(id-1) * spacing
}

// BasePosition returns the untransformed centre of layer id in homogeneous
// world coordinates.
func BasePosition(id int, spacing float64) mgl64.Vec4 {
	return mgl64.Vec4{0, 0, LayerZ(id, spacing), 1}
}

// Document is a layered drawing.
type Document struct {
	// PageSize gives the width (X) and height (Y) of the page.
	// If the width is zero, the page size is unknown and the bounds of the
	// geometry are used instead.
	PageSize vec.Vec2

	// DepthSpacing is the distance between consecutive layer planes.
	DepthSpacing float64

	// Layers maps layer ids (starting at 1) to layers.
	Layers map[int]*Layer
}

// NewDocument returns an empty document with unknown page size and the
// default depth spacing.
func NewDocument() *Document {
	return &Document{
		DepthSpacing: DefaultDepthSpacing,
		Layers:       make(map[int]*Layer),
	}
}

// AddLayer appends lines to layer id, creating the layer if needed.
func (d *Document) AddLayer(id int, lines ...Polyline) (*Layer, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: layer id %d", ErrInvalidLayer, id)
	}
	if d.Layers == nil {
		d.Layers = make(map[int]*Layer)
	}
	l, ok := d.Layers[id]
	if !ok {
		l = NewLayer()
		d.Layers[id] = l
	}
	l.Lines = append(l.Lines, lines...)
	return l, nil
}

// Layer returns the layer with the given id.
func (d *Document) Layer(id int) (*Layer, error) {
	l, ok := d.Layers[id]
	if id < 1 || !ok || l == nil {
		return nil, fmt.Errorf("%w: no layer %d", ErrInvalidLayer, id)
	}
	if l.Transform == (Matrix{}) {
		return nil, fmt.Errorf("%w: layer %d has no transformation", ErrInvalidLayer, id)
	}
	return l, nil
}

// LayerIDs returns the ids of all layers, in increasing order.
func (d *Document) LayerIDs() []int {
	return slices.Sorted(maps.Keys(d.Layers))
}

// SetDepthSpacing changes the distance between consecutive layer planes.
//
// Layer commands which use the layer centre read the spacing when they
// run.  Transformations applied earlier are not adjusted.
func (d *Document) SetDepthSpacing(spacing float64) error {
	if !(spacing > 0) || spacing > math.MaxFloat64 {
		return fmt.Errorf("%w: depth spacing %g", ErrInvalidParameter, spacing)
	}
	d.DepthSpacing = spacing
	return nil
}

// Bounds returns the bounding box of all points in the given layers,
// in page coordinates.  If there are no points, ok is false.
func (d *Document) Bounds(ids []int) (bbox rect.Rect, ok bool) {
	for _, id := range ids {
		l := d.Layers[id]
		if l == nil {
			continue
		}
		for _, line := range l.Lines {
			for _, p := range line {
				if !ok {
					bbox = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
					ok = true
					continue
				}
				bbox.LLx = min(bbox.LLx, p.X)
				bbox.LLy = min(bbox.LLy, p.Y)
				bbox.URx = max(bbox.URx, p.X)
				bbox.URy = max(bbox.URy, p.Y)
			}
		}
	}
	return bbox, ok
}

// pageRect returns the rectangle whose centre becomes the world origin:
// the page if its size is known, otherwise the bounds of the given layers.
func (d *Document) pageRect(ids []int) (rect.Rect, error) {
	if d.PageSize.X > 0 {
		return rect.Rect{URx: d.PageSize.X, URy: d.PageSize.Y}, nil
	}
	bbox, ok := d.Bounds(ids)
	if !ok || bbox.URx <= bbox.LLx {
		return rect.Rect{}, ErrNoGeometry
	}
	return bbox, nil
}

// depthSpacing returns the spacing, substituting the default for documents
// which were not created by NewDocument.
func (d *Document) depthSpacing() float64 {
	if d.DepthSpacing > 0 {
		return d.DepthSpacing
	}
	return DefaultDepthSpacing
}
