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
	"context"
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/perspective"
)

// Scene defines a layered drawing, the layer commands applied to it, and
// the camera used to project it.
type Scene struct {
	Name     string             // lowercase a-z and _ only
	PageSize vec.Vec2           // zero value means "use the bounds"
	Spacing  float64            // depth spacing (zero means default)
	Layers   map[int]path.Path  // geometry per layer id
	Steps    []Step             // layer commands, applied in order
	Camera   perspective.Camera // camera for the projection
	Select   []int              // layers to project (nil means all)
}

// Step applies one layer command to a set of layers.
type Step struct {
	Layers  []int
	Command perspective.Command
}

// Build constructs the document for the scene and runs all steps.
func (s Scene) Build() (*perspective.Document, error) {
	doc := perspective.NewDocument()
	doc.PageSize = s.PageSize
	if s.Spacing != 0 {
		if err := doc.SetDepthSpacing(s.Spacing); err != nil {
			return nil, err
		}
	}
	for _, id := range slices.Sorted(maps.Keys(s.Layers)) {
		lines := perspective.Polylines(s.Layers[id], 0)
		if _, err := doc.AddLayer(id, lines...); err != nil {
			return nil, err
		}
	}
	for i, step := range s.Steps {
		if err := doc.Run(step.Layers, step.Command); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", s.Name, i, err)
		}
	}
	return doc, nil
}

// Project builds the scene and projects it.
func (s Scene) Project(ctx context.Context) (*perspective.Document, *perspective.Result, error) {
	doc, err := s.Build()
	if err != nil {
		return nil, nil, err
	}
	res, err := doc.Project(ctx, perspective.Options{
		Camera: s.Camera,
		Layers: s.Select,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	return doc, res, nil
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
