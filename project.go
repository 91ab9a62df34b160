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
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/vec"
)

// DegeneratePolicy selects how points with a homogeneous w coordinate of
// (almost) zero are handled.  Such points lie in the plane of the camera.
type DegeneratePolicy int

const (
	// ClampW replaces w by a small value with the same sign (positive if w
	// is exactly zero) and counts the affected points.  For finite layer
	// transformations the output is finite, and identical input always
	// gives identical output.
	ClampW DegeneratePolicy = iota

	// Strict aborts the projection with [ErrDegenerateProjection] and
	// leaves the document unchanged.
	Strict
)

// wEpsilon is the smallest |w| accepted by the homogeneous divide, relative
// to the focal length.
const wEpsilon = 1e-9

// Options control a projection.
// The embedded camera needs a valid field of view; [DefaultCamera] is a
// good starting point.
type Options struct {
	Camera

	// Layers lists the layers to project.  If nil, all layers are projected.
	Layers []int

	Policy DegeneratePolicy

	// Logger receives warnings.  If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Result describes the outcome of a projection.
type Result struct {
	// Frame is the camera setup used.  It is nil if the projection was
	// skipped.
	Frame *Frame

	// Projected lists the layers which were replaced.
	Projected []int

	// Skipped lists the layers which were left unchanged because no page
	// size or bounds were available.
	Skipped []int

	// Degenerate counts, per layer, the points whose w coordinate was
	// clamped.  Layers without such points are omitted.
	Degenerate map[int]int
}

// Project replaces the geometry of the selected layers by its perspective
// projection.
//
// If neither a page size nor the bounds of the selected layers are
// available, a warning is logged and the document is returned unchanged;
// this is not an error.  The accumulated layer transformations are kept, so
// projecting twice applies them twice.
func (d *Document) Project(ctx context.Context, opt Options) (*Result, error) {
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ids := opt.Layers
	if ids == nil {
		ids = d.LayerIDs()
	} else {
		ids = slices.Clone(ids)
		slices.Sort(ids)
		ids = slices.Compact(ids)
	}
	res := &Result{}
	if len(ids) == 0 {
		return res, nil
	}
	for _, id := range ids {
		if _, err := d.Layer(id); err != nil {
			return nil, err
		}
	}
	if opt.Policy != ClampW && opt.Policy != Strict {
		return nil, fmt.Errorf("%w: degenerate policy %d", ErrInvalidParameter, opt.Policy)
	}
	if !(opt.HFOV > 0 && opt.HFOV < 180) {
		return nil, fmt.Errorf("%w: field of view %g", ErrInvalidParameter, opt.HFOV)
	}

	page, err := d.pageRect(ids)
	if err != nil {
		logger.Warn("perspective: cannot compute bounds, skipping projection",
			"layers", ids)
		res.Skipped = ids
		return res, nil
	}

	spacing := d.depthSpacing()
	frame, err := NewFrame(page, spacing, ids[len(ids)-1], opt.Camera)
	if err != nil {
		return nil, err
	}
	res.Frame = frame

	projected := make([]*Layer, len(ids))
	counts := make([]int, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range ids {
		l := d.Layers[id]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, n, err := ProjectLayer(l, LayerZ(id, spacing), frame, opt.Policy)
			if err != nil {
				return fmt.Errorf("layer %d: %w", id, err)
			}
			projected[i] = p
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, id := range ids {
		d.Layers[id] = projected[i]
		if counts[i] > 0 {
			if res.Degenerate == nil {
				res.Degenerate = make(map[int]int)
			}
			res.Degenerate[id] = counts[i]
			logger.Warn("perspective: points in the camera plane",
				"layer", id, "points", counts[i])
		}
	}
	res.Projected = ids
	return res, nil
}

// ProjectLayer returns a copy of l with all points projected through frame.
// The layer plane lies at world depth z.  The number of points whose w
// coordinate had to be clamped is returned as well.  The transformation of
// the returned layer is unchanged.  Input points which are not finite are
// rejected with [ErrInvalidParameter], whatever the policy.
func ProjectLayer(l *Layer, z float64, frame *Frame, policy DegeneratePolicy) (*Layer, int, error) {
	M := frame.LayerMatrix(l.Transform)
	minW := wEpsilon * max(1, math.Abs(frame.Focal))

	res := l.clone()
	res.Lines = make([]Polyline, len(l.Lines))
	degenerate := 0
	for i, line := range l.Lines {
		out := make(Polyline, len(line))
		for j, p := range line {
			if !isFinite(p.X) || !isFinite(p.Y) {
				return nil, 0, fmt.Errorf("%w: point (%g, %g) of line %d",
					ErrInvalidParameter, p.X, p.Y, i)
			}
			q := M.Apply(mgl64.Vec4{p.X, p.Y, z, 1})
			w := q[3]
			if math.Abs(w) < minW || math.IsNaN(w) {
				if policy == Strict {
					return nil, 0, fmt.Errorf("%w: point (%g, %g) of line %d",
						ErrDegenerateProjection, p.X, p.Y, i)
				}
				degenerate++
				if w < 0 {
					w = -minW
				} else {
					w = minW
				}
			}
			out[j] = vec.Vec2{X: q[0] / w, Y: q[1] / w}
		}
		res.Lines[i] = out
	}
	return res, degenerate, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
