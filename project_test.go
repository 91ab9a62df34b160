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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// squareDoc returns a document with a 400×400 page, and a square of the
// given side length, centred on the page, on layer 1.
func squareDoc(t *testing.T, side float64) *Document {
	t.Helper()
	doc := NewDocument()
	doc.PageSize = vec.Vec2{X: 400, Y: 400}
	a, b := 200-side/2, 200+side/2
	sq := Polyline{{X: a, Y: a}, {X: b, Y: a}, {X: b, Y: b}, {X: a, Y: b}, {X: a, Y: a}}
	if _, err := doc.AddLayer(1, sq); err != nil {
		t.Fatal(err)
	}
	return doc
}

func width(line Polyline) float64 {
	xMin, xMax := math.Inf(1), math.Inf(-1)
	for _, p := range line {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
	}
	return xMax - xMin
}

func TestForeshortening(t *testing.T) {
	ctx := context.Background()
	cm := DefaultDepthSpacing
	opt := Options{Camera: Camera{HFOV: 90}}

	ref := squareDoc(t, 100)
	res, err := ref.Project(ctx, opt)
	if err != nil {
		t.Fatal(err)
	}
	focal := res.Frame.Focal
	if math.Abs(focal-200) > 1e-9 {
		t.Fatalf("focal %g, want 200", focal)
	}
	refWidth := width(ref.Layers[1].Lines[0])
	if math.Abs(refWidth-100) > 1e-9 {
		t.Errorf("reference width %g, want 100", refWidth)
	}

	cases := []struct {
		name  string
		dz    float64
		ratio float64
	}{
		{"away", -cm, focal / (focal + cm)},
		{"towards", cm, focal / (focal - cm)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := squareDoc(t, 100)
			err := doc.Run([]int{1}, TranslateLayer{Offset: mgl64.Vec3{0, 0, tc.dz}})
			if err != nil {
				t.Fatal(err)
			}
			if _, err := doc.Project(ctx, opt); err != nil {
				t.Fatal(err)
			}
			line := doc.Layers[1].Lines[0]
			got := width(line) / refWidth
			if math.Abs(got-tc.ratio) > 1e-9 {
				t.Errorf("width ratio %g, want %g", got, tc.ratio)
			}

			// the square stays centred on the page
			c := line[0].Add(line[2]).Mul(0.5)
			if math.Abs(c.X-200) > 1e-9 || math.Abs(c.Y-200) > 1e-9 {
				t.Errorf("square centred at %v", c)
			}
		})
	}
}

func TestProjectIdentity(t *testing.T) {
	// A single untransformed layer lies at focal distance and is not changed.
	for _, hfov := range []float64{10, 45, 120} {
		doc := squareDoc(t, 150)
		doc.Layers[1].Lines = append(doc.Layers[1].Lines, Polyline{{X: 3, Y: 7}, {X: 390, Y: 12}})
		orig := slices.Clone(doc.Layers[1].Lines)

		_, err := doc.Project(context.Background(), Options{Camera: Camera{HFOV: hfov}})
		if err != nil {
			t.Fatal(err)
		}
		for i, line := range doc.Layers[1].Lines {
			for j, p := range line {
				q := orig[i][j]
				if math.Abs(p.X-q.X) > 1e-9 || math.Abs(p.Y-q.Y) > 1e-9 {
					t.Errorf("hfov %g: point %v moved to %v", hfov, q, p)
				}
			}
		}
	}
}

func TestProjectPreservesStructure(t *testing.T) {
	doc := NewDocument()
	doc.PageSize = vec.Vec2{X: 800, Y: 600}
	doc.AddLayer(1, Polyline{{X: 0, Y: 0}, {X: 800, Y: 600}}, Polyline{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}})
	doc.AddLayer(2, Polyline{{X: 400, Y: 300}, {X: 500, Y: 300}})
	doc.AddLayer(3, Polyline{{X: 1, Y: 2}, {X: 3, Y: 4}})
	doc.Run([]int{2}, RotateLayer{Axis: AxisY, Angle: 30})
	transform := doc.Layers[2].Transform
	untouched := doc.Layers[3]

	res, err := doc.Project(context.Background(), Options{
		Camera: Camera{HFOV: 60, Tilt: 10, Pan: 20},
		Layers: []int{2, 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Projected, []int{1, 2}) {
		t.Errorf("projected layers %v", res.Projected)
	}
	if res.Frame.MaxZ != DefaultDepthSpacing {
		t.Errorf("max z %g, want %g", res.Frame.MaxZ, DefaultDepthSpacing)
	}

	if n := len(doc.Layers[1].Lines); n != 2 {
		t.Fatalf("layer 1 has %d lines", n)
	}
	if len(doc.Layers[1].Lines[0]) != 2 || len(doc.Layers[1].Lines[1]) != 3 {
		t.Error("point counts changed")
	}
	if doc.Layers[2].Transform != transform {
		t.Error("projection changed the layer transform")
	}
	if doc.Layers[3] != untouched {
		t.Error("unselected layer was modified")
	}
}

func TestProjectMatchesFrame(t *testing.T) {
	doc := NewDocument()
	doc.PageSize = vec.Vec2{X: 800, Y: 600}
	p := vec.Vec2{X: 123, Y: 456}
	doc.AddLayer(2, Polyline{p})
	doc.Run([]int{2}, ScaleLayer{Factors: mgl64.Vec3{2, 1, 1}})

	res, err := doc.Project(context.Background(), Options{Camera: Camera{HFOV: 70, Pan: 15}})
	if err != nil {
		t.Fatal(err)
	}

	f := res.Frame
	q := f.Camera.Apply(doc.Layers[2].Transform.Apply(f.ToWorld(p, LayerZ(2, doc.DepthSpacing))))
	want := f.ToPage(q)
	got := doc.Layers[2].Lines[0][0]
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Tilt and pan together: the rotations are applied tilt after pan, both
// around the aiming point.
func TestProjectTiltAndPan(t *testing.T) {
	doc := NewDocument()
	doc.PageSize = vec.Vec2{X: 800, Y: 600}
	if err := doc.SetDepthSpacing(100); err != nil {
		t.Fatal(err)
	}
	doc.AddLayer(1, Polyline{{X: 500, Y: 200}, {X: 700, Y: 100}})
	doc.AddLayer(2, Polyline{{X: 100, Y: 450}, {X: 400, Y: 300}})

	_, err := doc.Project(context.Background(), Options{
		Camera: Camera{HFOV: 45, Tilt: 30, Pan: 40},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := map[int]Polyline{
		1: {{X: 511.337512927775, Y: 224.629928537253}, {X: 723.543261266756, Y: 181.504912490226}},
		2: {{X: 193.417195921481, Y: 341.510750195700}, {X: 368.411128677637, Y: 318.823075442211}},
	}
	for id, line := range want {
		got := doc.Layers[id].Lines[0]
		for i, p := range line {
			if math.Abs(got[i].X-p.X) > 1e-6 || math.Abs(got[i].Y-p.Y) > 1e-6 {
				t.Errorf("layer %d, point %d: got %v, want %v", id, i, got[i], p)
			}
		}
	}
}

// degenerateDoc returns a document where every point of layer 1 lies in
// the plane of the camera.
func degenerateDoc(t *testing.T) *Document {
	t.Helper()
	doc := squareDoc(t, 100)
	// with hfov=90° on a 400 wide page, the camera is 200 in front of layer 1
	err := doc.Run([]int{1}, TranslateLayer{Offset: mgl64.Vec3{0, 0, 200}})
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestDegenerateClamp(t *testing.T) {
	var outputs [][]Polyline
	for range 2 {
		doc := degenerateDoc(t)
		var buf bytes.Buffer
		res, err := doc.Project(context.Background(), Options{
			Camera: Camera{HFOV: 90},
			Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		})
		if err != nil {
			t.Fatal(err)
		}
		if res.Degenerate[1] != 5 {
			t.Errorf("%d degenerate points, want 5", res.Degenerate[1])
		}
		if !strings.Contains(buf.String(), "camera plane") {
			t.Errorf("no warning logged: %q", buf.String())
		}
		for _, p := range doc.Layers[1].Lines[0] {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				t.Errorf("non-finite output %v", p)
			}
		}
		outputs = append(outputs, doc.Layers[1].Lines)
	}
	if !slices.Equal(outputs[0][0], outputs[1][0]) {
		t.Error("repeated projections differ")
	}
}

func TestDegenerateStrict(t *testing.T) {
	doc := degenerateDoc(t)
	orig := doc.Layers[1]
	_, err := doc.Project(context.Background(), Options{
		Camera: Camera{HFOV: 90},
		Policy: Strict,
	})
	if !errors.Is(err, ErrDegenerateProjection) {
		t.Fatalf("expected ErrDegenerateProjection, got %v", err)
	}
	if doc.Layers[1] != orig {
		t.Error("document was modified")
	}
}

func TestProjectNoGeometry(t *testing.T) {
	doc := NewDocument()
	doc.AddLayer(1)
	doc.AddLayer(2, Polyline{{X: 5, Y: 5}})
	orig := doc.Layers[2]

	var buf bytes.Buffer
	res, err := doc.Project(context.Background(), Options{
		Camera: DefaultCamera(),
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(res.Skipped, []int{1, 2}) || res.Projected != nil {
		t.Errorf("skipped %v, projected %v", res.Skipped, res.Projected)
	}
	if doc.Layers[2] != orig {
		t.Error("document was modified")
	}
	if !strings.Contains(buf.String(), "cannot compute bounds") {
		t.Errorf("no warning logged: %q", buf.String())
	}
}

// A page with a width but no height is still used for the world origin.
func TestProjectPageWidthOnly(t *testing.T) {
	doc := NewDocument()
	doc.PageSize = vec.Vec2{X: 400}
	doc.AddLayer(1, Polyline{{X: 10, Y: 10}, {X: 30, Y: 50}})

	res, err := doc.Project(context.Background(), Options{Camera: Camera{HFOV: 90}})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Frame.Focal-200) > 1e-9 {
		t.Errorf("focal %g, want 200", res.Frame.Focal)
	}
	want := Scale(1, -1, 1).Mul(Translate(-200, 0, 0))
	if !res.Frame.PageToWorld.ApproxEqual(want, 1e-9) {
		t.Errorf("PageToWorld =\n%s", res.Frame.PageToWorld)
	}
}

func TestProjectFromBounds(t *testing.T) {
	doc := NewDocument()
	sq := Polyline{{X: 1000, Y: 2000}, {X: 1400, Y: 2000}, {X: 1400, Y: 2300}, {X: 1000, Y: 2300}, {X: 1000, Y: 2000}}
	doc.AddLayer(1, sq)

	res, err := doc.Project(context.Background(), Options{Camera: Camera{HFOV: 90}})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Frame.Focal-200) > 1e-9 {
		t.Errorf("focal %g, want 200", res.Frame.Focal)
	}
	for i, p := range doc.Layers[1].Lines[0] {
		if math.Abs(p.X-sq[i].X) > 1e-9 || math.Abs(p.Y-sq[i].Y) > 1e-9 {
			t.Errorf("point %v moved to %v", sq[i], p)
		}
	}
}

func TestProjectErrors(t *testing.T) {
	ctx := context.Background()

	doc := squareDoc(t, 10)
	if _, err := doc.Project(ctx, Options{Camera: DefaultCamera(), Layers: []int{1, 7}}); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("missing layer: got %v", err)
	}
	if _, err := doc.Project(ctx, Options{Camera: Camera{HFOV: 0}}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero hfov: got %v", err)
	}
	if _, err := doc.Project(ctx, Options{Camera: DefaultCamera(), Policy: 9}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("bad policy: got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	orig := doc.Layers[1]
	if _, err := doc.Project(cancelled, Options{Camera: DefaultCamera()}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context: got %v", err)
	}
	if doc.Layers[1] != orig {
		t.Error("document was modified")
	}

	bad := squareDoc(t, 10)
	bad.Layers[1].Lines[0][2].X = math.NaN()
	for _, policy := range []DegeneratePolicy{ClampW, Strict} {
		if _, err := bad.Project(ctx, Options{Camera: DefaultCamera(), Policy: policy}); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("NaN point, policy %d: got %v", policy, err)
		}
	}

	res, err := NewDocument().Project(ctx, Options{Camera: DefaultCamera()})
	if err != nil || len(res.Projected) != 0 {
		t.Errorf("empty document: %v, %v", res, err)
	}
}

func BenchmarkProject(b *testing.B) {
	doc := NewDocument()
	doc.PageSize = vec.Vec2{X: 800, Y: 600}
	for id := 1; id <= 8; id++ {
		for i := range 100 {
			line := make(Polyline, 100)
			for j := range line {
				line[j] = vec.Vec2{X: float64(8 * j), Y: float64(6 * i)}
			}
			doc.AddLayer(id, line)
		}
	}
	opt := Options{Camera: Camera{HFOV: 60, Tilt: 20, Pan: 10}}
	frame, err := NewFrame(mustPage(b, doc), doc.DepthSpacing, 8, opt.Camera)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		for id := 1; id <= 8; id++ {
			_, _, err := ProjectLayer(doc.Layers[id], LayerZ(id, doc.DepthSpacing), frame, ClampW)
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func mustPage(b *testing.B, doc *Document) rect.Rect {
	b.Helper()
	page, err := doc.pageRect(doc.LayerIDs())
	if err != nil {
		b.Fatal(err)
	}
	return page
}
