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

// Command genpdf writes every example scene, after projection, to a PDF
// file for visual inspection.
package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/perspective"
	"seehuhn.de/go/perspective/testcases"
)

const outDir = "testdata/scenes"

// margin is added around drawings without a page size.
const margin = 10

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name

			doc, _, err := sc.Project(ctx)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(doc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(doc *perspective.Document, pdfPath string) error {
	ids := doc.LayerIDs()

	// Page size in points.  Drawings without a page size get a page
	// which fits their bounding box.
	w, h := doc.PageSize.X, doc.PageSize.Y
	var dx, dy float64
	if w <= 0 || h <= 0 {
		bbox, ok := doc.Bounds(ids)
		if !ok {
			return perspective.ErrNoGeometry
		}
		w = bbox.URx - bbox.LLx + 2*margin
		h = bbox.URy - bbox.LLy + 2*margin
		dx = margin - bbox.LLx
		dy = margin - bbox.LLy
	}
	paper := &pdf.Rectangle{
		URx: w,
		URy: h,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; drawings use top-left.
	// Apply Y-axis flip.
	page.Transform(matrix.Matrix{1, 0, 0, -1, dx, h - dy})

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.5)

	for _, id := range ids {
		l := doc.Layers[id]
		for cmd, pts := range perspective.ToPath(l.Lines).Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}
	page.Stroke()

	return page.Close()
}
