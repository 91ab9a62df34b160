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

// Command export writes the projected example scenes to JSON.
// Run from the module root directory.
package main

import (
	"context"
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/perspective"
	"seehuhn.de/go/perspective/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	ctx := context.Background()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			doc, res, err := sc.Project(ctx)
			if err != nil {
				panic(err)
			}
			out.Scenes = append(out.Scenes, toJSON(category, sc, doc, res))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name       string      `json:"name"`
	Width      float64     `json:"width,omitempty"`
	Height     float64     `json:"height,omitempty"`
	Focal      float64     `json:"focal"`
	Layers     []jsonLayer `json:"layers"`
	Degenerate int         `json:"degenerate,omitempty"`
}

type jsonLayer struct {
	ID        int           `json:"id"`
	Transform [16]float64   `json:"transform"` // row-major
	Lines     [][][]float64 `json:"lines"`
}

func toJSON(category string, sc testcases.Scene, doc *perspective.Document, res *perspective.Result) jsonScene {
	js := jsonScene{
		Name:   category + "_" + sc.Name,
		Width:  doc.PageSize.X,
		Height: doc.PageSize.Y,
	}
	if res.Frame != nil {
		js.Focal = res.Frame.Focal
	}
	for _, n := range res.Degenerate {
		js.Degenerate += n
	}

	for _, id := range doc.LayerIDs() {
		l := doc.Layers[id]
		jl := jsonLayer{
			ID:        id,
			Transform: l.Transform.Rows(),
		}
		for _, line := range l.Lines {
			pts := make([][]float64, len(line))
			for i, p := range line {
				pts[i] = []float64{p.X, p.Y}
			}
			jl.Lines = append(jl.Lines, pts)
		}
		js.Layers = append(js.Layers, jl)
	}
	return js
}
