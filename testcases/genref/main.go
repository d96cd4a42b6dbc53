// seehuhn.de/go/xyplot - plot streams of coordinate pairs
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

// Command genref plots all test cases and stores the resulting rasters
// as PNG and PDF files, for visual inspection.
// Run from the module root directory.
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/xyplot"
	"seehuhn.de/go/xyplot/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
		}
	}
}

func generate(tc testcases.TestCase, name string) error {
	cfg := xyplot.DefaultConfig()
	cfg.Width = tc.Width
	cfg.Height = tc.Height

	p, err := xyplot.NewPlotter(cfg, nil)
	if err != nil {
		return err
	}
	for i, in := range tc.Inputs {
		err := p.PlotStream(fmt.Sprintf("input%d", i), strings.NewReader(in))
		if err != nil {
			return err
		}
	}

	for _, f := range []xyplot.Format{xyplot.PNG, xyplot.PDF} {
		fname := filepath.Join(refDir, name+"."+f.String())
		if err := xyplot.WriteFile(fname, p.Raster(), f); err != nil {
			return err
		}
	}
	return nil
}
