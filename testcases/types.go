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

package testcases

import "image"

// TestCase defines a single plotting test.
type TestCase struct {
	Name    string        // lowercase a-z, 0-9 and _ only
	Inputs  []string      // contents of the input sources, in order
	Width   int           // raster width in pixels
	Height  int           // raster height in pixels
	Want    []image.Point // plotted pixels, in row-major order
	Skipped int           // number of lines which must be rejected
}

// pts is a helper to build a list of points from x, y pairs.
func pts(xy ...int) []image.Point {
	res := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, image.Pt(xy[i], xy[i+1]))
	}
	return res
}
