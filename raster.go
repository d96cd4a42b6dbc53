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

package xyplot

import (
	"image"
	"image/color"
	"iter"
	"math"

	"seehuhn.de/go/geom/rect"
)

// HitValue is the byte stored for every pixel which has been plotted.
const HitValue = 255

// Raster is a monochrome pixel buffer.  Pix holds one byte per pixel in
// row-major order; a pixel is either 0 or HitValue.
//
// The size of a Raster is fixed at allocation time and len(Pix) is always
// Width*Height.  A Raster is not safe for concurrent use.
type Raster struct {
	Width, Height int
	Pix           []byte
}

// NewRaster allocates an empty raster of the given size.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return nil, &DimensionError{Width: width, Height: height}
	}
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}, nil
}

// Set marks the pixel at (x, y).  Coordinates outside the raster
// leave the buffer unchanged and return a *RangeError.
func (r *Raster) Set(x, y int) error {
	if x < 0 || x >= r.Width {
		return &RangeError{Axis: AxisX, Value: x, Limit: r.Width}
	}
	if y < 0 || y >= r.Height {
		return &RangeError{Axis: AxisY, Value: y, Limit: r.Height}
	}
	r.Pix[y*r.Width+x] = HitValue
	return nil
}

// IsSet reports whether the pixel at (x, y) has been plotted.
func (r *Raster) IsSet(x, y int) bool {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return false
	}
	return r.Pix[y*r.Width+x] != 0
}

// Hits iterates over all plotted pixels in row-major order.
func (r *Raster) Hits() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for i, v := range r.Pix {
			if v == 0 {
				continue
			}
			if !yield(image.Pt(i%r.Width, i/r.Width)) {
				return
			}
		}
	}
}

// Bounds returns the device space rectangle covered by the raster.
func (r *Raster) Bounds() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(r.Width),
		URy: float64(r.Height),
	}
}

// Gray returns a grayscale image which shares its pixel data with r.
func (r *Raster) Gray() *image.Gray {
	return &image.Gray{
		Pix:    r.Pix,
		Stride: r.Width,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}

// bilevelPalette maps index 0 to the background and index 1 to hits.
var bilevelPalette = color.Palette{color.Gray{Y: 0}, color.Gray{Y: HitValue}}

// Bilevel returns a copy of the raster as a two-color paletted image.
// The PNG encoder stores such images with one bit per pixel.
func (r *Raster) Bilevel() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, r.Width, r.Height), bilevelPalette)
	for i, v := range r.Pix {
		if v != 0 {
			img.Pix[i] = 1
		}
	}
	return img
}
