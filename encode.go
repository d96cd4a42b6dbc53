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
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// Format selects the file format used to store a raster.
type Format int

// These are the supported output formats.
const (
	PNG Format = iota
	BMP
	TIFF
	PDF
)

var formatNames = [...]string{
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
	PDF:  "pdf",
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat converts a format name like "png" to a Format.
// The comparison is case-insensitive and "tif" is accepted for TIFF.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(name)
	if name == "tif" {
		return TIFF, nil
	}
	for f, fName := range formatNames {
		if name == fName {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("unknown image format %q", name)
}

// FormatFromPath guesses the output format from a file name extension.
// Unknown extensions give PNG.
func FormatFromPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)
	if err != nil {
		return PNG
	}
	return f
}

// Encode writes the raster to w.  Plotted pixels are white on a black
// background.
func Encode(w io.Writer, r *Raster, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, r.Bilevel())
	case BMP:
		return bmp.Encode(w, r.Gray())
	case TIFF:
		return tiff.Encode(w, r.Gray(), &tiff.Options{Compression: tiff.Deflate})
	case PDF:
		return encodePDF(w, r)
	default:
		return fmt.Errorf("unsupported image format %s", f)
	}
}

// encodePDF writes a one-page PDF file, one point per pixel.
// Every horizontal run of plotted pixels becomes a filled rectangle.
func encodePDF(w io.Writer, r *Raster) error {
	paper := &pdf.Rectangle{
		URx: float64(r.Width),
		URy: float64(r.Height),
	}
	// Hide any Close method, w is owned by the caller.
	page, err := document.WriteSinglePage(struct{ io.Writer }{w}, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(r.Width), float64(r.Height))
	page.Fill()

	// PDF origin is bottom-left, row 0 of the raster is at the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(r.Height)})
	page.SetFillColor(color.DeviceGray(1))

	hasRuns := false
	for y := range r.Height {
		row := r.Pix[y*r.Width : (y+1)*r.Width]
		x := 0
		for x < len(row) {
			if row[x] == 0 {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] != 0 {
				x++
			}
			page.Rectangle(float64(start), float64(y), float64(x-start), 1)
			hasRuns = true
		}
	}
	if hasRuns {
		page.Fill()
	}

	return page.Close()
}

// WriteFile stores the raster in the named file.
func WriteFile(path string, r *Raster, f Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(out, r, f)
}
