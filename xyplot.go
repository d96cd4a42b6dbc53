// Package xyplot plots streams of coordinate pairs into a monochrome raster.
//
// Every input line is expected to contain two integers, X and Y, separated
// by spaces, '|' or ','.  Other text on the line is ignored, so that
// "x=12 | y=34" plots the pixel (12, 34).  Lines which cannot be parsed, or
// which name a pixel outside the raster, are reported and skipped.
//
// The finished raster can be written as PNG, BMP, TIFF or PDF.
package xyplot

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genref
