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
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMissingX is returned for lines which contain no numeric token.
	ErrMissingX = errors.New("could not parse X value")

	// ErrMissingY is returned for lines which contain only one numeric token.
	ErrMissingY = errors.New("could not parse Y value")
)

// Axis identifies one of the two coordinates.
type Axis byte

const (
	AxisX Axis = 'X'
	AxisY Axis = 'Y'
)

func (a Axis) String() string {
	return string(rune(a))
}

// DimensionError indicates that a raster cannot have the requested size.
type DimensionError struct {
	Width, Height int
}

func (err *DimensionError) Error() string {
	return fmt.Sprintf("invalid raster size %dx%d", err.Width, err.Height)
}

// RangeError indicates a coordinate outside the raster.
type RangeError struct {
	Axis  Axis
	Value int
	Limit int // the coordinate must be less than Limit
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("%s value %d out of range [0, %d)", err.Axis, err.Value, err.Limit)
}

// NumberError indicates a token which does not start with an integer.
type NumberError struct {
	Axis  Axis
	Token string
	Err   error
}

func (err *NumberError) Error() string {
	msg := fmt.Sprintf("invalid %s value %q", err.Axis, err.Token)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// LineError records a recoverable problem with a single input line.
// The line is skipped and processing continues.
type LineError struct {
	Source string
	Line   int // 1-based
	Err    error
}

func (err *LineError) Error() string {
	return err.Source + ":" + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *LineError) Unwrap() error {
	return err.Err
}

// LineTooLongError is returned when a line cannot be buffered, either because
// it exceeds the configured maximum or because memory ran out.  This error is
// fatal: the caller should stop reading and keep the raster as it is.
type LineTooLongError struct {
	Line  int // 1-based
	Limit int // 0 if the limit was imposed by the runtime
	Err   error
}

func (err *LineTooLongError) Error() string {
	var msg string
	if err.Limit > 0 {
		msg = fmt.Sprintf("line %d longer than %d bytes", err.Line, err.Limit)
	} else {
		msg = fmt.Sprintf("line %d too long", err.Line)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *LineTooLongError) Unwrap() error {
	return err.Err
}

// SourceError indicates that an input source could not be opened or read.
type SourceError struct {
	Name string
	Err  error
}

func (err *SourceError) Error() string {
	return "source " + strconv.Quote(err.Name) + ": " + err.Err.Error()
}

func (err *SourceError) Unwrap() error {
	return err.Err
}
