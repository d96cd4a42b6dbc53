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
	"io"
	"log"
)

// Config holds the settings for a plot.
type Config struct {
	// Width and Height give the raster size in pixels.
	Width, Height int

	// Output is the name of the image file to write.
	Output string

	// Format is the file format of Output.
	Format Format

	// ChunkSize is the number of bytes read from an input at a time.
	// Zero means ChunkSize.
	ChunkSize int

	// MaxLineLength limits the length of input lines.  Longer lines
	// abort processing.  Zero means no limit.
	MaxLineLength int

	// Verbose enables logging of every plotted point.
	Verbose bool
}

// DefaultConfig returns the settings of the xy2png command without any
// flags.
func DefaultConfig() *Config {
	return &Config{
		Width:  1000,
		Height: 1000,
		Output: "output.png",
		Format: PNG,
	}
}

// Stats counts what happened while plotting.
type Stats struct {
	Lines         int // complete lines seen
	Plotted       int // lines which set a pixel
	Skipped       int // lines rejected by the parser or the range check
	Sources       int // inputs read to the end
	FailedSources int // inputs which could not be opened or read
}

// Plotter reads coordinate pairs and plots them into a Raster.
// Problems with individual lines or inputs are logged and skipped.
//
// A Plotter is not safe for concurrent use.
type Plotter struct {
	cfg    Config
	raster *Raster
	log    *log.Logger
	stats  Stats
}

// NewPlotter allocates the raster described by cfg.  Diagnostics are
// written to logger; if logger is nil, they are discarded.
func NewPlotter(cfg *Config, logger *log.Logger) (*Plotter, error) {
	r, err := NewRaster(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Plotter{
		cfg:    *cfg,
		raster: r,
		log:    logger,
	}, nil
}

// Raster returns the raster the plotter draws into.
func (p *Plotter) Raster() *Raster {
	return p.raster
}

// Stats returns the counters accumulated so far.
func (p *Plotter) Stats() Stats {
	return p.stats
}

// PlotLine parses a single line and sets the corresponding pixel.
// The contents of line are overwritten during parsing.
//
// If no pixel is set, the returned error explains why.  The raster is
// unchanged in this case.
func (p *Plotter) PlotLine(line []byte) error {
	p.stats.Lines++

	x, y, err := ParseLine(line)
	if err == nil {
		err = p.raster.Set(x, y)
	}
	if err != nil {
		p.stats.Skipped++
		return err
	}

	p.stats.Plotted++
	if p.cfg.Verbose {
		p.log.Printf("%d,%d", x, y)
	}
	return nil
}

// PlotStream plots every complete line of r.  The name is used in
// diagnostics.  Errors for individual lines are logged as *LineError and do
// not stop processing.
//
// The returned error is a *SourceError.  If it wraps a *LineTooLongError,
// see IsFatal, the input could not be buffered.  Otherwise reading from r
// failed.
func (p *Plotter) PlotStream(name string, r io.Reader) error {
	lr := NewLineReader(r, p.cfg.ChunkSize, p.cfg.MaxLineLength)
	for {
		line, err := lr.Next()
		if err == io.EOF {
			p.stats.Sources++
			return nil
		} else if err != nil {
			p.stats.FailedSources++
			return &SourceError{Name: name, Err: err}
		}

		err = p.PlotLine(line)
		if err != nil {
			p.log.Print(&LineError{Source: name, Line: lr.Line(), Err: err})
		}
	}
}

// Run plots all named inputs, in order.  Inputs are opened using open;
// an empty list means standard input.
//
// Inputs which cannot be opened or read are logged and skipped.  Run only
// returns an error if IsFatal reports true for it; the raster then holds
// everything plotted before the failure.
func (p *Plotter) Run(names []string, open Opener) error {
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		rc, err := open(name)
		if err != nil {
			p.stats.FailedSources++
			p.log.Print(&SourceError{Name: name, Err: err})
			continue
		}

		err = p.PlotStream(name, rc)
		cerr := rc.Close()
		if IsFatal(err) {
			return err
		} else if err != nil {
			p.log.Print(err)
		} else if cerr != nil {
			p.log.Print(&SourceError{Name: name, Err: cerr})
		}
	}
	return nil
}

// IsFatal reports whether err means that plotting must stop.
func IsFatal(err error) bool {
	var tooLong *LineTooLongError
	return errors.As(err, &tooLong)
}
