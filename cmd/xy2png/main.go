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

// Command xy2png plots pairs of numbers into an image.
//
// Every input line should contain an X and a Y value, separated by spaces,
// '|' or ','.  Other text around the numbers is ignored.  Input is read
// from the files named on the command line, or from standard input if
// there are none; "-" also stands for standard input.
//
// Example:
//
//	seq 0 999 | awk '{ print $1, int(500+400*sin($1/50)) }' | xy2png -o sine.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/xyplot"
)

func main() {
	logger := log.New(os.Stderr, "xy2png: ", 0)

	cfg, inputs, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		logger.Print(err)
		os.Exit(2)
	}

	if len(inputs) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Print("reading coordinate pairs from the terminal, end input with Ctrl-D")
	}

	p, err := xyplot.NewPlotter(cfg, logger)
	if err != nil {
		logger.Print(err)
		os.Exit(2)
	}

	// After a fatal input error, the points read so far are still saved.
	runErr := p.Run(inputs, xyplot.OpenFile)
	if runErr != nil {
		logger.Print(runErr)
	}

	err = xyplot.WriteFile(cfg.Output, p.Raster(), cfg.Format)
	if err != nil {
		logger.Print(err)
		os.Exit(1)
	}

	if cfg.Verbose {
		s := p.Stats()
		logger.Printf("%d lines, %d points plotted, %d lines skipped, written to %s",
			s.Lines, s.Plotted, s.Skipped, cfg.Output)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

// parseArgs reads the command line flags.  It returns the plot settings and
// the list of inputs.  Usage information and flag errors are written to out.
func parseArgs(args []string, out io.Writer) (*xyplot.Config, []string, error) {
	cfg := xyplot.DefaultConfig()

	fs := flag.NewFlagSet("xy2png", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height in pixels")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "name of the output file")
	format := fs.String("format", "", "output format: png, bmp, tiff or pdf (default from the output file name)")
	fs.IntVar(&cfg.ChunkSize, "chunk", xyplot.ChunkSize, "number of bytes to read at a time")
	fs.IntVar(&cfg.MaxLineLength, "max-line", 0, "abort on input lines longer than this, 0 for no limit")
	fs.BoolVar(&cfg.Verbose, "v", false, "print every plotted point")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: xy2png [options] [file ...]\n\n")
		fmt.Fprintf(fs.Output(), "Plot X Y pairs, one per input line, into an image.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, nil, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ChunkSize <= 0 {
		return nil, nil, fmt.Errorf("invalid chunk size %d", cfg.ChunkSize)
	}
	if cfg.MaxLineLength < 0 {
		return nil, nil, fmt.Errorf("invalid maximum line length %d", cfg.MaxLineLength)
	}

	if *format != "" {
		f, err := xyplot.ParseFormat(*format)
		if err != nil {
			return nil, nil, err
		}
		cfg.Format = f
	} else {
		cfg.Format = xyplot.FormatFromPath(cfg.Output)
	}

	return cfg, fs.Args(), nil
}
