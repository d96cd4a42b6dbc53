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

package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/xyplot"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, inputs, err := parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	want := xyplot.DefaultConfig()
	want.ChunkSize = xyplot.ChunkSize
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("wrong config (-want +got):\n%s", d)
	}
	if len(inputs) != 0 {
		t.Errorf("unexpected inputs %q", inputs)
	}
}

func TestParseArgs(t *testing.T) {
	args := []string{"-width", "640", "-height", "480", "-o", "plot.pdf", "-v", "a.txt", "-", "b.txt"}
	cfg, inputs, err := parseArgs(args, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	want := &xyplot.Config{
		Width:     640,
		Height:    480,
		Output:    "plot.pdf",
		Format:    xyplot.PDF,
		ChunkSize: xyplot.ChunkSize,
		Verbose:   true,
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("wrong config (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"a.txt", "-", "b.txt"}, inputs, cmpopts.EquateEmpty()); d != "" {
		t.Errorf("wrong inputs (-want +got):\n%s", d)
	}
}

func TestParseArgsFormat(t *testing.T) {
	cfg, _, err := parseArgs([]string{"-o", "plot.png", "-format", "tiff"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != xyplot.TIFF {
		t.Errorf("got format %s, want tiff", cfg.Format)
	}
}

func TestParseArgsErrors(t *testing.T) {
	cases := [][]string{
		{"-width", "0"},
		{"-height", "-5"},
		{"-width", "wide"},
		{"-chunk", "0"},
		{"-max-line", "-1"},
		{"-format", "gif"},
		{"-unknown"},
	}
	for _, args := range cases {
		_, _, err := parseArgs(args, io.Discard)
		if err == nil {
			t.Errorf("%q: no error", strings.Join(args, " "))
		}
	}
}

func TestParseArgsHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	_, _, err := parseArgs([]string{"-h"}, buf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("got %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(buf.String(), "Usage: xy2png") {
		t.Errorf("no usage message: %q", buf.String())
	}
}
