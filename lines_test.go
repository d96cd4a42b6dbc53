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
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// readAll collects all lines from lr.
func readAll(lr *LineReader) ([]string, error) {
	var lines []string
	for {
		line, err := lr.Next()
		if err == io.EOF {
			return lines, nil
		} else if err != nil {
			return lines, err
		}
		lines = append(lines, string(line))
	}
}

func TestLineReader(t *testing.T) {
	long := strings.Repeat("0123456789", 1000)
	inputs := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\nb", []string{"a"}},
		{"no newline", nil},
		{"\n\n\n", []string{"", "", ""}},
		{long + "\n", []string{long}},
		{long + "\nx\n" + long, []string{long, "x"}},
		{strings.Repeat("y", ChunkSize-1) + "\n", []string{strings.Repeat("y", ChunkSize-1)}},
		{strings.Repeat("y", ChunkSize) + "\n", []string{strings.Repeat("y", ChunkSize)}},
		{strings.Repeat("y", ChunkSize+1) + "\n", []string{strings.Repeat("y", ChunkSize+1)}},
	}

	readers := map[string]func(io.Reader) io.Reader{
		"plain":   func(r io.Reader) io.Reader { return r },
		"onebyte": iotest.OneByteReader,
		"half":    iotest.HalfReader,
		"dataerr": iotest.DataErrReader,
	}

	for i, c := range inputs {
		for rName, wrap := range readers {
			for _, chunkSize := range []int{0, 16, 31} {
				name := fmt.Sprintf("%d_%s_%d", i, rName, chunkSize)
				t.Run(name, func(t *testing.T) {
					lr := NewLineReader(wrap(strings.NewReader(c.in)), chunkSize, 0)
					got, err := readAll(lr)
					if err != nil {
						t.Fatal(err)
					}
					if d := cmp.Diff(c.want, got, cmpopts.EquateEmpty()); d != "" {
						t.Errorf("wrong lines (-want +got):\n%s", d)
					}
					if lr.Line() != len(c.want) {
						t.Errorf("Line() = %d, want %d", lr.Line(), len(c.want))
					}
				})
			}
		}
	}
}

func TestLineReaderSticky(t *testing.T) {
	lr := NewLineReader(strings.NewReader("1\n"), 0, 0)
	if _, err := lr.Next(); err != nil {
		t.Fatal(err)
	}
	for range 3 {
		if _, err := lr.Next(); err != io.EOF {
			t.Fatalf("got %v, want io.EOF", err)
		}
	}
}

func TestLineReaderMaxLen(t *testing.T) {
	in := "12345\n" + "123456\n" + "1\n"
	lr := NewLineReader(strings.NewReader(in), 16, 5)

	line, err := lr.Next()
	if err != nil || string(line) != "12345" {
		t.Fatalf("got %q, %v", line, err)
	}

	_, err = lr.Next()
	var tooLong *LineTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("got %v, want *LineTooLongError", err)
	}
	if tooLong.Line != 2 || tooLong.Limit != 5 {
		t.Errorf("wrong error details %+v", tooLong)
	}
	if !IsFatal(err) {
		t.Error("line length error is not fatal")
	}

	// the reader does not recover
	_, err2 := lr.Next()
	if err2 != err {
		t.Errorf("got %v, want %v", err2, err)
	}
}

func TestLineReaderLongMaxLen(t *testing.T) {
	// the limit is hit in the middle of a line spanning several chunks
	in := strings.Repeat("z", 40) + "\n"
	lr := NewLineReader(strings.NewReader(in), 16, 35)

	_, err := lr.Next()
	var tooLong *LineTooLongError
	if !errors.As(err, &tooLong) || tooLong.Line != 1 {
		t.Errorf("got %v, want *LineTooLongError for line 1", err)
	}
}

func TestLineReaderReadError(t *testing.T) {
	errBroken := errors.New("broken")
	r := io.MultiReader(strings.NewReader("a\nb"), iotest.ErrReader(errBroken))
	lr := NewLineReader(r, 0, 0)

	got, err := readAll(lr)
	if !errors.Is(err, errBroken) {
		t.Errorf("got %v, want %v", err, errBroken)
	}
	if IsFatal(err) {
		t.Error("read error reported as fatal")
	}
	if d := cmp.Diff([]string{"a"}, got); d != "" {
		t.Errorf("wrong lines (-want +got):\n%s", d)
	}
}
