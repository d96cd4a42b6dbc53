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

import (
	"image"
	"strconv"
	"strings"
)

var streamCases = []TestCase{
	{
		Name:   "two_sources",
		Inputs: []string{"1,1\n", "2,2\n"},
		Width:  10,
		Height: 10,
		Want:   pts(1, 1, 2, 2),
	},
	{
		Name:   "no_trailing_newline",
		Inputs: []string{"3,3"},
		Width:  10,
		Height: 10,
	},
	{
		Name:   "unterminated_last_line",
		Inputs: []string{"1,1\n3,3"},
		Width:  10,
		Height: 10,
		Want:   pts(1, 1),
	},
	{
		// lines never continue into the next source
		Name:    "split_between_sources",
		Inputs:  []string{"1,", "1\n"},
		Width:   10,
		Height:  10,
		Skipped: 1,
	},
	{
		Name:   "long_line",
		Inputs: []string{strings.Repeat("a", 10000) + "5,5\n"},
		Width:  10,
		Height: 10,
		Want:   pts(5, 5),
	},
	{
		Name:   "long_gap",
		Inputs: []string{strings.Repeat(" ", 2000) + "5" + strings.Repeat(" ", 2000) + "6\n2,1\n"},
		Width:  10,
		Height: 10,
		Want:   pts(2, 1, 5, 6),
	},
	{
		Name:   "repeated",
		Inputs: []string{"4,4\n4,4\n4,4\n"},
		Width:  10,
		Height: 10,
		Want:   pts(4, 4),
	},
	{
		Name:    "mixed",
		Inputs:  []string{"1,1\nbad\n2,2\n100,100\n"},
		Width:   10,
		Height:  10,
		Want:    pts(1, 1, 2, 2),
		Skipped: 2,
	},
	{
		Name:    "blank_lines",
		Inputs:  []string{"\n\n7,7\n\n"},
		Width:   10,
		Height:  10,
		Want:    pts(7, 7),
		Skipped: 3,
	},
	{
		Name:   "diagonal",
		Inputs: []string{diagonal(32)},
		Width:  32,
		Height: 32,
		Want:   diagonalPoints(32),
	},
}

// diagonal returns n lines "i i" for i = 0, ..., n-1.
func diagonal(n int) string {
	var b strings.Builder
	for i := range n {
		b.WriteString(strings.Repeat(" ", i%7))
		b.WriteString(strconv.Itoa(i))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('\n')
	}
	return b.String()
}

func diagonalPoints(n int) []image.Point {
	res := make([]image.Point, n)
	for i := range n {
		res[i] = image.Pt(i, i)
	}
	return res
}
