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

var rangeCases = []TestCase{
	{
		Name:   "corners",
		Inputs: []string{"0,0\n9,0\n0,9\n9,9\n"},
		Width:  10,
		Height: 10,
		Want:   pts(0, 0, 9, 0, 0, 9, 9, 9),
	},
	{
		Name:    "x_equals_width",
		Inputs:  []string{"10,0\n"},
		Width:   10,
		Height:  10,
		Skipped: 1,
	},
	{
		Name:    "y_equals_height",
		Inputs:  []string{"0,10\n"},
		Width:   10,
		Height:  10,
		Skipped: 1,
	},
	{
		Name:    "negative_x",
		Inputs:  []string{"-1,5\n"},
		Width:   10,
		Height:  10,
		Skipped: 1,
	},
	{
		Name:    "negative_y",
		Inputs:  []string{"5,-1\n"},
		Width:   10,
		Height:  10,
		Skipped: 1,
	},
	{
		Name:    "overflow",
		Inputs:  []string{"99999999999999999999999,1\n"},
		Width:   10,
		Height:  10,
		Skipped: 1,
	},
	{
		Name:    "wide",
		Inputs:  []string{"299,0\n300,0\n0,1\n"},
		Width:   300,
		Height:  2,
		Want:    pts(299, 0, 0, 1),
		Skipped: 1,
	},
}
