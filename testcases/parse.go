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

var parseCases = []TestCase{
	{
		Name:   "comma",
		Inputs: []string{"12,34\n"},
		Width:  64,
		Height: 64,
		Want:   pts(12, 34),
	},
	{
		Name:   "space",
		Inputs: []string{"12 34\n"},
		Width:  64,
		Height: 64,
		Want:   pts(12, 34),
	},
	{
		Name:   "pipe",
		Inputs: []string{"12|34\n"},
		Width:  64,
		Height: 64,
		Want:   pts(12, 34),
	},
	{
		Name:   "labels",
		Inputs: []string{"x=12 | y=34\n"},
		Width:  64,
		Height: 64,
		Want:   pts(12, 34),
	},
	{
		Name:   "noise",
		Inputs: []string{"val:7 # 8 !!\n"},
		Width:  10,
		Height: 10,
		Want:   pts(7, 8),
	},
	{
		Name:   "brackets",
		Inputs: []string{"[3] (4)\n"},
		Width:  10,
		Height: 10,
		Want:   pts(3, 4),
	},
	{
		Name:   "decimals",
		Inputs: []string{"5.9,6.2\n"},
		Width:  10,
		Height: 10,
		Want:   pts(5, 6),
	},
	{
		Name:   "plus_sign",
		Inputs: []string{"+3 +4\n"},
		Width:  10,
		Height: 10,
		Want:   pts(3, 4),
	},
	{
		Name:   "extra_tokens",
		Inputs: []string{"1 2 3\n"},
		Width:  10,
		Height: 10,
		Want:   pts(1, 2),
	},
	{
		Name:   "crlf",
		Inputs: []string{"1,2\r\n"},
		Width:  10,
		Height: 10,
		Want:   pts(1, 2),
	},
	{
		Name:   "leading_delimiters",
		Inputs: []string{",,| 4 ,, 5\n"},
		Width:  10,
		Height: 10,
		Want:   pts(4, 5),
	},
	{
		// 'e' is not allowed, so the exponent becomes the Y value
		Name:   "exponent",
		Inputs: []string{"1e3\n"},
		Width:  10,
		Height: 10,
		Want:   pts(1, 3),
	},
	{
		Name:    "missing_y",
		Inputs:  []string{"42\n"},
		Width:   64,
		Height:  64,
		Skipped: 1,
	},
	{
		Name:    "empty",
		Inputs:  []string{"\n"},
		Width:   10,
		Height:  10,
		Skipped: 1,
	},
	{
		Name:    "letters_only",
		Inputs:  []string{"hello world\n"},
		Width:   10,
		Height:  10,
		Skipped: 1,
	},
	{
		Name:    "dot_token",
		Inputs:  []string{". 5\n"},
		Width:   10,
		Height:  10,
		Skipped: 1,
	},
	{
		Name:    "sign_token",
		Inputs:  []string{"- 5\n"},
		Width:   10,
		Height:  10,
		Skipped: 1,
	},
}
