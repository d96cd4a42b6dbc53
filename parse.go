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

import "strconv"

// allowed lists the bytes which survive Sanitize.
var allowed = func() [256]bool {
	var t [256]bool
	for _, c := range []byte("0123456789.-+|, ") {
		t[c] = true
	}
	return t
}()

// Sanitize overwrites every byte of line which is not a digit or one of
// ". - + | ," with a space.  This removes labels, brackets and similar noise
// around the numbers.
func Sanitize(line []byte) {
	for i, c := range line {
		if !allowed[c] {
			line[i] = ' '
		}
	}
}

func isDelim(c byte) bool {
	return c == ' ' || c == '|' || c == ','
}

// nextToken skips delimiters starting at pos and returns the following
// token together with the position just after it.  The token is empty if
// the end of s is reached first.
func nextToken(s []byte, pos int) ([]byte, int) {
	for pos < len(s) && isDelim(s[pos]) {
		pos++
	}
	start := pos
	for pos < len(s) && !isDelim(s[pos]) {
		pos++
	}
	return s[start:pos], pos
}

// ParseLine extracts a coordinate pair from one line of text.
//
// The line is sanitized in place (see Sanitize) and then split at spaces,
// '|' and ','.  The first two tokens give x and y.  Each token must start
// with an optional sign followed by at least one digit; anything after the
// digits is ignored, so "12.7" yields 12.
//
// If the line has no tokens, ErrMissingX is returned.  If it has only one,
// the error is ErrMissingY.  Tokens without a leading integer give a
// *NumberError.
func ParseLine(line []byte) (x, y int, err error) {
	Sanitize(line)

	xTok, pos := nextToken(line, 0)
	if len(xTok) == 0 {
		return 0, 0, ErrMissingX
	}
	yTok, _ := nextToken(line, pos)
	if len(yTok) == 0 {
		return 0, 0, ErrMissingY
	}

	x, err = leadingInt(xTok, AxisX)
	if err != nil {
		return 0, 0, err
	}
	y, err = leadingInt(yTok, AxisY)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// leadingInt converts the longest prefix of tok of the form [+-]?[0-9]+.
func leadingInt(tok []byte, axis Axis) (int, error) {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	j := i
	for j < len(tok) && tok[j] >= '0' && tok[j] <= '9' {
		j++
	}
	if j == i {
		return 0, &NumberError{Axis: axis, Token: string(tok)}
	}

	v, err := strconv.Atoi(string(tok[:j]))
	if err != nil {
		return 0, &NumberError{Axis: axis, Token: string(tok), Err: err}
	}
	return v, nil
}
