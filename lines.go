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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ChunkSize is the default number of bytes requested from the input per read.
const ChunkSize = 666

// LineReader splits a byte stream into line-feed terminated lines of
// arbitrary length.  The input is read in chunks of fixed size; chunks
// which do not complete a line are collected until the line feed arrives.
//
// Data after the last line feed in the stream is discarded.
type LineReader struct {
	rd     *bufio.Reader
	maxLen int
	buf    bytes.Buffer
	lineNo int
	err    error
}

// NewLineReader returns a LineReader which reads from r.  If chunkSize is
// not positive, ChunkSize is used.  Lines longer than maxLen bytes (not
// counting the line feed) cause a *LineTooLongError; a maxLen of 0 means no
// limit.
func NewLineReader(r io.Reader, chunkSize, maxLen int) *LineReader {
	if chunkSize <= 0 {
		chunkSize = ChunkSize
	}
	return &LineReader{
		rd:     bufio.NewReaderSize(r, chunkSize),
		maxLen: maxLen,
	}
}

// Next returns the next line, without the terminating line feed.
// The returned slice is only valid until the next call to Next and
// may be modified by the caller.
//
// At the end of the input, Next returns io.EOF.  Errors are sticky:
// once Next has failed, all later calls return the same error.
func (lr *LineReader) Next() ([]byte, error) {
	if lr.err != nil {
		return nil, lr.err
	}

	lr.buf.Reset()
	for {
		chunk, err := lr.rd.ReadSlice('\n')
		switch {
		case err == nil:
			if err := lr.append(chunk[:len(chunk)-1]); err != nil {
				lr.err = err
				return nil, err
			}
			lr.lineNo++
			return lr.buf.Bytes(), nil

		case errors.Is(err, bufio.ErrBufferFull):
			if err := lr.append(chunk); err != nil {
				lr.err = err
				return nil, err
			}

		case err == io.EOF:
			// an unterminated last line is dropped
			lr.err = io.EOF
			return nil, io.EOF

		default:
			lr.err = fmt.Errorf("line %d: %w", lr.lineNo+1, err)
			return nil, lr.err
		}
	}
}

// Line returns the number of lines returned by Next so far.
func (lr *LineReader) Line() int {
	return lr.lineNo
}

// append adds a partial line to the buffer.  If the buffer cannot grow,
// a *LineTooLongError is returned and the buffer is left as it was.
func (lr *LineReader) append(chunk []byte) (err error) {
	if lr.maxLen > 0 && lr.buf.Len()+len(chunk) > lr.maxLen {
		return &LineTooLongError{Line: lr.lineNo + 1, Limit: lr.maxLen}
	}

	defer func() {
		if r := recover(); r != nil {
			if r != bytes.ErrTooLarge {
				panic(r)
			}
			err = &LineTooLongError{Line: lr.lineNo + 1, Err: bytes.ErrTooLarge}
		}
	}()
	lr.buf.Write(chunk)
	return nil
}
