// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package segio reads and writes segment sets as text: one segment per
// line, four integer coordinates in x1, y1, x2, y2 order, with any
// non-numeric characters as delimiters.  Paths ending in .gz are
// transparently (de)compressed.
package segio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/tsv"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/seg2d/segment"
	"github.com/klauspost/compress/gzip"
)

// parseSeg scans four integer tokens from line.  A '-' only starts a
// token when a digit follows, so it doubles as a delimiter.
func parseSeg(line []byte) (segment.Seg, error) {
	var coords [4]int16
	pos := 0
	n := len(line)
	for i := range coords {
		for pos < n {
			c := line[pos]
			if c >= '0' && c <= '9' {
				break
			}
			if c == '-' && pos+1 < n && line[pos+1] >= '0' && line[pos+1] <= '9' {
				break
			}
			pos++
		}
		if pos == n {
			return segment.Seg{}, errors.New("expected four coordinates per line")
		}
		start := pos
		if line[pos] == '-' {
			pos++
		}
		for pos < n && line[pos] >= '0' && line[pos] <= '9' {
			pos++
		}
		v, err := strconv.ParseInt(gunsafe.BytesToString(line[start:pos]), 10, 16)
		if err != nil {
			return segment.Seg{}, errors.E(err, "coordinate out of int16 range")
		}
		coords[i] = int16(v)
	}
	return segment.MakeSeg(coords[0], coords[1], coords[2], coords[3]), nil
}

// ReadSegmentsFrom parses segments from r until EOF.  Blank lines are
// skipped.
func ReadSegmentsFrom(r io.Reader) ([]segment.Seg, error) {
	scanner := bufio.NewScanner(r)
	var segs []segment.Seg
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if isBlank(line) {
			continue
		}
		seg, err := parseSeg(line)
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("line %d", lineNo))
		}
		segs = append(segs, seg)
	}
	return segs, scanner.Err()
}

func isBlank(line []byte) bool {
	for _, c := range line {
		if c > ' ' {
			return false
		}
	}
	return true
}

// ReadSegments is a wrapper for ReadSegmentsFrom that takes a path
// instead of an io.Reader.
func ReadSegments(path string) (segs []segment.Seg, err error) {
	ctx := vcontext.Background()
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return ReadSegmentsFrom(reader)
}

// WriteSegments writes segs to path, one tab-separated segment per
// line, gzip-compressed when the path calls for it.  ReadSegments
// round-trips the output.
func WriteSegments(path string, segs []segment.Seg) (err error) {
	ctx := vcontext.Background()
	var outfile file.File
	if outfile, err = file.Create(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := outfile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	w := io.Writer(outfile.Writer(ctx))
	var gz *gzip.Writer
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		gz = gzip.NewWriter(w)
		w = gz
	}
	tsvOut := tsv.NewWriter(w)
	for _, s := range segs {
		tsvOut.WriteInt64(int64(s.P1.X))
		tsvOut.WriteInt64(int64(s.P1.Y))
		tsvOut.WriteInt64(int64(s.P2.X))
		tsvOut.WriteInt64(int64(s.P2.Y))
		if err = tsvOut.EndLine(); err != nil {
			return
		}
	}
	if err = tsvOut.Flush(); err != nil {
		return
	}
	if gz != nil {
		err = gz.Close()
	}
	return
}
