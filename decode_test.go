// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	qt "github.com/frankban/quicktest"
)

var ratioComparer = cmp.Comparer(func(x, y Ratio) bool {
	return x.Num() == y.Num() && x.Den() == y.Den()
})

func TestDecodeValuesRatio(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	writeU32(&buf, binary.BigEndian, 1)
	writeU32(&buf, binary.BigEndian, 3)

	br := newByteReader(bytes.NewReader(buf.Bytes()), noopLogger{})
	br.endian = BigEndian

	values, err := decodeValues(br, TypeRatio, 1, 0, &Options{})
	c.Assert(err, qt.IsNil)
	ratios, ok := values.([]Ratio)
	c.Assert(ok, qt.IsTrue)
	if diff := cmp.Diff([]Ratio{NewRatio(1, 3)}, ratios, ratioComparer); diff != "" {
		t.Errorf("ratio mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeValuesASCIITruncatesAtNUL(t *testing.T) {
	c := qt.New(t)

	data := []byte("Canon\x00garbage")
	br := newByteReader(bytes.NewReader(data), noopLogger{})
	values, err := decodeValues(br, TypeASCII, int64(len(data)), 0, &Options{})
	c.Assert(err, qt.IsNil)
	c.Assert(values, qt.Equals, "Canon")
}

func TestDecodeValuesShort(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	writeU16(&buf, binary.LittleEndian, 100)
	writeU16(&buf, binary.LittleEndian, 200)

	br := newByteReader(bytes.NewReader(buf.Bytes()), noopLogger{})
	br.endian = LittleEndian

	values, err := decodeValues(br, TypeShort, 2, 0, &Options{})
	c.Assert(err, qt.IsNil)
	c.Assert(values, qt.DeepEquals, []int64{100, 200})
}
