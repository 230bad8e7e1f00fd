// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDumpIFDBasicEntries(t *testing.T) {
	c := qt.New(t)

	data := buildTIFF(LittleEndian, []tiffEntry{
		{Tag: 0x0100, Type: 3, Count: 1, Payload: shortPayload(binary.LittleEndian, 1920)},
		{Tag: 0x010F, Type: 2, Count: 6, Payload: asciiPayload("Canon")},
	})

	opts := NewOptions(bytes.NewReader(data))
	br := newByteReader(bytes.NewReader(data), opts.Logger)
	br.endian = LittleEndian
	br.baseOffset = 0

	w := newWalker(br, &opts)
	err := w.dumpIFD(8, "Image", EXIFDict(), false, true)
	c.Assert(err, qt.IsNil)

	width, ok := w.result[tagKey("Image", "ImageWidth")]
	c.Assert(ok, qt.IsTrue)
	ints, _ := width.Int64s()
	c.Assert(ints, qt.DeepEquals, []int64{1920})

	makeTag, ok := w.result[tagKey("Image", "Make")]
	c.Assert(ok, qt.IsTrue)
	s, _ := makeTag.Str()
	c.Assert(s, qt.Equals, "Canon")
}

func TestDumpIFDStopTag(t *testing.T) {
	c := qt.New(t)

	data := buildTIFF(LittleEndian, []tiffEntry{
		{Tag: 0x0100, Type: 3, Count: 1, Payload: shortPayload(binary.LittleEndian, 100)},
		{Tag: 0x0112, Type: 3, Count: 1, Payload: shortPayload(binary.LittleEndian, 1)}, // Orientation
		{Tag: 0x010F, Type: 2, Count: 6, Payload: asciiPayload("Canon")},
	})

	opts := NewOptions(bytes.NewReader(data))
	opts.StopTag = "Orientation"
	br := newByteReader(bytes.NewReader(data), opts.Logger)
	br.endian = LittleEndian

	w := newWalker(br, &opts)
	err := w.dumpIFD(8, "Image", EXIFDict(), false, true)
	c.Assert(err, qt.IsNil)

	_, hasWidth := w.result[tagKey("Image", "ImageWidth")]
	c.Assert(hasWidth, qt.IsTrue)
	_, hasOrientation := w.result[tagKey("Image", "Orientation")]
	c.Assert(hasOrientation, qt.IsTrue)
	_, hasMake := w.result[tagKey("Image", "Make")]
	c.Assert(hasMake, qt.IsFalse)
	c.Assert(w.stopped, qt.IsTrue)
}

func TestDumpIFDSelfReferentialChainStops(t *testing.T) {
	c := qt.New(t)

	// A single-entry IFD whose next_ifd points back at itself; the
	// walker must detect the cycle and stop rather than recursing
	// forever.
	var buf bytes.Buffer
	buf.WriteString("II")
	writeU16(&buf, binary.LittleEndian, 42)
	writeU32(&buf, binary.LittleEndian, 8)
	writeU16(&buf, binary.LittleEndian, 1)
	writeU16(&buf, binary.LittleEndian, 0x0100)
	writeU16(&buf, binary.LittleEndian, 3)
	writeU32(&buf, binary.LittleEndian, 1)
	buf.Write(shortPayload(binary.LittleEndian, 42))
	writeU32(&buf, binary.LittleEndian, 8) // next_ifd -> self

	opts := NewOptions(bytes.NewReader(buf.Bytes()))
	br := newByteReader(bytes.NewReader(buf.Bytes()), opts.Logger)
	br.endian = LittleEndian

	w := newWalker(br, &opts)
	err := w.dumpIFD(8, "Image", EXIFDict(), false, true)
	c.Assert(err, qt.IsNil)
	c.Assert(len(w.result), qt.Equals, 1)
}
