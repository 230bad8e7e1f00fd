// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestLocateContainerTIFF(t *testing.T) {
	c := qt.New(t)
	data := buildTIFF(LittleEndian, []tiffEntry{
		{Tag: 0x0100, Type: 3, Count: 1, Payload: shortPayload(leByteOrder(), 10)},
	})
	loc, err := locateContainer(bytes.NewReader(data), noopLogger{})
	c.Assert(err, qt.IsNil)
	c.Assert(loc.offset, qt.Equals, int64(0))
	c.Assert(loc.endian, qt.Equals, LittleEndian)
}

func TestLocateContainerUnrecognized(t *testing.T) {
	c := qt.New(t)
	_, err := locateContainer(bytes.NewReader([]byte("not an image at all")), noopLogger{})
	c.Assert(err, qt.ErrorIs, ErrExifNotFound)
}

func TestLocateContainerJPEGNoExif(t *testing.T) {
	c := qt.New(t)
	// SOI immediately followed by SOS: no APP1 Exif segment present.
	data := []byte{0xFF, 0xD8, 0xFF, 0xDA, 0x00, 0x02}
	_, err := locateContainer(bytes.NewReader(data), noopLogger{})
	c.Assert(err, qt.ErrorIs, ErrInvalidExif)
}

func TestLocateContainerJPEGWithExif(t *testing.T) {
	c := qt.New(t)

	tiff := buildTIFF(LittleEndian, []tiffEntry{
		{Tag: 0x0100, Type: 3, Count: 1, Payload: shortPayload(leByteOrder(), 10)},
	})

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8})
	buf.Write([]byte{0xFF, 0xE1})
	segLen := 2 + 6 + len(tiff)
	buf.WriteByte(byte(segLen >> 8))
	buf.WriteByte(byte(segLen))
	buf.WriteString("Exif\x00\x00")
	buf.Write(tiff)
	buf.Write([]byte{0xFF, 0xDA, 0x00, 0x02})

	loc, err := locateContainer(bytes.NewReader(buf.Bytes()), noopLogger{})
	c.Assert(err, qt.IsNil)
	c.Assert(loc.endian, qt.Equals, LittleEndian)
	c.Assert(loc.offset, qt.Equals, int64(2+2+2+6))
}

func TestLocateContainerPNG(t *testing.T) {
	c := qt.New(t)

	tiff := buildTIFF(BigEndian, []tiffEntry{
		{Tag: 0x0100, Type: 3, Count: 1, Payload: shortPayload(beByteOrder(), 10)},
	})

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	writeChunk(&buf, "IHDR", make([]byte, 13))
	writeChunk(&buf, "eXIf", tiff)
	writeChunk(&buf, "IEND", nil)

	loc, err := locateContainer(bytes.NewReader(buf.Bytes()), noopLogger{})
	c.Assert(err, qt.IsNil)
	c.Assert(loc.endian, qt.Equals, BigEndian)
}

func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var lenBytes [4]byte
	beByteOrder().PutUint32(lenBytes[:], uint32(len(data)))
	buf.Write(lenBytes[:])
	buf.WriteString(typ)
	buf.Write(data)
	buf.Write([]byte{0, 0, 0, 0}) // CRC, unchecked by the locator
}
