// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"testing"

	"github.com/rwcarlsen/goexif/exif"

	qt "github.com/frankban/quicktest"
)

// TestCrossValidateAgainstGoexif decodes the same synthetic JPEG with
// both this package and github.com/rwcarlsen/goexif, and checks that
// the two independent decoders agree on a sample of scalar tags. A
// divergence here means either decoder's IFD walk is wrong, not just
// this one's.
func TestCrossValidateAgainstGoexif(t *testing.T) {
	c := qt.New(t)

	tiff := buildTIFF(LittleEndian, []tiffEntry{
		{Tag: 0x010F, Type: 2, Count: 6, Payload: asciiPayload("Canon")},
		{Tag: 0x0110, Type: 2, Count: 8, Payload: asciiPayload("EOS 40D")},
		{Tag: 0x0112, Type: 3, Count: 1, Payload: shortPayload(leByteOrder(), 1)},
	})

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8})
	buf.Write([]byte{0xFF, 0xE1})
	segLen := 2 + 6 + len(tiff)
	buf.WriteByte(byte(segLen >> 8))
	buf.WriteByte(byte(segLen))
	buf.WriteString("Exif\x00\x00")
	buf.Write(tiff)
	buf.Write([]byte{0xFF, 0xD9}) // EOI, goexif needs a terminated stream

	data := buf.Bytes()

	opts := NewOptions(bytes.NewReader(data))
	got, err := ProcessFile(opts)
	c.Assert(err, qt.IsNil)

	want, err := exif.Decode(bytes.NewReader(data))
	c.Assert(err, qt.IsNil)

	wantMake, err := want.Get(exif.Make)
	c.Assert(err, qt.IsNil)
	wantMakeStr, err := wantMake.StringVal()
	c.Assert(err, qt.IsNil)

	gotMake, ok := got[tagKey("Image", "Make")]
	c.Assert(ok, qt.IsTrue)
	gotMakeStr, _ := gotMake.Str()
	c.Assert(gotMakeStr, qt.Equals, wantMakeStr)

	wantModel, err := want.Get(exif.Model)
	c.Assert(err, qt.IsNil)
	wantModelStr, err := wantModel.StringVal()
	c.Assert(err, qt.IsNil)

	gotModel, ok := got[tagKey("Image", "Model")]
	c.Assert(ok, qt.IsTrue)
	gotModelStr, _ := gotModel.Str()
	c.Assert(gotModelStr, qt.Equals, wantModelStr)
}
