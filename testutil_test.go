// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"encoding/binary"
)

// tiffEntry is one raw IFD entry to embed via buildTIFF. Payload holds
// the entry's full value bytes; buildTIFF inlines it when it fits in
// 4 bytes and otherwise appends it after the IFD, patching in the
// offset.
type tiffEntry struct {
	Tag     uint16
	Type    uint16
	Count   uint32
	Payload []byte
}

// buildTIFF assembles a minimal single-IFD TIFF byte stream (no
// chained IFD) for exercising the IFD walker without a real image
// fixture.
func buildTIFF(endian Endian, entries []tiffEntry) []byte {
	bo := binary.ByteOrder(binary.LittleEndian)
	if endian == BigEndian {
		bo = binary.BigEndian
	}

	var buf bytes.Buffer
	if endian == LittleEndian {
		buf.WriteString("II")
	} else {
		buf.WriteString("MM")
	}
	writeU16(&buf, bo, 42)
	writeU32(&buf, bo, 8)

	ifdLen := 2 + 12*len(entries) + 4
	dataStart := 8 + ifdLen

	writeU16(&buf, bo, uint16(len(entries)))

	var dataBuf bytes.Buffer
	for _, e := range entries {
		writeU16(&buf, bo, e.Tag)
		writeU16(&buf, bo, e.Type)
		writeU32(&buf, bo, e.Count)
		if len(e.Payload) <= 4 {
			var inline [4]byte
			copy(inline[:], e.Payload)
			buf.Write(inline[:])
		} else {
			off := dataStart + dataBuf.Len()
			writeU32(&buf, bo, uint32(off))
			dataBuf.Write(e.Payload)
			if dataBuf.Len()%2 != 0 {
				dataBuf.WriteByte(0)
			}
		}
	}
	writeU32(&buf, bo, 0) // next_ifd

	buf.Write(dataBuf.Bytes())
	return buf.Bytes()
}

func writeU16(buf *bytes.Buffer, bo binary.ByteOrder, v uint16) {
	var b [2]byte
	bo.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeU32(buf *bytes.Buffer, bo binary.ByteOrder, v uint32) {
	var b [4]byte
	bo.PutUint32(b[:], v)
	buf.Write(b[:])
}

func asciiPayload(s string) []byte {
	return append([]byte(s), 0)
}

func shortPayload(bo binary.ByteOrder, vs ...uint16) []byte {
	buf := make([]byte, 2*len(vs))
	for i, v := range vs {
		bo.PutUint16(buf[i*2:i*2+2], v)
	}
	return buf
}

func longPayload(bo binary.ByteOrder, vs ...uint32) []byte {
	buf := make([]byte, 4*len(vs))
	for i, v := range vs {
		bo.PutUint32(buf[i*4:i*4+4], v)
	}
	return buf
}

func leByteOrder() binary.ByteOrder { return binary.LittleEndian }
func beByteOrder() binary.ByteOrder { return binary.BigEndian }
