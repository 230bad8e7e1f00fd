// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import "encoding/binary"

// extractThumbnail is C8: produce a standalone thumbnail image from
// whichever of the two forms the Thumbnail IFD declares. A JPEG
// thumbnail is just a byte range lifted verbatim; an uncompressed TIFF
// thumbnail must be reconstructed as a self-contained TIFF file since
// its strip offsets are relative to the parent file.
func (w *walker) extractThumbnail() []byte {
	if off, ok := w.result[tagKey("Thumbnail", "JPEGInterchangeFormat")]; ok {
		if ln, ok2 := w.result[tagKey("Thumbnail", "JPEGInterchangeFormatLength")]; ok2 {
			return w.extractJPEGThumbnail(off, ln)
		}
	}
	if comp, ok := w.result[tagKey("Thumbnail", "Compression")]; ok && comp.Printable == "Uncompressed TIFF" {
		return w.reconstructTIFFThumbnail()
	}
	return nil
}

func asInt64FromTag(t IfdTag) (int64, bool) {
	if ints, ok := t.Values.([]int64); ok && len(ints) > 0 {
		return ints[0], true
	}
	return 0, false
}

func (w *walker) extractJPEGThumbnail(offTag, lenTag IfdTag) []byte {
	off, ok1 := asInt64FromTag(offTag)
	length, ok2 := asInt64FromTag(lenTag)
	if !ok1 || !ok2 || length <= 0 {
		return nil
	}
	return w.br.readAtLenient(w.br.baseOffset+off, int(length))
}

// reconstructTIFFThumbnail rebuilds a standalone TIFF from the
// Thumbnail IFD: copy the IFD's entries verbatim, patch any
// out-of-line entry's payload offset to point within the new file,
// append the strip data itself, and patch StripOffsets/StripByteCounts
// to match.
func (w *walker) reconstructTIFFThumbnail() []byte {
	stripOffTag, ok := w.result[tagKey("Thumbnail", "StripOffsets")]
	if !ok {
		return nil
	}
	stripLenTag, ok := w.result[tagKey("Thumbnail", "StripByteCounts")]
	if !ok {
		return nil
	}
	stripOffsets, ok1 := stripOffTag.Values.([]int64)
	stripLens, ok2 := stripLenTag.Values.([]int64)
	if !ok1 || !ok2 || len(stripOffsets) != len(stripLens) {
		return nil
	}

	endian := w.br.endian
	bo := endian.byteOrder()

	const headerLen = 8
	ifdEntryCount := 0
	var extraTotal int64 // out-of-line payload bytes written at dataPos below
	for name, tag := range w.result {
		if hasIFDPrefix(name, "Thumbnail ") {
			ifdEntryCount++
			width := int64(typeLength(tag.FieldType))
			if width == 0 {
				width = 1
			}
			if l := int64(valueCount(tag.Values)) * width; l > 4 && tagNameSuffix(name) != "StripOffsets" {
				extraTotal += l
			}
		}
	}

	ifdStart := int64(headerLen)
	ifdLen := int64(2 + 12*ifdEntryCount + 4)
	dataStart := ifdStart + ifdLen

	var stripTotal int64
	for _, l := range stripLens {
		stripTotal += l
	}

	buf := make([]byte, dataStart+extraTotal+stripTotal)
	if endian == LittleEndian {
		buf[0], buf[1] = 'I', 'I'
	} else {
		buf[0], buf[1] = 'M', 'M'
	}
	bo.PutUint16(buf[2:4], 42)
	bo.PutUint32(buf[4:8], uint32(ifdStart))
	bo.PutUint16(buf[ifdStart:ifdStart+2], uint16(ifdEntryCount))

	entryPos := ifdStart + 2
	dataPos := dataStart
	stripOffsetPatchPositions := []int64(nil)

	for name, tag := range w.result {
		if !hasIFDPrefix(name, "Thumbnail ") {
			continue
		}
		bo.PutUint16(buf[entryPos:entryPos+2], tag.Tag)
		bo.PutUint16(buf[entryPos+2:entryPos+4], uint16(tag.FieldType))
		count := valueCount(tag.Values)
		bo.PutUint32(buf[entryPos+4:entryPos+8], uint32(count))

		width := typeLength(tag.FieldType)
		if width == 0 {
			width = 1
		}
		totalLen := int64(count) * int64(width)

		switch tagNameSuffix(name) {
		case "StripOffsets":
			// Patched after strip data is appended below; remember the
			// position for the second pass.
			stripOffsetPatchPositions = append(stripOffsetPatchPositions, entryPos+8)
		default:
			if totalLen <= 4 {
				encodeInlineValue(buf[entryPos+8:entryPos+12], tag, bo)
			} else {
				bo.PutUint32(buf[entryPos+8:entryPos+12], uint32(dataPos))
				raw := w.br.readAtLenient(int64(tag.FieldOffset), int(totalLen))
				copy(buf[dataPos:dataPos+totalLen], raw)
				dataPos += totalLen
			}
		}
		entryPos += 12
	}
	bo.PutUint32(buf[entryPos:entryPos+4], 0) // next_ifd = 0

	stripDataPos := dataPos
	newOffsets := make([]int64, len(stripOffsets))
	for i, off := range stripOffsets {
		newOffsets[i] = stripDataPos
		raw := w.br.readAtLenient(w.br.baseOffset+off, int(stripLens[i]))
		copy(buf[stripDataPos:stripDataPos+stripLens[i]], raw)
		stripDataPos += stripLens[i]
	}
	for _, pos := range stripOffsetPatchPositions {
		if len(newOffsets) > 0 {
			bo.PutUint32(buf[pos:pos+4], uint32(newOffsets[0]))
		}
	}

	return buf
}

func encodeInlineValue(dst []byte, tag IfdTag, bo binary.ByteOrder) {
	switch v := tag.Values.(type) {
	case []int64:
		for i, x := range v {
			switch typeLength(tag.FieldType) {
			case 1:
				dst[i] = byte(x)
			case 2:
				bo.PutUint16(dst[i*2:i*2+2], uint16(x))
			case 4:
				bo.PutUint32(dst[i*4:i*4+4], uint32(x))
			}
		}
	case []byte:
		copy(dst, v)
	}
}

func hasIFDPrefix(key, prefix string) bool {
	return len(key) >= len(prefix) && key[:len(prefix)] == prefix
}

func tagNameSuffix(key string) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == ' ' {
			return key[i+1:]
		}
	}
	return key
}
