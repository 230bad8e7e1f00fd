// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"encoding/binary"
	"io"
)

// locateResult is what C3 returns: where the TIFF header begins (the
// absolute offset of the first "II"/"MM" byte-order marker byte),
// which endian that marker declared, and whether a JFIF-style APP0
// forced a synthetic Exif header (propagating the Nikon type-3 +18
// correction).
type locateResult struct {
	offset   int64
	endian   Endian
	fakeExif bool
}

// locateContainer is the C3 container locator: dispatch on the first
// 12 bytes' magic, per §4.2's table.
func locateContainer(r ReadSeeker, logger Logger) (locateResult, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return locateResult{}, newInvalidExif("seek to start: %v", err)
	}
	head := make([]byte, 12)
	n, _ := io.ReadFull(r, head)
	head = head[:n]
	if len(head) < 4 {
		return locateResult{}, newExifNotFound("file too short to identify")
	}

	switch {
	case len(head) >= 2 && (bytes.Equal(head[0:2], []byte("II")) || bytes.Equal(head[0:2], []byte("MM"))):
		return locateTIFF(r)

	case len(head) >= 12 && isHEICBrand(head[4:12]):
		return locateHEIF(r, logger)

	case len(head) >= 12 && bytes.Equal(head[0:4], []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WEBP")):
		return locateWebP(r)

	case len(head) >= 2 && head[0] == 0xFF && head[1] == 0xD8:
		return locateJPEG(r, head, logger)

	case len(head) >= 8 && bytes.Equal(head[0:8], []byte("\x89PNG\r\n\x1a\n")):
		return locatePNG(r, logger)

	case len(head) == 12 && bytes.Equal(head, jxlMagic):
		return locateJXL(r, logger)

	default:
		return locateResult{}, newExifNotFound("file format not recognized")
	}
}

var jxlMagic = []byte("\x00\x00\x00\x0cJXL\x20\x0d\x0a\x87\x0a")

func isHEICBrand(b8 []byte) bool {
	for _, brand := range [][]byte{[]byte("heic"), []byte("avif"), []byte("mif1")} {
		if bytes.Equal(b8[4:8], brand) {
			return true
		}
	}
	return false
}

func locateTIFF(r ReadSeeker) (locateResult, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}
	var hdr [2]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return locateResult{}, newInvalidExif("short tiff header: %v", err)
	}
	var endian Endian
	switch {
	case hdr[0] == 'I' && hdr[1] == 'I':
		endian = LittleEndian
	case hdr[0] == 'M' && hdr[1] == 'M':
		endian = BigEndian
	default:
		return locateResult{}, newInvalidExif("unrecognized tiff byte order marker")
	}
	return locateResult{offset: 0, endian: endian}, nil
}

func locateWebP(r ReadSeeker) (locateResult, error) {
	if _, err := r.Seek(12, io.SeekStart); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}
	var chunkHdr [8]byte
	if _, err := io.ReadFull(r, chunkHdr[:]); err != nil {
		return locateResult{}, newExifNotFound("webp file does not have exif data")
	}
	if !bytes.Equal(chunkHdr[0:4], []byte("VP8X")) {
		return locateResult{}, newExifNotFound("webp file does not have exif data")
	}
	var flags [1]byte
	if _, err := io.ReadFull(r, flags[:]); err != nil {
		return locateResult{}, newInvalidExif("short VP8X flags: %v", err)
	}
	if flags[0]&0x08 == 0 {
		return locateResult{}, newExifNotFound("webp file has no exif flag set")
	}
	// Skip the remainder of VP8X (3 reserved + 3 width + 3 height = 9 bytes
	// after the flags byte we just consumed, minus the 1 we read).
	if _, err := r.Seek(9, io.SeekCurrent); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}
	for {
		var h [8]byte
		if _, err := io.ReadFull(r, h[:]); err != nil {
			return locateResult{}, newInvalidExif("invalid webp chunk header: %v", err)
		}
		if bytes.Equal(h[0:4], []byte("EXIF")) {
			offset, _ := r.Seek(0, io.SeekCurrent)
			var endianByte [1]byte
			if _, err := io.ReadFull(r, endianByte[:]); err != nil {
				return locateResult{}, newInvalidExif("short exif chunk: %v", err)
			}
			e := Endian(endianByte[0])
			return locateResult{offset: offset, endian: e}, nil
		}
		size := binary.LittleEndian.Uint32(h[4:8])
		if size%2 == 1 {
			size++ // RIFF chunks are padded to even length.
		}
		if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
			return locateResult{}, newExifNotFound("webp file does not have exif data")
		}
	}
}

func locatePNG(r ReadSeeker, logger Logger) (locateResult, error) {
	if _, err := r.Seek(8, io.SeekStart); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}
	for {
		var h [8]byte
		if _, err := io.ReadFull(r, h[:]); err != nil {
			return locateResult{}, newExifNotFound("png file does not have exif data")
		}
		length := binary.BigEndian.Uint32(h[0:4])
		chunk := h[4:8]
		if bytes.Equal(chunk, []byte("IEND")) {
			return locateResult{}, newExifNotFound("png file does not have exif data")
		}
		if bytes.Equal(chunk, []byte("eXIf")) {
			offset, _ := r.Seek(0, io.SeekCurrent)
			var endianByte [1]byte
			if _, err := io.ReadFull(r, endianByte[:]); err != nil {
				return locateResult{}, newInvalidExif("short eXIf chunk: %v", err)
			}
			return locateResult{offset: offset, endian: Endian(endianByte[0])}, nil
		}
		if _, err := r.Seek(int64(length)+4, io.SeekCurrent); err != nil { // data + CRC
			logger.Printf("png: failed to skip chunk %q: %v", chunk, err)
			return locateResult{}, newInvalidExif("png chunk skip failed")
		}
	}
}
