// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"io"
)

// maxJPEGScan bounds, as an absolute file position, how far the
// segment scanner will walk looking for an Exif APP1, per §4.3 ("Re-read up to
// base + 4000 bytes").
const maxJPEGScan = 4000

var (
	jfifVariants = [][]byte{[]byte("JFIF"), []byte("JFXX"), []byte("OLYM"), []byte("Phot")}
	exifMagic    = []byte("Exif\x00\x00")
	duckyMagic   = []byte("Ducky")
	adobeMagic   = []byte("Adobe")
)

// locateJPEG is the C3 JPEG branch: §4.3's segment scanner.
func locateJPEG(r ReadSeeker, head []byte, logger Logger) (locateResult, error) {
	pos := int64(2) // past FFD8
	fakeExif := false

	if len(head) >= 10 && head[2] == 0xFF && head[3] == 0xE0 {
		for _, v := range jfifVariants {
			if bytes.Equal(head[6:10], v) {
				fakeExif = true
				break
			}
		}
	}

	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}

	var marker [2]byte
	for pos < maxJPEGScan {
		if _, err := io.ReadFull(r, marker[:]); err != nil {
			return locateResult{}, newInvalidExif("jpeg: short marker read: %v", err)
		}
		pos += 2
		if marker[0] != 0xFF {
			return locateResult{}, newInvalidExif("jpeg: expected marker byte at %d", pos-2)
		}

		switch marker[1] {
		case 0xD8, 0x01:
			// Bare markers with no length/payload.
			continue
		case 0xDA: // SOS: start of scan, no Exif found.
			return locateResult{}, newInvalidExif("jpeg: reached start of scan without exif")
		case 0xDB: // DQT: quantization tables, image data follows.
			return locateResult{}, newInvalidExif("jpeg: reached quantization tables without exif")
		}

		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return locateResult{}, newInvalidExif("jpeg: short segment length: %v", err)
		}
		segLen := int64(lenBuf[0])<<8 | int64(lenBuf[1])
		if segLen < 2 {
			return locateResult{}, newInvalidExif("jpeg: invalid segment length %d", segLen)
		}
		payloadLen := segLen - 2
		segStart := pos + 2 // position right after the length field
		pos = segStart

		if marker[1] == 0xE1 {
			peek := make([]byte, min64(payloadLen, 16))
			if _, err := io.ReadFull(r, peek); err != nil {
				return locateResult{}, newInvalidExif("jpeg: short APP1 payload: %v", err)
			}
			if len(peek) >= 6 && bytes.Equal(peek[0:6], exifMagic) {
				tiffStart := segStart + 6
				if _, err := r.Seek(tiffStart, io.SeekStart); err != nil {
					return locateResult{}, newInvalidExif("seek: %v", err)
				}
				var eb [1]byte
				if _, err := io.ReadFull(r, eb[:]); err != nil {
					return locateResult{}, newInvalidExif("jpeg: short tiff header: %v", err)
				}
				return locateResult{offset: tiffStart, endian: Endian(eb[0]), fakeExif: fakeExif}, nil
			}
			if len(peek) >= 5 && bytes.Equal(peek[0:5], duckyMagic) {
				logger.Printf("jpeg: found Ducky APP1 at %d, not an exif payload", segStart)
			}
		} else if marker[1] == 0xEE {
			peek := make([]byte, min64(payloadLen, 16))
			if n, _ := io.ReadFull(r, peek); n > 0 && len(peek) >= 5 && bytes.Equal(peek[0:5], adobeMagic) {
				logger.Printf("jpeg: found Adobe APP14 at %d, not an exif payload", segStart)
			}
		}

		next := segStart + payloadLen
		if _, err := r.Seek(next, io.SeekStart); err != nil {
			return locateResult{}, newInvalidExif("jpeg: seek past segment: %v", err)
		}
		pos = next
	}

	return locateResult{}, newExifNotFound("jpeg: no exif segment found within scan window")
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
