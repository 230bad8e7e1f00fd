// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"encoding/binary"
	"io"
)

// bmffBox is one parsed ISO Base Media File Format box header: its
// type, and the absolute file range of its payload (after the 8 or 16
// byte size+type header, and after any version+flags header for "full
// boxes" the caller knows to skip).
type bmffBox struct {
	typ   string
	start int64 // payload start, absolute
	end   int64 // payload end, absolute (exclusive)
}

// readBoxes walks top-level boxes within [start, end) and returns each
// one's header. It does not recurse; callers descend into container
// boxes (moov, meta, iprp, ...) by calling readBoxes again on the
// child's payload range.
func readBoxes(r ReadSeeker, start, end int64) ([]bmffBox, error) {
	var boxes []bmffBox
	pos := start
	for pos < end {
		if _, err := r.Seek(pos, io.SeekStart); err != nil {
			return nil, newInvalidExif("bmff: seek: %v", err)
		}
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return nil, newInvalidExif("bmff: short box header at %d: %v", pos, err)
		}
		size := int64(binary.BigEndian.Uint32(hdr[0:4]))
		typ := string(hdr[4:8])
		headerLen := int64(8)
		if size == 1 {
			var ext [8]byte
			if _, err := io.ReadFull(r, ext[:]); err != nil {
				return nil, newInvalidExif("bmff: short extended size at %d: %v", pos, err)
			}
			size = int64(binary.BigEndian.Uint64(ext[:]))
			headerLen = 16
		} else if size == 0 {
			size = end - pos
		}
		if size < headerLen || pos+size > end {
			return nil, newInvalidExif("bmff: box %q at %d has invalid size %d", typ, pos, size)
		}
		boxes = append(boxes, bmffBox{typ: typ, start: pos + headerLen, end: pos + size})
		pos += size
	}
	return boxes, nil
}

func findBox(boxes []bmffBox, typ string) (bmffBox, bool) {
	for _, b := range boxes {
		if b.typ == typ {
			return b, true
		}
	}
	return bmffBox{}, false
}

// locateHEIF is the C4/§4.4-equivalent entry for HEIC/AVIF: walk
// ftyp -> meta -> iinf (find the "Exif" item's ID) -> iloc (find that
// item's extent) and return its offset. If no Exif item is declared,
// fall back to a forward scan of the whole file for the first TIFF
// header ("II*\0" or "MM\0*"), matching the HEIC exception in §4.2 for
// files that embed a bare TIFF stream without an iinf entry.
func locateHEIF(r ReadSeeker, logger Logger) (locateResult, error) {
	if _, err := r.Seek(0, io.SeekEnd); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}
	fileEnd, _ := r.Seek(0, io.SeekCurrent)

	top, err := readBoxes(r, 0, fileEnd)
	if err != nil {
		return locateResult{}, err
	}
	if _, ok := findBox(top, "ftyp"); !ok {
		return locateResult{}, newInvalidExif("heif: missing ftyp box")
	}
	metaBox, ok := findBox(top, "meta")
	if !ok {
		return locateResult{}, newExifNotFound("heif: no meta box")
	}

	// meta is a "full box": 4 bytes of version+flags precede its children.
	metaStart := metaBox.start + 4
	metaBoxes, err := readBoxes(r, metaStart, metaBox.end)
	if err != nil {
		return locateResult{}, err
	}

	exifItemID, found, err := findExifItemID(r, metaBoxes)
	if err != nil {
		return locateResult{}, err
	}
	if !found {
		logger.Printf("heif: no Exif item in iinf, falling back to whole-file scan")
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return locateResult{}, newInvalidExif("seek: %v", err)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return locateResult{}, newInvalidExif("heif: read: %v", err)
		}
		for i := 0; i+4 <= len(data); i++ {
			if s := string(data[i : i+4]); s == "II*\x00" || s == "MM\x00*" {
				return locateResult{offset: int64(i), endian: Endian(data[i])}, nil
			}
		}
		return locateResult{}, newExifNotFound("heif: no Exif item and no TIFF header found")
	}

	ilocBox, ok := findBox(metaBoxes, "iloc")
	if !ok {
		return locateResult{}, newExifNotFound("heif: no iloc box")
	}
	extentOffset, extentLen, err := findIlocExtent(r, ilocBox, exifItemID)
	if err != nil {
		return locateResult{}, err
	}
	if extentLen < 4 {
		return locateResult{}, newInvalidExif("heif: exif extent too short")
	}

	// The Exif item payload is a 4-byte big-endian offset to the real
	// TIFF header (the "exif_tiff_header_offset" field), followed by
	// that many bytes of an "Exif\0\0"-less lead-in, then the header.
	if _, err := r.Seek(extentOffset, io.SeekStart); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}
	var lead [4]byte
	if _, err := io.ReadFull(r, lead[:]); err != nil {
		return locateResult{}, newInvalidExif("heif: short exif lead-in: %v", err)
	}
	tiffHeaderOffset := int64(binary.BigEndian.Uint32(lead[:]))
	tiffStart := extentOffset + 4 + tiffHeaderOffset

	if _, err := r.Seek(tiffStart, io.SeekStart); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}
	var eb [1]byte
	if _, err := io.ReadFull(r, eb[:]); err != nil {
		return locateResult{}, newInvalidExif("heif: short tiff header: %v", err)
	}
	return locateResult{offset: tiffStart, endian: Endian(eb[0])}, nil
}

// findExifItemID walks iinf's item_ID/item_type pairs (infe boxes)
// looking for item_type == "Exif".
func findExifItemID(r ReadSeeker, metaBoxes []bmffBox) (uint32, bool, error) {
	iinfBox, ok := findBox(metaBoxes, "iinf")
	if !ok {
		return 0, false, nil
	}
	// iinf is a full box: version(1)+flags(3), then either a 2-byte or
	// 4-byte entry_count depending on version.
	if _, err := r.Seek(iinfBox.start, io.SeekStart); err != nil {
		return 0, false, newInvalidExif("seek: %v", err)
	}
	var vflags [4]byte
	if _, err := io.ReadFull(r, vflags[:]); err != nil {
		return 0, false, newInvalidExif("heif: short iinf header: %v", err)
	}
	version := vflags[0]
	childStart := iinfBox.start + 6
	if version == 0 {
		childStart = iinfBox.start + 6
	} else {
		childStart = iinfBox.start + 8
	}

	entries, err := readBoxes(r, childStart, iinfBox.end)
	if err != nil {
		return 0, false, err
	}
	for _, infe := range entries {
		if infe.typ != "infe" {
			continue
		}
		if _, err := r.Seek(infe.start, io.SeekStart); err != nil {
			continue
		}
		var ivflags [4]byte
		if _, err := io.ReadFull(r, ivflags[:]); err != nil {
			continue
		}
		infeVersion := ivflags[0]
		var itemID uint32
		var itemTypeOff int64
		if infeVersion >= 2 {
			if infeVersion == 2 {
				var idBuf [2]byte
				io.ReadFull(r, idBuf[:])
				itemID = uint32(binary.BigEndian.Uint16(idBuf[:]))
				itemTypeOff = infe.start + 4 + 2 + 2
			} else {
				var idBuf [4]byte
				io.ReadFull(r, idBuf[:])
				itemID = binary.BigEndian.Uint32(idBuf[:])
				itemTypeOff = infe.start + 4 + 4 + 2
			}
			if _, err := r.Seek(itemTypeOff, io.SeekStart); err != nil {
				continue
			}
			var typBuf [4]byte
			if _, err := io.ReadFull(r, typBuf[:]); err != nil {
				continue
			}
			if bytes.Equal(typBuf[:], []byte("Exif")) {
				return itemID, true, nil
			}
		}
	}
	return 0, false, nil
}

// findIlocExtent reads iloc's item array looking for itemID, returning
// the absolute file offset and length of its first extent. Supports
// the common version 0/1 layout with 4-byte offset/length fields,
// which covers every HEIC/AVIF encoder in practice.
func findIlocExtent(r ReadSeeker, iloc bmffBox, itemID uint32) (int64, int64, error) {
	if _, err := r.Seek(iloc.start, io.SeekStart); err != nil {
		return 0, 0, newInvalidExif("seek: %v", err)
	}
	var vflags [4]byte
	if _, err := io.ReadFull(r, vflags[:]); err != nil {
		return 0, 0, newInvalidExif("heif: short iloc header: %v", err)
	}
	version := vflags[0]
	var sizesBuf [2]byte
	if _, err := io.ReadFull(r, sizesBuf[:]); err != nil {
		return 0, 0, newInvalidExif("heif: short iloc sizes: %v", err)
	}
	var itemCountBuf [2]byte
	if _, err := io.ReadFull(r, itemCountBuf[:]); err != nil {
		return 0, 0, newInvalidExif("heif: short iloc item count: %v", err)
	}
	itemCount := binary.BigEndian.Uint16(itemCountBuf[:])

	for i := uint16(0); i < itemCount; i++ {
		var idBuf [2]byte
		if _, err := io.ReadFull(r, idBuf[:]); err != nil {
			return 0, 0, newInvalidExif("heif: short iloc item: %v", err)
		}
		id := binary.BigEndian.Uint16(idBuf[:])
		// Skip construction_method(2, version 1 only), then read
		// data_reference_index(2) + base_offset(4) + extent_count(2).
		if version >= 1 {
			var cm [2]byte
			if _, err := io.ReadFull(r, cm[:]); err != nil {
				return 0, 0, newInvalidExif("heif: short iloc item body: %v", err)
			}
		}
		var rest [8]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return 0, 0, newInvalidExif("heif: short iloc item body: %v", err)
		}
		baseOffset := int64(binary.BigEndian.Uint32(rest[2:6]))
		extentCount := binary.BigEndian.Uint16(rest[6:8])
		for e := uint16(0); e < extentCount; e++ {
			var extent [8]byte
			if _, err := io.ReadFull(r, extent[:]); err != nil {
				return 0, 0, newInvalidExif("heif: short iloc extent: %v", err)
			}
			if uint32(id) == itemID && e == 0 {
				extentOffset := baseOffset + int64(binary.BigEndian.Uint32(extent[0:4]))
				extentLen := int64(binary.BigEndian.Uint32(extent[4:8]))
				return extentOffset, extentLen, nil
			}
		}
	}
	return 0, 0, newExifNotFound("heif: item %d not found in iloc", itemID)
}

// locateJXL mirrors locateHEIF's box walk for JPEG XL's container
// format: a top-level "Exif" box (no iinf/iloc indirection) follows
// ftyp in the common case.
func locateJXL(r ReadSeeker, logger Logger) (locateResult, error) {
	if _, err := r.Seek(0, io.SeekEnd); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}
	fileEnd, _ := r.Seek(0, io.SeekCurrent)

	top, err := readBoxes(r, 0, fileEnd)
	if err != nil {
		return locateResult{}, err
	}
	if _, ok := findBox(top, "ftyp"); !ok {
		return locateResult{}, newInvalidExif("jxl: missing ftyp box")
	}
	exifBox, ok := findBox(top, "Exif")
	if !ok {
		return locateResult{}, newExifNotFound("jxl: no Exif box")
	}
	if _, err := r.Seek(exifBox.start, io.SeekStart); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}
	var lead [4]byte
	if _, err := io.ReadFull(r, lead[:]); err != nil {
		return locateResult{}, newInvalidExif("jxl: short exif lead-in: %v", err)
	}
	tiffHeaderOffset := int64(binary.BigEndian.Uint32(lead[:]))
	tiffStart := exifBox.start + 4 + tiffHeaderOffset
	if _, err := r.Seek(tiffStart, io.SeekStart); err != nil {
		return locateResult{}, newInvalidExif("seek: %v", err)
	}
	var eb [1]byte
	if _, err := io.ReadFull(r, eb[:]); err != nil {
		return locateResult{}, newInvalidExif("jxl: short tiff header: %v", err)
	}
	logger.Printf("jxl: located exif at %d", tiffStart)
	return locateResult{offset: tiffStart, endian: Endian(eb[0])}, nil
}
