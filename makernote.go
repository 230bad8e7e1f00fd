// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"strings"

	"github.com/ianare/exif-go/tagdata"
)

var (
	nikonType1Prefix = []byte{'N', 'i', 'k', 'o', 'n', 0, 1}
	nikonType2Prefix = []byte{'N', 'i', 'k', 'o', 'n', 0, 2}
	appleIOSPrefix   = []byte("Apple iOS\x00")
)

// dispatchMakerNote is C7: decode the vendor-proprietary MakerNote blob
// pointed to by tag, using Image Make to pick a vendor table, per
// §4.7's ordered rules. It runs after the root IFD (and any chained
// IFDs) have already been walked, since it needs "Image Make" in
// w.result to dispatch.
func (w *walker) dispatchMakerNote(makerNoteOffset int64, makerNoteLen int64) {
	makeTag, ok := w.result[tagKey("Image", "Make")]
	if !ok {
		w.opts.Logger.Printf("makernote: no Image Make tag, skipping vendor dispatch")
		return
	}
	cameraMake := strings.TrimSpace(makeTag.Printable)

	ctx := w.br.saveContext()
	defer w.br.restoreContext(ctx)

	switch {
	case strings.Contains(strings.ToUpper(cameraMake), "NIKON"):
		w.dispatchNikon(makerNoteOffset, makerNoteLen)
	case strings.HasPrefix(strings.ToUpper(cameraMake), "OLYMPUS"):
		w.dumpIFDAt(makerNoteOffset+8, "MakerNote", tagdata.Olympus)
	case strings.Contains(strings.ToUpper(cameraMake), "CASIO"):
		w.dumpIFDAt(makerNoteOffset, "MakerNote", tagdata.Casio)
	case strings.Contains(strings.ToUpper(cameraMake), "SONY"):
		w.dumpIFDAt(makerNoteOffset, "MakerNote", tagdata.Sony)
	case strings.Contains(strings.ToUpper(cameraMake), "FUJIFILM"):
		w.dispatchFujifilm(makerNoteOffset, makerNoteLen)
	case strings.EqualFold(cameraMake, "Apple"):
		w.dispatchApple(makerNoteOffset, makerNoteLen)
	case strings.Contains(strings.ToUpper(cameraMake), "DJI"):
		w.dispatchDJI(makerNoteOffset, makerNoteLen)
	case strings.Contains(strings.ToUpper(cameraMake), "CANON"):
		w.dumpIFDAt(makerNoteOffset, "MakerNote", tagdata.Canon)
		w.decodeCanonIndexed(cameraMake)
	default:
		w.opts.Logger.Printf("makernote: unrecognized make %q, leaving raw bytes", cameraMake)
	}
}

// dumpIFDAt walks a vendor MakerNote IFD using the current byteReader
// endian/base context (already positioned by the caller via push/pop),
// named "MakerNote" with dict-resolved sub-tags stored flat alongside
// the rest of the image's tags.
func (w *walker) dumpIFDAt(offset int64, ifdName string, dict tagdata.Dict) {
	_ = w.dumpIFD(offset, ifdName, dict, false, false)
}

// dispatchNikon distinguishes the three historical Nikon MakerNote
// layouts (§4.7): type 1 (the "Nikon\0\x01" prefix; NIKON_OLD
// dictionary at field_offset+8, offsets resolved against the outer
// TIFF's own base_offset), type 2 labeled (the "Nikon\0\x02" prefix,
// which must be followed by a TIFF byte-order magic at bytes 12..14;
// NIKON_NEW dictionary at field_offset+18, using the type-3 relative
// pointer arithmetic in dumpIFD), and type 2 unlabeled (no prefix at
// all; NIKON_NEW dictionary directly at field_offset).
func (w *walker) dispatchNikon(offset, length int64) {
	prefix := w.br.readAtLenient(offset, 7)
	switch {
	case bytes.HasPrefix(prefix, nikonType1Prefix):
		_ = w.dumpIFD(offset+8, "MakerNote", tagdata.NikonOld, false, false)

	case bytes.HasPrefix(prefix, nikonType2Prefix):
		marker := w.br.readAtLenient(offset+12, 2)
		validMarker := len(marker) == 2 &&
			((marker[0] == 0x00 && marker[1] == 0x2A) || (marker[0] == 0x2A && marker[1] == 0x00))
		if !validMarker {
			if w.opts.Strict {
				panic(newVendorMakerNoteError("nikon type 2 makernote missing TIFF magic at offset %d", offset))
			}
			w.opts.Logger.Printf("makernote: nikon type 2 missing TIFF magic at offset %d, continuing", offset)
		}
		_ = w.dumpIFD(offset+18, "MakerNote", tagdata.NikonNew, true, false)

	default:
		_ = w.dumpIFD(offset, "MakerNote", tagdata.NikonNew, false, false)
	}
}

// dispatchFujifilm follows §4.7's endian+offset push-pop: Fujifilm
// MakerNotes are always little-endian with offsets relative to the
// start of the MakerNote block itself, regardless of the outer TIFF's
// byte order.
func (w *walker) dispatchFujifilm(offset, length int64) {
	w.br.endian = LittleEndian
	w.br.baseOffset = offset
	ifdRel, _ := w.br.readU(offset+8, 4, false)
	w.dumpIFDAt(offset+ifdRel, "MakerNote", tagdata.Fujifilm)
}

// dispatchApple checks for the "Apple iOS\0" byte prefix and, when
// present, walks the IFD at field_offset+14 with offsets rebased to
// that same position; iOS MakerNotes are a standard embedded IFD with
// no further quirks.
func (w *walker) dispatchApple(offset, length int64) {
	prefix := w.br.readAtLenient(offset, 10)
	start := offset
	if bytes.HasPrefix(prefix, appleIOSPrefix) {
		start = offset + 14
		w.br.baseOffset = start
	}
	w.dumpIFDAt(start, "MakerNote", tagdata.Apple)
}

// dispatchDJI mirrors Fujifilm's push-pop rule: the MakerNote is read
// little-endian regardless of the outer TIFF's byte order, with the
// offset base rebased to the blob start.
func (w *walker) dispatchDJI(offset, length int64) {
	w.br.endian = LittleEndian
	w.br.baseOffset = offset
	w.dumpIFDAt(offset, "MakerNote", tagdata.DJI)
}

// decodeCanonIndexed implements §4.8: walk the composite Canon tags
// that were just decoded as flat Long/Short arrays (CameraSettings,
// FocalLength, ShotInfo, AFInfo2, FileInfo) and re-expose their
// position-indexed sub-fields as synthetic proprietary tags, then
// separately decode CameraInfo using a model-matched byte-offset
// table, if one matches the camera model string.
func (w *walker) decodeCanonIndexed(cameraMake string) {
	for compositeName, table := range tagdata.CanonIndexedTags {
		tag, ok := w.result[tagKey("MakerNote", compositeName)]
		if !ok {
			continue
		}
		ints, ok := tag.Values.([]int64)
		if !ok {
			continue
		}
		for idx, entry := range table {
			if idx >= len(ints) {
				continue
			}
			v := ints[idx]
			printable := entry.Name
			if entry.Decoder != nil {
				if enum, ok := entry.Decoder.(tagdata.EnumTable); ok {
					printable = enum.Lookup(v)
				}
			} else {
				printable = stringifyOne(v)
			}
			w.result[tagKey("MakerNote", entry.Name)] = IfdTag{
				Printable:       printable,
				Tag:             0,
				FieldType:       Proprietary,
				Values:          []int64{v},
				PreferPrintable: true,
			}
		}
		delete(w.result, tagKey("MakerNote", compositeName))
	}

	modelTag, ok := w.result[tagKey("Image", "Model")]
	if !ok {
		return
	}
	infoTag, ok := w.result[tagKey("MakerNote", "CameraInfo")]
	if !ok {
		return
	}
	raw, ok := infoTag.Values.([]byte)
	if !ok {
		return
	}
	for _, tbl := range tagdata.CanonCameraInfoTables {
		if !tbl.ModelPattern.MatchString(modelTag.Printable) {
			continue
		}
		for _, e := range tbl.Entries {
			if int(e.Offset)+e.Size > len(raw) {
				continue
			}
			val := decodeCameraInfoField(raw, e)
			printable := stringifyOne(val)
			if e.Decoder != nil {
				if enum, ok := e.Decoder.(tagdata.EnumTable); ok {
					printable = enum.Lookup(val)
				}
			}
			w.result[tagKey("MakerNote", e.Name)] = IfdTag{
				Printable:       printable,
				Tag:             0,
				FieldType:       Proprietary,
				Values:          []int64{val},
				PreferPrintable: true,
			}
		}
		return
	}
}

func decodeCameraInfoField(raw []byte, e tagdata.CanonCameraInfoEntry) int64 {
	b := raw[e.Offset : e.Offset+e.Size]
	var v int64
	for _, by := range b {
		v = v<<8 | int64(by)
	}
	if e.Signed && e.Size < 8 {
		signBit := int64(1) << (uint(e.Size)*8 - 1)
		if v&signBit != 0 {
			v -= signBit << 1
		}
	}
	return v
}
