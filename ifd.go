// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"fmt"
	"strings"

	"github.com/ianare/exif-go/tagdata"
)

// ignoreTags are skipped while walking an IFD when Options.Details is
// false: ApplicationNotes (XMP embedded in TIFF), MakerNote, and
// UserComment — the three tags whose decoding is otherwise the most
// expensive relative to how rarely "quick mode" callers want them.
var ignoreTags = map[uint16]bool{
	0x02BC: true,
	0x927C: true,
	0x9286: true,
}

// bulkCountLimit is the §4.5 "suspected corruption" threshold: an
// entry claiming this many values or more is assumed corrupt unless
// it's one of the tags known to legitimately carry large opaque runs.
const bulkCountLimit = 1000

// walker carries the per-call state of one IFD traversal: the result
// map being built, the seen-offset set guarding I4, and the stop-tag
// latch that — once tripped — unwinds every recursive dumpIFD call
// without decoding anything further (P6).
type walker struct {
	br      *byteReader
	opts    *Options
	result  map[string]IfdTag
	seen    map[int64]bool
	stopped bool
	ifdSeq  int // count of root-chained IFDs seen, for naming "IFD 2", "IFD 3", ...
}

func newWalker(br *byteReader, opts *Options) *walker {
	return &walker{
		br:     br,
		opts:   opts,
		result: make(map[string]IfdTag),
		seen:   make(map[int64]bool),
	}
}

// dumpIFD is the C6 public contract: parse the IFD at ifdOffset
// (absolute stream offset), storing entries under ifdName, using
// tagDict to resolve names/decoders. relative selects the Nikon
// type-3 offset-correction algebra for out-of-line payloads (§4.4.f).
// chain, when true, additionally follows the trailing next_ifd
// pointer (root walks only — sub-IFD recursions never chain).
func (w *walker) dumpIFD(ifdOffset int64, ifdName string, tagDict tagdata.Dict, relative bool, chain bool) error {
	if w.stopped {
		return nil
	}

	entries, err := w.br.readU(ifdOffset, 2, false)
	if err != nil {
		w.opts.Logger.Printf("corrupted IFD at offset %d: %v", ifdOffset, err)
		return nil
	}

	for i := int64(0); i < entries; i++ {
		if w.stopped {
			return nil
		}
		entry := ifdOffset + 2 + 12*i

		tag, _ := w.br.readU(entry, 2, false)
		tagID := uint16(tag)

		tagEntry, known := tagDict.Lookup(tagID)
		tagName := tagEntry.Name
		if !known {
			tagName = syntheticTagName(tagID)
		}

		if !w.opts.Details && ignoreTags[tagID] {
			continue
		}

		ftRaw, _ := w.br.readU(entry+2, 2, false)
		fieldType := FieldType(ftRaw)
		if !fieldType.valid() {
			if w.opts.Strict {
				return newUnknownFieldType("tag 0x%04X: unknown field type %d", tagID, ftRaw)
			}
			w.opts.Logger.Printf("tag 0x%04X: unknown field type %d, skipping", tagID, ftRaw)
			continue
		}

		countV, _ := w.br.readU(entry+4, 4, false)
		count := countV

		width := typeLength(fieldType)
		if width == 0 {
			width = 1 // ASCII
		}
		totalLen := count * int64(width)

		if count >= bulkCountLimit && tagName != "MakerNote" && !strings.HasSuffix(tagName, "CameraInfo") {
			w.opts.Logger.Printf("tag 0x%04X: count %d exceeds bulk safety limit, skipping", tagID, count)
			continue
		}

		var payloadOffset int64
		if totalLen <= 4 {
			payloadOffset = entry + 8
		} else {
			raw, _ := w.br.readU(entry+8, 4, false)
			if relative {
				payloadOffset = raw + ifdOffset - 8
				if w.br.fakeExif {
					payloadOffset += 18
				}
			} else {
				payloadOffset = w.br.baseOffset + raw
			}
		}

		values, valErr := decodeValues(w.br, fieldType, count, payloadOffset, w.opts)
		if valErr != nil {
			w.opts.Logger.Printf("tag 0x%04X: %v", tagID, valErr)
			continue
		}

		printable, preferPrintable := w.renderPrintable(fieldType, count, values, tagEntry)

		tagField := IfdTag{
			Printable:       printable,
			Tag:             tagID,
			FieldType:       fieldType,
			Values:          values,
			FieldOffset:     uint32(payloadOffset),
			FieldLength:     uint32(totalLen),
			PreferPrintable: preferPrintable,
		}
		w.result[tagKey(ifdName, tagName)] = tagField

		if sub, ok := tagEntry.Decoder.(tagdata.SubIFD); ok && w.opts.Details {
			if err := w.decodeSubIFD(sub, values, ifdName); err != nil {
				return err
			}
		}

		if tagName == w.opts.StopTag {
			w.stopped = true
			return nil
		}
	}

	if chain {
		nextOffRel := ifdOffset + 2 + 12*entries
		next, err := w.br.readU(nextOffRel, 4, false)
		if err == nil && next != 0 {
			nextAbs := w.br.baseOffset + next
			if nextAbs != ifdOffset && !w.seen[nextAbs] {
				w.seen[nextAbs] = true
				w.ifdSeq++
				name := "Thumbnail"
				if w.ifdSeq > 1 {
					name = fmt.Sprintf("IFD %d", w.ifdSeq)
				}
				return w.dumpIFD(nextAbs, name, EXIFDict(), false, true)
			}
			if nextAbs == ifdOffset {
				w.opts.Logger.Printf("self-referential next_ifd at offset %d, stopping chain", ifdOffset)
			} else {
				w.opts.Logger.Printf("IFD cycle detected at offset %d, stopping chain", nextAbs)
			}
		}
	}

	return nil
}

// decodeSubIFD recurses into a sub-IFD named by a SubIFD decoder
// entry (ExifOffset -> EXIF, GPSInfo -> GPS, InteropOffset ->
// Interoperability, and vendor-specific sub-pointers like Nikon's
// embedded preview IFD). If the value list is empty, §4.6 says to log
// and skip rather than recurse into garbage. The sub-IFD walk's error
// (a strict-mode unknown field type) is returned to the caller.
func (w *walker) decodeSubIFD(sub tagdata.SubIFD, values any, parentIFDName string) error {
	ints, ok := values.([]int64)
	if !ok || len(ints) == 0 {
		w.opts.Logger.Printf("sub-IFD %s: empty or non-integer pointer value, skipping", sub.Name)
		return nil
	}
	offset := w.br.baseOffset + ints[0]
	if w.seen[offset] {
		w.opts.Logger.Printf("sub-IFD %s: offset %d already visited, skipping", sub.Name, offset)
		return nil
	}
	w.seen[offset] = true
	return w.dumpIFD(offset, sub.Name, sub.Tags, false, false)
}

// EXIFDict returns the shared root/EXIF tag dictionary. Exposed as a
// function (rather than referenced directly as tagdata.EXIFTags) so
// chained-IFD lookups and external callers go through one seam.
func EXIFDict() tagdata.Dict {
	return tagdata.EXIFTags
}
