// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import "errors"

// ProcessFile is the library's single entry point: locate whichever
// container format r holds, walk its IFDs, dispatch a vendor
// MakerNote decoder when one is present, optionally reconstruct a
// thumbnail, and optionally scan for an embedded XMP packet. It never
// panics: a panic below this call (in practice the strict-mode Nikon
// MakerNote error) is recovered here and surfaced as an error,
// following the teacher's decode-time panic/recover discipline.
func ProcessFile(opts Options) (result map[string]IfdTag, err error) {
	opts.withDefaults()

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = newInvalidExif("panic during decode: %v", r)
		}
	}()

	if opts.AutoSeek {
		if _, seekErr := opts.R.Seek(0, 0); seekErr != nil {
			return nil, newInvalidExif("seek to start: %v", seekErr)
		}
	}

	if !opts.Sources.Has(EXIF) {
		result = make(map[string]IfdTag)
	} else {
		loc, locErr := locateContainer(opts.R, opts.Logger)
		if locErr != nil {
			if errors.Is(locErr, ErrExifNotFound) || errors.Is(locErr, ErrInvalidExif) {
				opts.Logger.Printf("no usable exif: %v", locErr)
				return make(map[string]IfdTag), nil
			}
			return make(map[string]IfdTag), locErr
		}

		br := newByteReader(opts.R, opts.Logger)
		br.endian = loc.endian
		br.baseOffset = loc.offset
		br.fakeExif = loc.fakeExif
		br.strict = opts.Strict

		w := newWalker(br, &opts)

		ifd0Rel, err := br.readU(loc.offset+4, 4, false)
		if err != nil {
			return make(map[string]IfdTag), newInvalidExif("reading ifd0 pointer: %v", err)
		}

		if walkErr := w.dumpIFD(loc.offset+ifd0Rel, "Image", EXIFDict(), false, true); walkErr != nil {
			if opts.Strict {
				return w.result, walkErr
			}
			opts.Logger.Printf("ifd walk error (continuing, non-strict): %v", walkErr)
		}

		if opts.Details && !w.stopped {
			if mn, ok := w.result[tagKey("Image", "MakerNote")]; ok {
				if off := int64(mn.FieldOffset); off != 0 {
					w.dispatchMakerNote(off, int64(mn.FieldLength))
				}
			}
			if mn, ok := w.result[tagKey("EXIF", "MakerNote")]; ok {
				if off := int64(mn.FieldOffset); off != 0 {
					w.dispatchMakerNote(off, int64(mn.FieldLength))
				}
			}
		}

		if opts.ExtractThumbnail {
			if thumb := w.extractThumbnail(); thumb != nil {
				key := "TIFFThumbnail"
				_, hasOff := w.result[tagKey("Thumbnail", "JPEGInterchangeFormat")]
				_, hasLen := w.result[tagKey("Thumbnail", "JPEGInterchangeFormatLength")]
				if hasOff && hasLen {
					key = "JPEGThumbnail"
				}
				w.result[key] = IfdTag{
					Printable: "<thumbnail image data>",
					FieldType: TypeUndefined,
					Values:    thumb,
				}
			}
		}

		result = w.result
	}

	if opts.Sources.Has(XMPSource) || opts.Debug {
		if packet, ok := extractXMP(opts.R, opts.Logger); ok {
			result[tagKey("Image", "ApplicationNotes")] = IfdTag{
				Printable: packet,
				FieldType: TypeUndefined,
				Values:    []byte(packet),
			}
		}
	}

	if opts.Sources.Has(IPTC) {
		iptcTags, iptcErr := decodeIPTC(opts.R, opts.Logger)
		if iptcErr != nil {
			opts.Logger.Printf("iptc: %v", iptcErr)
		} else {
			for k, v := range iptcTags {
				result[k] = v
			}
		}
	}

	return result, nil
}

// ProcessFileValues runs ProcessFile and converts every entry through
// the C10 serializer, for callers that want builtin Go types rather
// than raw IfdTag records, as a standalone call rather than changing
// ProcessFile's own return type.
func ProcessFileValues(opts Options) (map[string]any, error) {
	tags, err := ProcessFile(opts)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(tags))
	for k, v := range tags {
		out[k] = Serialize(k, v)
	}
	return out, nil
}
