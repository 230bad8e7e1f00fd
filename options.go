// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

// Source is a bitmask of tag families a caller wants decoded, mirroring
// the teacher's bitmask-options idiom (Has/Remove/IsZero) generalized
// to this module's container set.
type Source uint8

const (
	// EXIF is the EXIF/TIFF tag source (the core of this module).
	EXIF Source = 1 << iota
	// IPTC is the IPTC tag source (ambient sibling format, §10 of SPEC_FULL.md).
	IPTC
	// XMPSource is the XMP tag source.
	XMPSource
)

// Has reports whether s contains o.
func (s Source) Has(o Source) bool {
	return s&o == o
}

// Remove returns s with o cleared.
func (s Source) Remove(o Source) Source {
	return s &^ o
}

// IsZero reports whether no source bits remain.
func (s Source) IsZero() bool {
	return s == 0
}

// DefaultSources is EXIF|XMP, the pair ProcessFile decodes by default.
const DefaultSources = EXIF | XMPSource

// UndefStopTag is the default StopTag value: a name no real tag has,
// so parsing never stops early unless the caller asks it to.
const UndefStopTag = "UNDEF"

// Options controls one ProcessFile call. The zero value is not ready
// to use; call NewOptions or set the fields to the documented defaults.
type Options struct {
	// R is the seekable source to read from. Required.
	R ReadSeeker

	// Sources selects which metadata families to decode. Defaults to
	// DefaultSources.
	Sources Source

	// StopTag halts parsing of the current IFD once an entry with this
	// name is stored. Default "UNDEF" (never matches).
	StopTag string

	// Details, if false, skips IGNORE_TAGS and MakerNote decoding.
	Details bool

	// Strict raises on unknown field types in the Image, Thumbnail and
	// sub-IFD walk and on a missing Nikon marker; otherwise these are
	// logged and parsing continues. Canon MakerNotes are not
	// type-checked, and an unknown field type inside a MakerNote IFD
	// ends that MakerNote's walk without an error.
	Strict bool

	// Debug forces XMP extraction; it does not change logging.
	Debug bool

	// TruncateTags enables the 20-value truncation in printable
	// rendering for long value lists.
	TruncateTags bool

	// AutoSeek seeks the stream to 0 before parsing.
	AutoSeek bool

	// ExtractThumbnail populates JPEGThumbnail / TIFFThumbnail.
	ExtractThumbnail bool

	// Logger receives corruption/debug messages. Defaults to a no-op.
	Logger Logger
}

// NewOptions returns Options with every documented default applied and
// r as the input stream.
func NewOptions(r ReadSeeker) Options {
	return Options{
		R:                r,
		Sources:          DefaultSources,
		StopTag:          UndefStopTag,
		Details:          true,
		TruncateTags:     true,
		AutoSeek:         true,
		ExtractThumbnail: true,
		Logger:           noopLogger{},
	}
}

func (o *Options) withDefaults() {
	if o.Sources.IsZero() {
		o.Sources = DefaultSources
	}
	if o.StopTag == "" {
		o.StopTag = UndefStopTag
	}
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}
}
