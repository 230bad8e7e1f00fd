// Package tagdata holds the static tag-name dictionaries and vendor
// MakerNote tables consumed by the exif-go decoder. Nothing in this
// package depends on the decoder; it is pure data plus the small amount
// of glue needed to describe how a tag's raw value becomes printable.
package tagdata

import "fmt"

// Decoder is the optional second element of a tag table entry: a way to
// turn a decoded value list into something more specific than its raw
// stringification.
type Decoder interface {
	isDecoder()
}

// EnumTable maps a decoded integer value to a human name. Unmapped
// values fall back to their Go-syntax representation, mirroring the
// table.get(v, repr(v)) behavior tag dictionaries are specified with.
type EnumTable map[int64]string

func (EnumTable) isDecoder() {}

// Lookup returns the name for v, or its repr if v isn't mapped.
func (t EnumTable) Lookup(v int64) string {
	if s, ok := t[v]; ok {
		return s
	}
	return fmt.Sprintf("%d", v)
}

// Formatter computes a printable string directly from the decoded
// values of a tag (e.g. Nikon's EV-bias encoding).
type Formatter func(values []any) string

func (Formatter) isDecoder() {}

// SubIFD marks a tag whose value is a pointer to another IFD, named
// Name and described by Tags.
type SubIFD struct {
	Name string
	Tags Dict
}

func (SubIFD) isDecoder() {}

// Entry is one row of a tag dictionary: a display name plus an
// optional Decoder controlling how printable values render.
type Entry struct {
	Name    string
	Decoder Decoder
}

// Dict is a tag-id -> Entry table, the `tag_dict` of the IFD walker's
// public contract.
type Dict map[uint16]Entry

// Lookup returns the entry for tag and whether it was found.
func (d Dict) Lookup(tag uint16) (Entry, bool) {
	e, ok := d[tag]
	return e, ok
}
