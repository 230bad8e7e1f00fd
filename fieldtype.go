// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

// FieldType is one of the 13 TIFF/EXIF scalar type codes, plus the
// synthetic Proprietary(0) used for vendor-fabricated entries (Canon's
// indexed composite-tag decode, for instance, produces tags with no
// real on-disk type code).
type FieldType uint16

const (
	Proprietary   FieldType = 0
	TypeByte      FieldType = 1
	TypeASCII     FieldType = 2
	TypeShort     FieldType = 3
	TypeLong      FieldType = 4
	TypeRatio     FieldType = 5
	TypeSByte     FieldType = 6
	TypeUndefined FieldType = 7
	TypeSShort    FieldType = 8
	TypeSLong     FieldType = 9
	TypeSRatio    FieldType = 10
	TypeFloat32   FieldType = 11
	TypeFloat64   FieldType = 12
	TypeIFD       FieldType = 13
)

// typeLength returns the byte width of one value of t, or 0 for ASCII
// (whose total length is simply its count) and for anything out of
// the 0..13 range.
func typeLength(t FieldType) int {
	switch t {
	case TypeByte, TypeASCII, TypeSByte, TypeUndefined:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat32, TypeIFD:
		return 4
	case TypeRatio, TypeSRatio, TypeFloat64:
		return 8
	default:
		return 0
	}
}

func (t FieldType) valid() bool {
	return t <= TypeIFD
}

func (t FieldType) signed() bool {
	switch t {
	case TypeSByte, TypeSShort, TypeSLong, TypeSRatio:
		return true
	default:
		return false
	}
}

func (t FieldType) String() string {
	switch t {
	case Proprietary:
		return "Proprietary"
	case TypeByte:
		return "Byte"
	case TypeASCII:
		return "ASCII"
	case TypeShort:
		return "Short"
	case TypeLong:
		return "Long"
	case TypeRatio:
		return "Ratio"
	case TypeSByte:
		return "SignedByte"
	case TypeUndefined:
		return "Undefined"
	case TypeSShort:
		return "SignedShort"
	case TypeSLong:
		return "SignedLong"
	case TypeSRatio:
		return "SignedRatio"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	case TypeIFD:
		return "IFD"
	default:
		return "Unknown"
	}
}
