// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import "fmt"

// decodeValues implements §4.5's per-field-type rules, returning one
// of {string, []byte, []int64, []Ratio, []float64} depending on
// fieldType.
func decodeValues(br *byteReader, fieldType FieldType, count int64, offset int64, opts *Options) (any, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative count %d", count)
	}

	switch fieldType {
	case TypeASCII:
		return br.readNullTerminatedASCII(offset, int(count)), nil

	case TypeUndefined:
		return br.readAtLenient(offset, int(count)), nil

	case TypeRatio, TypeSRatio:
		signed := fieldType == TypeSRatio
		out := make([]Ratio, count)
		for i := int64(0); i < count; i++ {
			out[i] = br.readRatio(offset+8*i, signed)
		}
		return out, nil

	case TypeFloat32:
		out := make([]float64, count)
		for i := int64(0); i < count; i++ {
			out[i] = br.readFloat(offset+4*i, 4)
		}
		return out, nil

	case TypeFloat64:
		out := make([]float64, count)
		for i := int64(0); i < count; i++ {
			out[i] = br.readFloat(offset+8*i, 8)
		}
		return out, nil

	case TypeByte, TypeSByte:
		signed := fieldType == TypeSByte
		out := make([]int64, count)
		for i := int64(0); i < count; i++ {
			v, _ := br.readU(offset+i, 1, signed)
			out[i] = v
		}
		return out, nil

	case TypeShort, TypeSShort:
		signed := fieldType == TypeSShort
		out := make([]int64, count)
		for i := int64(0); i < count; i++ {
			v, _ := br.readU(offset+2*i, 2, signed)
			out[i] = v
		}
		return out, nil

	case TypeLong, TypeSLong, TypeIFD:
		signed := fieldType == TypeSLong
		out := make([]int64, count)
		for i := int64(0); i < count; i++ {
			v, _ := br.readU(offset+4*i, 4, signed)
			out[i] = v
		}
		return out, nil

	case Proprietary:
		return br.readAtLenient(offset, int(count)), nil

	default:
		return nil, fmt.Errorf("unsupported field type %v", fieldType)
	}
}

func valueCount(values any) int {
	switch v := values.(type) {
	case string:
		if v == "" {
			return 0
		}
		return 1
	case []byte:
		return len(v)
	case []int64:
		return len(v)
	case []Ratio:
		return len(v)
	case []float64:
		return len(v)
	default:
		return 0
	}
}
