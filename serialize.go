// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"strconv"
	"strings"
	"time"
)

// dateTimeLayout is the EXIF "YYYY:MM:DD HH:MM:SS" timestamp format
// shared by DateTime, DateTimeOriginal, and DateTimeDigitized.
const dateTimeLayout = "2006:01:02 15:04:05"

var dateTimeTagNames = map[string]bool{
	"DateTime":          true,
	"DateTimeOriginal":  true,
	"DateTimeDigitized": true,
}

// Serialize implements C10: convert an IfdTag's Values into a
// built-in Go type suitable for callers that don't want to deal with
// the library's internal Ratio/[]int64 representations directly.
// ProcessFileValues runs this over every entry of a ProcessFile result.
func Serialize(key string, tag IfdTag) any {
	if tag.PreferPrintable {
		return tag.Printable
	}

	name := tagNameSuffix(key)

	switch tag.FieldType {
	case TypeASCII:
		s, _ := tag.Values.(string)
		if dateTimeTagNames[name] {
			if t, err := time.Parse(dateTimeLayout, s); err == nil {
				return t
			}
		}
		return s

	case TypeUndefined, Proprietary:
		if b, ok := tag.Values.([]byte); ok {
			return b
		}
		return tag.Printable

	case TypeByte, TypeSByte:
		if name == "GPSVersionID" {
			if ints, ok := tag.Values.([]int64); ok {
				parts := make([]string, len(ints))
				for i, v := range ints {
					parts[i] = strconv.FormatInt(v, 10)
				}
				return strings.Join(parts, ".")
			}
		}
		return numericOrScalar(tag.Values)

	case TypeRatio, TypeSRatio:
		ratios, ok := tag.Values.([]Ratio)
		if !ok {
			return tag.Printable
		}
		if len(ratios) == 1 {
			if ratios[0].Den() == 1 {
				return ratios[0].Num()
			}
			return ratios[0].Float64()
		}
		out := make([]any, len(ratios))
		for i, r := range ratios {
			if r.Den() == 1 {
				out[i] = r.Num()
			} else {
				out[i] = r.Float64()
			}
		}
		return out

	default:
		return numericOrScalar(tag.Values)
	}
}

// numericOrScalar collapses a single-element numeric slice to its bare
// scalar, matching how a human-facing map value is normally expected:
// a one-element EXIF field isn't a list as far as callers are
// concerned.
func numericOrScalar(values any) any {
	switch v := values.(type) {
	case []int64:
		if len(v) == 1 {
			return v[0]
		}
		return v
	case []float64:
		if len(v) == 1 {
			return v[0]
		}
		return v
	case []byte:
		if len(v) == 1 {
			return v[0]
		}
		return v
	default:
		return values
	}
}
