// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ianare/exif-go/tagdata"
)

const truncatedValueLimit = 20

// toAnySlice flattens a decoded Values payload into []any so the
// printable renderer and enum/formatter decoders can iterate it
// uniformly regardless of its concrete element type.
func toAnySlice(values any) []any {
	switch v := values.(type) {
	case []int64:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out
	case []Ratio:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out
	case []float64:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out
	case []byte:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return out
	default:
		return nil
	}
}

func stringifyOne(v any) string {
	switch vv := v.(type) {
	case int64:
		return strconv.FormatInt(vv, 10)
	case Ratio:
		return vv.String()
	case float64:
		return strconv.FormatFloat(vv, 'g', -1, 64)
	case string:
		return vv
	default:
		return fmt.Sprintf("%v", vv)
	}
}

func asInt64(v any) (int64, bool) {
	switch vv := v.(type) {
	case int64:
		return vv, true
	case Ratio:
		return vv.Num(), true
	case float64:
		return int64(vv), true
	default:
		return 0, false
	}
}

// renderPrintable implements §4.6. It returns the printable string and
// whether a dictionary/formatter decoder produced it (PreferPrintable).
func (w *walker) renderPrintable(fieldType FieldType, count int64, values any, tagEntry tagdata.Entry) (string, bool) {
	var base string

	if s, ok := values.(string); ok {
		base = s
	} else {
		items := toAnySlice(values)
		switch {
		case count == 1 && fieldType != TypeASCII && len(items) == 1:
			base = stringifyOne(items[0])
		case count > 50 && w.opts.TruncateTags:
			n := len(items)
			if n > truncatedValueLimit {
				n = truncatedValueLimit
			}
			parts := make([]string, n)
			for i := 0; i < n; i++ {
				parts[i] = stringifyOne(items[i])
			}
			base = "[" + strings.Join(parts, ", ") + ", ... ]"
		default:
			parts := make([]string, len(items))
			for i, it := range items {
				parts[i] = stringifyOne(it)
			}
			base = "[" + strings.Join(parts, ", ") + "]"
		}
	}

	if tagEntry.Decoder == nil {
		return base, false
	}

	switch d := tagEntry.Decoder.(type) {
	case tagdata.Formatter:
		return d(toAnySlice(values)), true
	case tagdata.EnumTable:
		items := toAnySlice(values)
		if len(items) == 0 {
			return base, false
		}
		parts := make([]string, len(items))
		for i, it := range items {
			if iv, ok := asInt64(it); ok {
				parts[i] = d.Lookup(iv)
			} else {
				parts[i] = fmt.Sprintf("%#v", it)
			}
		}
		return strings.Join(parts, ", "), true
	default:
		// SubIFD and anything else: default rendering stands.
		return base, false
	}
}
