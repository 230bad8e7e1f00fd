// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import "fmt"

// IfdTag is the decoded record carried in the result map under a
// "<IFD_NAME> <TAG_NAME>" key. Values is polymorphic over
// {string, []byte, []int64, []Ratio, []float64} — a tagged variant by
// Go's usual means (a type switch on `any`) rather than a sum type,
// since the rest of the decoder already lives comfortably with that
// idiom (see the teacher's convertValues returning `any`).
type IfdTag struct {
	Printable string
	Tag       uint16
	FieldType FieldType
	Values    any

	FieldOffset uint32
	FieldLength uint32

	// PreferPrintable is true when a dictionary entry or formatter
	// produced Printable; the serializer (C10) uses it to bypass
	// type-directed conversion and return Printable verbatim.
	PreferPrintable bool
}

// Int64s returns Values as []int64 if that's its dynamic type.
func (t IfdTag) Int64s() ([]int64, bool) {
	v, ok := t.Values.([]int64)
	return v, ok
}

// Ratios returns Values as []Ratio if that's its dynamic type.
func (t IfdTag) Ratios() ([]Ratio, bool) {
	v, ok := t.Values.([]Ratio)
	return v, ok
}

// Floats returns Values as []float64 if that's its dynamic type.
func (t IfdTag) Floats() ([]float64, bool) {
	v, ok := t.Values.([]float64)
	return v, ok
}

// Bytes returns Values as []byte if that's its dynamic type.
func (t IfdTag) Bytes() ([]byte, bool) {
	v, ok := t.Values.([]byte)
	return v, ok
}

// Str returns Values as string if that's its dynamic type.
func (t IfdTag) Str() (string, bool) {
	v, ok := t.Values.(string)
	return v, ok
}

func (t IfdTag) String() string {
	return t.Printable
}

// tagKey formats the "<IFD_NAME> <TAG_NAME>" result-map key.
func tagKey(ifdName, tagName string) string {
	return ifdName + " " + tagName
}

// syntheticTagName synthesizes "Tag 0xHHHH" for an id absent from the
// active tag dictionary.
func syntheticTagName(tag uint16) string {
	return fmt.Sprintf("Tag 0x%04X", tag)
}
