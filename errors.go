// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"errors"
	"fmt"
)

// Sentinel errors matching the taxonomy: the two non-fatal errors
// (ErrExifNotFound, ErrInvalidExif) are expected control flow: when
// container location fails with either, ProcessFile logs it and
// returns an empty map with no error; the others are only fatal in strict mode, except
// ErrInvalidFieldLength which is always fatal.
var (
	ErrExifNotFound        = errors.New("exif not found")
	ErrInvalidExif         = errors.New("invalid exif")
	ErrUnknownFieldType    = errors.New("unknown field type")
	ErrInvalidFieldLength  = errors.New("invalid field length")
	ErrVendorMakerNote     = errors.New("vendor makernote error")
)

// exifError wraps a sentinel with additional context, following the
// *InvalidFormatError pattern: a typed error carrying an inner cause
// that still participates in errors.Is against the sentinel.
type exifError struct {
	sentinel error
	msg      string
}

func (e *exifError) Error() string {
	return e.msg
}

func (e *exifError) Unwrap() error {
	return e.sentinel
}

func newExifNotFound(format string, args ...any) error {
	return &exifError{sentinel: ErrExifNotFound, msg: fmt.Sprintf(format, args...)}
}

func newInvalidExif(format string, args ...any) error {
	return &exifError{sentinel: ErrInvalidExif, msg: fmt.Sprintf(format, args...)}
}

func newUnknownFieldType(format string, args ...any) error {
	return &exifError{sentinel: ErrUnknownFieldType, msg: fmt.Sprintf(format, args...)}
}

func newInvalidFieldLength(format string, args ...any) error {
	return &exifError{sentinel: ErrInvalidFieldLength, msg: fmt.Sprintf(format, args...)}
}

func newVendorMakerNoteError(format string, args ...any) error {
	return &exifError{sentinel: ErrVendorMakerNote, msg: fmt.Sprintf(format, args...)}
}

// errStop is a "stop walking" sentinel. Nothing in the package panics
// with it: the byte reader returns errors or logs and zero-fills on a
// bad read instead.
var errStop = errors.New("stop walking")
