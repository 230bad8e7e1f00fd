// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"sync"
	"unicode/utf8"
)

// ReadSeeker is the minimal capability ProcessFile requires of its
// input: positioned reads, nothing more.
type ReadSeeker interface {
	io.ReadSeeker
}

// Endian identifies the byte order observed in the container's TIFF
// header byte (the "II"/"MM" marker).
type Endian byte

const (
	// LittleEndian is Intel byte order ("II").
	LittleEndian Endian = 'I'
	// BigEndian is Motorola byte order ("MM").
	BigEndian Endian = 'M'
)

func (e Endian) byteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Endian) String() string {
	if e == BigEndian {
		return "Motorola"
	}
	return "Intel"
}

// 10 MB is plenty for image metadata; guards against a corrupt count
// field demanding an absurd allocation.
const maxReadSize = 10 * 1024 * 1024

var smallBufPool = sync.Pool{
	New: func() any { return make([]byte, 8) },
}

// byteReader is the C1 byte reader: endian-aware positioned reads over
// a seekable source, with an implicit base_offset and a push/popable
// endian context for the MakerNote dispatcher. It never raises on a
// corrupt interior read — readAtLenient logs and returns a zero-filled
// buffer instead, following the teacher's streamReader idiom of never
// aborting a walk over one bad field.
type byteReader struct {
	r ReadSeeker

	endian     Endian
	baseOffset int64
	fakeExif   bool

	logger Logger
	strict bool

	buf [8]byte
}

func newByteReader(r ReadSeeker, logger Logger) *byteReader {
	if logger == nil {
		logger = noopLogger{}
	}
	return &byteReader{r: r, endian: LittleEndian, logger: logger}
}

// endianContext is the push/pop-able (endian, base_offset, fake_exif)
// triple the MakerNote dispatcher saves and restores around vendor
// decoders (I5, §4.7's "state-restoration discipline").
type endianContext struct {
	endian     Endian
	baseOffset int64
	fakeExif   bool
}

func (b *byteReader) saveContext() endianContext {
	return endianContext{endian: b.endian, baseOffset: b.baseOffset, fakeExif: b.fakeExif}
}

func (b *byteReader) restoreContext(ctx endianContext) {
	b.endian = ctx.endian
	b.baseOffset = ctx.baseOffset
	b.fakeExif = ctx.fakeExif
}

func (b *byteReader) pos() (int64, error) {
	return b.r.Seek(0, io.SeekCurrent)
}

func (b *byteReader) seekAbs(off int64) error {
	_, err := b.r.Seek(off, io.SeekStart)
	return err
}

// readAt reads n bytes at absolute offset off without disturbing any
// later seek position expectations of the caller (the caller is
// expected to re-seek if it cares where the cursor ends up).
func (b *byteReader) readAt(off int64, n int) ([]byte, error) {
	if n < 0 || n > maxReadSize {
		return nil, newInvalidExif("refusing to read %d bytes at offset %d", n, off)
	}
	if err := b.seekAbs(off); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// readAtLenient is readAt but on a short/failed read it logs and
// returns a zero-filled buffer of the requested length rather than an
// error, matching §4.1's "All reads that encounter fewer bytes than
// requested return zero and emit a corruption warning; they do not
// raise."
func (b *byteReader) readAtLenient(off int64, n int) []byte {
	buf, err := b.readAt(off, n)
	if err != nil {
		b.logger.Printf("corrupt read at offset %d length %d: %v", off, n, err)
		return make([]byte, n)
	}
	return buf
}

// readU reads an unsigned (or, if signed, a sign-extended) integer of
// length bytes at off in the current endian. length must be one of
// {1,2,4,8}; anything else is always fatal per §7.
func (b *byteReader) readU(off int64, length int, signed bool) (int64, error) {
	switch length {
	case 1, 2, 4, 8:
	default:
		return 0, newInvalidFieldLength("invalid primitive length %d", length)
	}
	buf := b.readAtLenient(off, length)
	bo := b.endian.byteOrder()
	switch length {
	case 1:
		v := buf[0]
		if signed {
			return int64(int8(v)), nil
		}
		return int64(v), nil
	case 2:
		v := bo.Uint16(buf)
		if signed {
			return int64(int16(v)), nil
		}
		return int64(v), nil
	case 4:
		v := bo.Uint32(buf)
		if signed {
			return int64(int32(v)), nil
		}
		return int64(v), nil
	default: // 8
		v := bo.Uint64(buf)
		if signed {
			return int64(v), nil
		}
		return int64(v), nil
	}
}

// readFloat reads a size-byte (4 or 8) IEEE-754 float at off. A
// malformed read produces a logged warning and sentinel −1, per §4.1.
func (b *byteReader) readFloat(off int64, size int) float64 {
	if size != 4 && size != 8 {
		b.logger.Printf("invalid float size %d at offset %d", size, off)
		return -1
	}
	buf, err := b.readAt(off, size)
	if err != nil {
		b.logger.Printf("failed to read float at offset %d: %v", off, err)
		return -1
	}
	bo := b.endian.byteOrder()
	if size == 4 {
		bits := bo.Uint32(buf)
		f := math.Float32frombits(bits)
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			b.logger.Printf("malformed float32 at offset %d", off)
			return -1
		}
		return float64(f)
	}
	bits := bo.Uint64(buf)
	f := math.Float64frombits(bits)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		b.logger.Printf("malformed float64 at offset %d", off)
		return -1
	}
	return f
}

// readRatio reads two 4-byte integers at off into a Ratio.
func (b *byteReader) readRatio(off int64, signed bool) Ratio {
	num, _ := b.readU(off, 4, signed)
	den, _ := b.readU(off+4, 4, signed)
	return NewRatio(num, den)
}

// readNullTerminatedASCII reads up to maxCount bytes at off, truncates
// at the first NUL, and attempts a UTF-8 decode; invalid UTF-8 is
// reported and the raw bytes are kept (as a string, byte-for-byte).
func (b *byteReader) readNullTerminatedASCII(off int64, maxCount int) string {
	raw := b.readAtLenient(off, maxCount)
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	if !utf8.Valid(raw) {
		b.logger.Printf("invalid utf-8 in ascii field at offset %d", off)
	}
	return string(raw)
}

// writeUInto appends value to buffer using the current endian: 2 bytes
// when length is 2, 4 bytes for any other length. Nothing in the
// package calls it; the thumbnail reconstructor patches its buffer
// through binary.ByteOrder directly.
func (b *byteReader) writeUInto(buffer []byte, value uint32, length int) []byte {
	bo := b.endian.byteOrder()
	switch length {
	case 2:
		tmp := make([]byte, 2)
		bo.PutUint16(tmp, uint16(value))
		return append(buffer, tmp...)
	case 4:
		tmp := make([]byte, 4)
		bo.PutUint32(tmp, value)
		return append(buffer, tmp...)
	default:
		tmp := make([]byte, 4)
		bo.PutUint32(tmp, value)
		return append(buffer, tmp...)
	}
}

// putUInt32At overwrites buffer[off:off+4] in place with value encoded
// in the current endian. Nothing in the package calls it.
func (b *byteReader) putUInt32At(buffer []byte, off int, value uint32) {
	b.endian.byteOrder().PutUint32(buffer[off:off+4], value)
}
