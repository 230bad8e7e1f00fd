// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"fmt"
	"math"
)

// Ratio is a TIFF/EXIF rational: numerator over denominator, reduced
// to lowest terms. A lightweight value type in the same spirit as the
// teacher's generic Rat[T]/rat[T], but fixed to int64 to accommodate
// both the unsigned (type 5) and signed (type 10) TIFF rational
// encodings without a second generic instantiation threading through
// the rest of the decoder.
type Ratio struct {
	num int64
	den int64
}

// NewRatio reduces num/den by their GCD and returns the Ratio. Division
// by zero is preserved rather than rejected: the numerator is kept
// as-is and Float64 reports +Inf/-Inf/NaN accordingly, since a
// corrupt-but-recoverable rational must not abort the walk (§4.1, §7).
func NewRatio(num, den int64) Ratio {
	if den == 0 {
		return Ratio{num: num, den: 0}
	}
	g := gcd(absInt64(num), absInt64(den))
	if g != 0 {
		num /= g
		den /= g
	}
	if den < 0 {
		num, den = -num, -den
	}
	return Ratio{num: num, den: den}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Num returns the reduced numerator.
func (r Ratio) Num() int64 { return r.num }

// Den returns the reduced denominator.
func (r Ratio) Den() int64 { return r.den }

// Float64 returns the decimal projection. A zero denominator yields
// +Inf, -Inf, or NaN (for 0/0), matching IEEE-754 division semantics
// rather than panicking.
func (r Ratio) Float64() float64 {
	if r.den == 0 {
		if r.num == 0 {
			return math.NaN()
		}
		if r.num > 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return float64(r.num) / float64(r.den)
}

// String renders "num" when the denominator is 1, else "num/den".
func (r Ratio) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}
