// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRatio(t *testing.T) {
	c := qt.New(t)

	c.Run("reduces to lowest terms", func(c *qt.C) {
		r := NewRatio(6, 8)
		c.Assert(r.Num(), qt.Equals, int64(3))
		c.Assert(r.Den(), qt.Equals, int64(4))
	})

	c.Run("normalizes negative denominator", func(c *qt.C) {
		r := NewRatio(1, -2)
		c.Assert(r.Num(), qt.Equals, int64(-1))
		c.Assert(r.Den(), qt.Equals, int64(2))
	})

	c.Run("float64 projection", func(c *qt.C) {
		c.Assert(NewRatio(1, 2).Float64(), qt.Equals, 0.5)
		c.Assert(math.IsInf(NewRatio(1, 0).Float64(), 1), qt.IsTrue)
		c.Assert(math.IsInf(NewRatio(-1, 0).Float64(), -1), qt.IsTrue)
		c.Assert(math.IsNaN(NewRatio(0, 0).Float64()), qt.IsTrue)
	})

	c.Run("string rendering", func(c *qt.C) {
		c.Assert(NewRatio(4, 1).String(), qt.Equals, "4")
		c.Assert(NewRatio(1, 3).String(), qt.Equals, "1/3")
	})
}
