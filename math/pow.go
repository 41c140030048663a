// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	stdmath "math"
	"math/big"

	"github.com/db47h/float80"
)

// maxExactPow is the largest integer exponent |y| for which Pow computes x**y
// exactly before rounding.
const maxExactPow = 64

// Pow sets z to x**y, the base-x exponential of y, and returns z.
//
// Special cases are (in order):
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y
//	Pow(x, NaN) = NaN
//	Pow(NaN, y) = NaN
//	Pow(±0, y) = ±Inf for y an odd integer < 0
//	Pow(±0, y) = +Inf for finite y < 0 and not an odd integer
//	Pow(±0, -Inf) = +Inf
//	Pow(±0, y) = ±0 for y an odd integer > 0
//	Pow(±0, y) = +0 for y > 0 and not an odd integer
//	Pow(-1, ±Inf) = 1
//	Pow(x, +Inf) = +Inf for |x| > 1
//	Pow(x, -Inf) = +0 for |x| > 1
//	Pow(x, +Inf) = +0 for |x| < 1
//	Pow(x, -Inf) = +Inf for |x| < 1
//	Pow(+Inf, y) = +Inf for y > 0
//	Pow(+Inf, y) = +0 for y < 0
//	Pow(-Inf, y) = Pow(-0, -y)
//	Pow(x, y) = NaN for finite x < 0 and finite non-integer y
//
// Integer exponents up to 64 in magnitude are computed exactly before the
// final rounding.
func Pow(z, x, y *float80.Float80) *float80.Float80 {
	switch {
	case y.Sign() == 0 && !y.IsNaN():
		return z.SetInt64(1)
	case x.Cmp(float80.NewFloat80(1)) == 0:
		return z.SetInt64(1)
	}
	if z, ok := propagate(z, x, y); ok {
		return z
	}
	yOdd := isOddInt(y)
	ySign := y.Sign()
	switch {
	case x.Sign() == 0:
		if ySign < 0 {
			return z.SetInf(yOdd && x.Signbit())
		}
		if yOdd {
			return z.Set(x)
		}
		return z.SetInt64(0)

	case y.IsInf():
		ax := new(float80.Float80).Abs(x)
		switch c := ax.Cmp(float80.NewFloat80(1)); {
		case c == 0:
			return z.SetInt64(1)
		case (c > 0) == (ySign > 0):
			return z.SetInf(false)
		}
		return z.SetInt64(0)

	case x.IsInf():
		neg := x.Signbit() && yOdd
		if ySign > 0 {
			return z.SetInf(neg)
		}
		z.SetInt64(0)
		if neg {
			z.Neg(z)
		}
		return z

	case x.Sign() < 0 && !y.IsInt():
		return invalid(z)
	}

	neg := x.Signbit() && yOdd
	a := arg(x, prec)
	a.Abs(a)
	var r *big.Float
	if n, ok := smallInt(y); ok {
		r = powInt(a, n)
	} else {
		// x**y = e**(y×log(x))
		t := log(newFloat(prec+64), a)
		t.Mul(t, arg(y, prec+64))
		r = exp(newFloat(prec), t)
	}
	if neg {
		r.Neg(r)
	}
	return z.SetFloat(r)
}

// powInt returns x**n with a single rounding.
func powInt(x *big.Float, n int64) *big.Float {
	if n < 0 {
		// x**n = 1 / x**-n
		d := pow(newFloat(uint(-n)*float80.MantBits), x, uint64(-n))
		return newFloat(prec).SetMode(big.ToZero).Quo(one, d)
	}
	return pow(newFloat(uint(n)*float80.MantBits), x, uint64(n))
}

// smallInt returns the value of y if it is an integer with
// |y| <= maxExactPow.
func smallInt(y *float80.Float80) (int64, bool) {
	if !y.IsInt() {
		return 0, false
	}
	n, acc := y.Int64()
	if acc != float80.Exact || n < -maxExactPow || n > maxExactPow {
		return 0, false
	}
	return n, true
}

// isOddInt reports whether x is an odd integer.
func isOddInt(x *float80.Float80) bool {
	if !x.IsInt() || x.Sign() == 0 {
		return false
	}
	i, _ := x.Int(nil)
	return i.Bit(0) == 1
}

// Cbrt sets z to the cube root of x and returns z.
//
// Special cases are:
//
//	Cbrt(±0) = ±0
//	Cbrt(±Inf) = ±Inf
//	Cbrt(NaN) = NaN
func Cbrt(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.IsInf() || x.Sign() == 0:
		return z.Set(x)
	}
	a := arg(x, prec)
	neg := a.Signbit()
	a.Abs(a)

	// a = m × 2**3k, 1/8 <= m < 1
	m := newFloat(prec)
	e := a.MantExp(m)
	k := e / 3
	if r := e - 3*k; r > 0 {
		m.SetMantExp(m, r-3)
		k++
	} else if r < 0 {
		m.SetMantExp(m, r)
	}

	// Newton iteration y = y - (y³ - m) / 3y² from a float64 estimate
	f, _ := m.Float64()
	y := newFloat(prec).SetFloat64(stdmath.Cbrt(f))
	t := newFloat(prec)
	u := newFloat(prec)
	for i := 0; i < 3; i++ {
		t.Mul(y, y)
		u.Mul(t, y)
		u.Sub(u, m)
		t.Mul(t, three)
		y.Sub(y, u.Quo(u, t))
	}
	y.SetMantExp(y, k)
	if neg {
		y.Neg(y)
	}
	return z.SetFloat(y)
}

var three = new(big.Float).SetUint64(3)

// Hypot sets z to Sqrt(x*x + y*y), taking care to avoid unnecessary overflow
// and underflow, and returns z.
//
// Special cases are:
//
//	Hypot(±Inf, q) = +Inf
//	Hypot(p, ±Inf) = +Inf
//	Hypot(NaN, q) = NaN
//	Hypot(p, NaN) = NaN
func Hypot(z, x, y *float80.Float80) *float80.Float80 {
	if x.IsInf() || y.IsInf() {
		return z.SetInf(false)
	}
	if z, ok := propagate(z, x, y); ok {
		return z
	}
	// squares are exact with 2×64 bits
	a := arg(x, 2*float80.MantBits)
	a.Mul(a, a)
	b := arg(y, 2*float80.MantBits)
	b.Mul(b, b)
	s := newFloat(prec).SetMode(big.ToZero).Add(a, b)
	return z.SetFloat(s.Sqrt(s))
}
