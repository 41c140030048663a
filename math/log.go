// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"

	"github.com/db47h/float80"
)

// logSpecial handles the special cases shared by the logarithms: it reports
// whether x is NaN, negative, zero or +Inf and sets z accordingly.
func logSpecial(z, x *float80.Float80) (*float80.Float80, bool) {
	switch {
	case x.IsNaN():
		return z.Quiet(x), true
	case x.Sign() < 0:
		return invalid(z), true
	case x.Sign() == 0:
		return z.SetInf(true), true
	case x.IsInf():
		return z.SetInf(false), true
	}
	return z, false
}

// Log sets z to the natural logarithm of x and returns z.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(±0) = -Inf
//	Log(1) = +0
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func Log(z, x *float80.Float80) *float80.Float80 {
	if z, ok := logSpecial(z, x); ok {
		return z
	}
	return z.SetFloat(log(newFloat(prec), arg(x, prec)))
}

// Log2 sets z to the binary logarithm of x and returns z. The result is
// exact for powers of two. The special cases are the same as for Log.
func Log2(z, x *float80.Float80) *float80.Float80 {
	if z, ok := logSpecial(z, x); ok {
		return z
	}
	m := newFloat(prec)
	e := arg(x, prec).MantExp(m)
	// x = m × 2**e, 1 <= m < 2
	m.SetMantExp(m, 1)
	e--
	l := log(newFloat(prec), m)
	l.Quo(l, ln2(newFloat(prec+32)))
	return z.SetFloat(l.Add(l, newFloat(prec).SetInt64(int64(e))))
}

// Log10 sets z to the decimal logarithm of x and returns z. The special
// cases are the same as for Log.
func Log10(z, x *float80.Float80) *float80.Float80 {
	if z, ok := logSpecial(z, x); ok {
		return z
	}
	l := log(newFloat(prec), arg(x, prec))
	return z.SetFloat(l.Quo(l, ln10(newFloat(prec+32))))
}

// Log1p sets z to the natural logarithm of 1 plus x and returns z. It is
// more accurate than Log(1 + x) when x is near zero.
//
// Special cases are:
//
//	Log1p(+Inf) = +Inf
//	Log1p(±0) = ±0
//	Log1p(-1) = -Inf
//	Log1p(x < -1) = NaN
//	Log1p(NaN) = NaN
func Log1p(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.Sign() == 0:
		return z.Set(x)
	case x.IsInf():
		if x.Signbit() {
			return invalid(z)
		}
		return z.SetInf(false)
	}
	a := arg(x, prec)
	switch a.Cmp(minusOne) {
	case -1:
		return invalid(z)
	case 0:
		return z.SetInf(true)
	}
	return z.SetFloat(log1p(newFloat(prec), a))
}

var (
	minusOne = new(big.Float).SetInt64(-1)
	sqrt1_2  = new(big.Float).SetFloat64(0.7071067811865476)
)

// log sets z to the natural logarithm of the finite x > 0 computed with
// about z.Prec() bits of relative accuracy and returns z. z and x must be
// distinct.
func log(z, x *big.Float) *big.Float {
	zp := z.Prec()
	wp := zp + 32
	m := newFloat(wp)
	e := x.MantExp(m)
	// √½ <= m < √2
	if m.Cmp(sqrt1_2) < 0 {
		m.SetMantExp(m, 1)
		e--
	}
	// log(m) = 2 atanh((m-1)/(m+1))
	t := newFloat(wp).Sub(m, one)
	t.Quo(t, m.Add(m, one))
	oddSeries(z.SetPrec(wp), t, false)
	z.SetMantExp(z, 1)
	if e != 0 {
		l := ln2(newFloat(wp + 32))
		z.Add(z, l.Mul(l, newFloat(wp+32).SetInt64(int64(e))))
	}
	return z.SetPrec(zp)
}

// log1p sets z to log(1+x) for x > -1 with about z.Prec() bits of relative
// accuracy and returns z. z and x must be distinct.
func log1p(z, x *big.Float) *big.Float {
	zp := z.Prec()
	wp := zp + 32
	if cmpAbs(x, half) >= 0 {
		u := newFloat(wp).Add(x, one)
		return log(z, u)
	}
	// log(1+x) = 2 atanh(x/(2+x))
	t := newFloat(wp).Add(x, two)
	t.Quo(x, t)
	oddSeries(z.SetPrec(wp), t, false)
	z.SetMantExp(z, 1)
	return z.SetPrec(zp)
}
