// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"

	"github.com/db47h/float80"
)

// Sin sets z to the sine of the radian argument x and returns z.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.IsInf():
		return invalid(z)
	case x.Sign() == 0:
		return z.Set(x)
	}
	s, _ := sincos(arg(x, prec), true, false)
	return z.SetFloat(s)
}

// Cos sets z to the cosine of the radian argument x and returns z.
//
// Special cases are:
//
//	Cos(±0) = 1
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.IsInf():
		return invalid(z)
	case x.Sign() == 0:
		return z.SetInt64(1)
	}
	_, c := sincos(arg(x, prec), false, true)
	return z.SetFloat(c)
}

// Tan sets z to the tangent of the radian argument x and returns z.
//
// Special cases are:
//
//	Tan(±0) = ±0
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
func Tan(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.IsInf():
		return invalid(z)
	case x.Sign() == 0:
		return z.Set(x)
	}
	s, c := sincos(arg(x, prec), true, true)
	return z.SetFloat(s.Quo(s, c))
}

// reducePi2 returns r and k mod 4 such that x = k×π/2 + r and |r| <= π/4.
// π is used with enough bits for the reduction to be accurate for any
// Float80 argument.
func reducePi2(x *big.Float, wp uint) (*big.Float, int) {
	e := x.MantExp(nil)
	if e < 0 {
		// |x| < 0.5
		return newFloat(wp).Set(x), 0
	}
	pp := wp + uint(e) + 64
	pio2 := pi(newFloat(pp))
	pio2.SetMantExp(pio2, -1)
	q := newFloat(pp).Quo(x, pio2)
	if q.Signbit() {
		q.Sub(q, half)
	} else {
		q.Add(q, half)
	}
	k, _ := q.Int(nil)
	r := newFloat(pp).SetInt(k)
	r.Sub(x, r.Mul(r, pio2))
	return r.SetPrec(wp), int(k.And(k, big.NewInt(3)).Int64())
}

// sincos returns the sine and cosine of x, computed with about prec bits of
// relative accuracy. Only the requested values are computed, the other ones
// are nil.
func sincos(x *big.Float, wantSin, wantCos bool) (sin, cos *big.Float) {
	wp := uint(prec + 32)
	r, k := reducePi2(x, wp)
	// sin(r) and cos(r) are swapped for odd quadrants
	needSin := k&1 == 0 && wantSin || k&1 == 1 && wantCos
	needCos := k&1 == 0 && wantCos || k&1 == 1 && wantSin
	var s, c *big.Float
	if needSin {
		s = sinSeries(newFloat(wp), r)
	}
	if needCos {
		c = cosSeries(newFloat(wp), r)
	}
	switch k {
	case 0:
		sin, cos = s, c
	case 1:
		sin, cos = c, neg(s)
	case 2:
		sin, cos = neg(s), neg(c)
	case 3:
		sin, cos = neg(c), s
	}
	return sin, cos
}

func neg(x *big.Float) *big.Float {
	if x == nil {
		return nil
	}
	return x.Neg(x)
}

// sinSeries sets z to sin(r) for |r| <= π/4 and returns z.
func sinSeries(z, r *big.Float) *big.Float {
	p := z.Prec()
	r2 := newFloat(p).Mul(r, r)
	r2.Neg(r2)
	term := newFloat(p).Set(r)
	n := newFloat(p)
	z.Set(r)
	for i := int64(2); ; i += 2 {
		term.Mul(term, r2)
		term.Quo(term, n.SetInt64(i*(i+1)))
		if term.Sign() == 0 || term.MantExp(nil) < z.MantExp(nil)-int(p) {
			return z
		}
		z.Add(z, term)
	}
}

// cosSeries sets z to cos(r) for |r| <= π/4 and returns z.
func cosSeries(z, r *big.Float) *big.Float {
	p := z.Prec()
	r2 := newFloat(p).Mul(r, r)
	r2.Neg(r2)
	term := newFloat(p).SetUint64(1)
	n := newFloat(p)
	z.SetUint64(1)
	for i := int64(1); ; i += 2 {
		term.Mul(term, r2)
		term.Quo(term, n.SetInt64(i*(i+1)))
		if term.Sign() == 0 || term.MantExp(nil) < z.MantExp(nil)-int(p) {
			return z
		}
		z.Add(z, term)
	}
}

// Asin sets z to the arcsine, in radians, of x and returns z.
//
// Special cases are:
//
//	Asin(±0) = ±0
//	Asin(x) = NaN if x < -1 or x > 1
//	Asin(NaN) = NaN
func Asin(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.Sign() == 0:
		return z.Set(x)
	}
	a := arg(x, prec+32)
	switch cmpAbs(a, one) {
	case 1:
		return invalid(z)
	case 0:
		r := pi(newFloat(prec))
		r.SetMantExp(r, -1)
		if a.Signbit() {
			r.Neg(r)
		}
		return z.SetFloat(r)
	}
	// asin(x) = atan(x / sqrt((1-x)(1+x)))
	t := newFloat(prec+32).Sub(one, a)
	t.Mul(t, newFloat(prec+32).Add(one, a))
	t.Quo(a, t.Sqrt(t))
	return z.SetFloat(atan(newFloat(prec), t))
}

// Acos sets z to the arccosine, in radians, of x and returns z.
//
// Special cases are:
//
//	Acos(1) = +0
//	Acos(x) = NaN if x < -1 or x > 1
//	Acos(NaN) = NaN
func Acos(z, x *float80.Float80) *float80.Float80 {
	if x.IsNaN() {
		return z.Quiet(x)
	}
	a := arg(x, prec+32)
	switch cmpAbs(a, one) {
	case 1:
		return invalid(z)
	case 0:
		if a.Signbit() {
			return z.SetFloat(pi(newFloat(prec)))
		}
		return z.SetInt64(0)
	}
	// acos(x) = 2 atan(sqrt((1-x)/(1+x)))
	t := newFloat(prec+32).Sub(one, a)
	t.Quo(t, newFloat(prec+32).Add(one, a))
	r := atan(newFloat(prec), t.Sqrt(t))
	return z.SetFloat(r.SetMantExp(r, 1))
}

// Atan sets z to the arctangent, in radians, of x and returns z.
//
// Special cases are:
//
//	Atan(±0) = ±0
//	Atan(±Inf) = ±π/2
//	Atan(NaN) = NaN
func Atan(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.Sign() == 0:
		return z.Set(x)
	case x.IsInf():
		r := pi(newFloat(prec))
		r.SetMantExp(r, -1)
		if x.Signbit() {
			r.Neg(r)
		}
		return z.SetFloat(r)
	}
	return z.SetFloat(atan(newFloat(prec), arg(x, prec)))
}

// atanHalvings is the number of argument halvings in atan.
const atanHalvings = 4

// atan sets z to the arctangent of the finite x with about z.Prec() bits of
// relative accuracy and returns z. z and x must be distinct.
func atan(z, x *big.Float) *big.Float {
	zp := z.Prec()
	wp := zp + 32
	a := newFloat(wp).Abs(x)
	inv := a.Cmp(one) > 0
	if inv {
		a.Quo(one, a)
	}
	// atan(a) = 2 atan(a / (1 + sqrt(1 + a²)))
	t := newFloat(wp)
	for i := 0; i < atanHalvings; i++ {
		t.Mul(a, a)
		t.Add(t, one)
		t.Sqrt(t)
		a.Quo(a, t.Add(t, one))
	}
	oddSeries(z.SetPrec(wp), a, true)
	z.SetMantExp(z, atanHalvings)
	if inv {
		// atan(a) = π/2 - atan(1/a)
		p := pi(newFloat(wp))
		z.Sub(p.SetMantExp(p, -1), z)
	}
	if x.Signbit() {
		z.Neg(z)
	}
	return z.SetPrec(zp)
}

// Atan2 sets z to the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value, and returns z.
//
// Special cases are (in order):
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(+0, x>=0) = +0
//	Atan2(-0, x>=0) = -0
//	Atan2(+0, x<=-0) = +π
//	Atan2(-0, x<=-0) = -π
//	Atan2(y>0, 0) = +π/2
//	Atan2(y<0, 0) = -π/2
//	Atan2(+Inf, +Inf) = +π/4
//	Atan2(-Inf, +Inf) = -π/4
//	Atan2(+Inf, -Inf) = 3π/4
//	Atan2(-Inf, -Inf) = -3π/4
//	Atan2(y, +Inf) = 0
//	Atan2(y>0, -Inf) = +π
//	Atan2(y<0, -Inf) = -π
//	Atan2(+Inf, x) = +π/2
//	Atan2(-Inf, x) = -π/2
func Atan2(z, y, x *float80.Float80) *float80.Float80 {
	if z, ok := propagate(z, y, x); ok {
		return z
	}
	yneg := y.Signbit()
	// quadrant angle as a multiple of π/4
	var q int64
	switch {
	case y.Sign() == 0:
		if x.Signbit() {
			q = 4
		} else {
			q = 0
		}
	case x.Sign() == 0:
		q = 2
	case x.IsInf():
		switch {
		case y.IsInf() && x.Signbit():
			q = 3
		case y.IsInf():
			q = 1
		case x.Signbit():
			q = 4
		default:
			q = 0
		}
	case y.IsInf():
		q = 2
	default:
		yb, xb := arg(y, prec+32), arg(x, prec+32)
		r := atan(newFloat(prec+32), yb.Quo(yb, xb))
		if x.Sign() < 0 {
			p := pi(newFloat(prec + 32))
			if yneg {
				r.Sub(r, p)
			} else {
				r.Add(r, p)
			}
		}
		return z.SetFloat(r)
	}
	if q == 0 {
		return z.SetFloat(zeroSign(yneg))
	}
	r := pi(newFloat(prec + 32))
	r.Mul(r, newFloat(prec).SetInt64(q))
	r.SetMantExp(r, -2)
	if yneg {
		r.Neg(r)
	}
	return z.SetFloat(r)
}

// zeroSign returns a signed zero.
func zeroSign(neg bool) *big.Float {
	z := new(big.Float)
	if neg {
		z.Neg(z)
	}
	return z
}
