// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"

	"github.com/db47h/float80"
)

// Exp sets z to e**x, the base-e exponential of x, and returns z.
//
// Special cases are:
//
//	Exp(±0) = 1
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = +0
//	Exp(NaN) = NaN
func Exp(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.IsInf():
		if x.Signbit() {
			return z.SetInt64(0)
		}
		return z.SetInf(false)
	case x.Sign() == 0:
		return z.SetInt64(1)
	}
	return z.SetFloat(exp(newFloat(prec), arg(x, prec)))
}

// Expm1 sets z to e**x - 1 and returns z. It is more accurate than Exp(x)
// minus 1 when x is near zero.
//
// Special cases are:
//
//	Expm1(±0) = ±0
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
//	Expm1(NaN) = NaN
func Expm1(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.IsInf():
		if x.Signbit() {
			return z.SetInt64(-1)
		}
		return z.SetInf(false)
	case x.Sign() == 0:
		return z.Set(x)
	}
	return z.SetFloat(expm1(newFloat(prec), arg(x, prec)))
}

// Exp2 sets z to 2**x and returns z. The result is exact for integer x.
//
// Special cases are the same as for Exp.
func Exp2(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.IsInf():
		if x.Signbit() {
			return z.SetInt64(0)
		}
		return z.SetInf(false)
	case x.Sign() == 0:
		return z.SetInt64(1)
	}
	a := arg(x, prec)
	if cmpAbs(a, overflow) > 0 {
		if a.Signbit() {
			return z.SetInt64(0)
		}
		return z.SetInf(false)
	}
	// 2**x = 2**n × e**(f×log(2)) with n the integer part of x
	i, _ := a.Int64()
	f := a.Sub(a, newFloat(prec).SetInt64(i))
	f.Mul(f, ln2(newFloat(prec+32)))
	t := exp(newFloat(prec), f)
	return z.SetFloat(t.SetMantExp(t, int(i)))
}

// exp sets z to e**x computed with about z.Prec() bits of relative accuracy
// and returns z. z and x must be distinct. Arguments with |x| > overflow
// yield +Inf or +0.
func exp(z, x *big.Float) *big.Float {
	if cmpAbs(x, overflow) > 0 {
		if x.Signbit() {
			return z.SetInt64(0)
		}
		return z.SetInf(false)
	}
	zp := z.Prec()
	r, k := reduceLn2(x, zp+32)
	expm1Reduced(z.SetPrec(zp+32), r)
	z.Add(z, one)
	return z.SetMantExp(z, k).SetPrec(zp)
}

// expm1 sets z to e**x - 1 computed with about z.Prec() bits of relative
// accuracy and returns z. z and x must be distinct. Arguments with
// |x| > overflow yield +Inf or -1.
func expm1(z, x *big.Float) *big.Float {
	if cmpAbs(x, overflow) > 0 {
		if x.Signbit() {
			return z.SetInt64(-1)
		}
		return z.SetInf(false)
	}
	zp := z.Prec()
	r, k := reduceLn2(x, zp+32)
	expm1Reduced(z.SetPrec(zp+32), r)
	if k != 0 {
		// |x| > log(2)/2: no significant cancellation
		z.Add(z, one)
		z.SetMantExp(z, k)
		z.Sub(z, one)
	}
	return z.SetPrec(zp)
}

// reduceLn2 returns r and k such that x = k×log(2) + r and |r| <= log(2)/2.
// r has precision wp.
func reduceLn2(x *big.Float, wp uint) (*big.Float, int) {
	l := ln2(newFloat(wp + 64))
	q := newFloat(wp).Quo(x, l)
	if q.Signbit() {
		q.Sub(q, half)
	} else {
		q.Add(q, half)
	}
	k, _ := q.Int64()
	if k == 0 {
		return newFloat(wp).Set(x), 0
	}
	r := newFloat(wp + 64).SetInt64(k)
	r.Sub(x, r.Mul(r, l))
	return r.SetPrec(wp), int(k)
}

// halvings is the number of times the argument of expm1Reduced is halved
// before summing the series.
const halvings = 12

// expm1Reduced sets z to e**r - 1 for |r| < 1 and returns z. z and r must be
// distinct.
func expm1Reduced(z, r *big.Float) *big.Float {
	p := z.Prec()
	if r.Sign() == 0 {
		return z.Set(r)
	}
	a := newFloat(p).Set(r)
	a.SetMantExp(a, -halvings)

	// e**a - 1 = a + a²/2! + a³/3! + ...
	term := newFloat(p).Set(a)
	n := newFloat(p)
	z.Set(a)
	for i := int64(2); ; i++ {
		term.Mul(term, a)
		term.Quo(term, n.SetInt64(i))
		if term.Sign() == 0 || term.MantExp(nil) < z.MantExp(nil)-int(p) {
			break
		}
		z.Add(z, term)
	}

	// e**2a - 1 = (e**a - 1) × (e**a - 1 + 2)
	t := newFloat(p)
	for i := 0; i < halvings; i++ {
		z.Mul(z, t.Add(z, two))
	}
	return z
}
