// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"

	"github.com/db47h/float80"
)

// Beyond this magnitude, sinh and cosh overflow.
var hyperOverflow = new(big.Float).SetUint64(11400)

// tanhOne is the magnitude beyond which tanh rounds to ±1.
var tanhOne = new(big.Float).SetUint64(64)

// Sinh sets z to the hyperbolic sine of x and returns z.
//
// Special cases are:
//
//	Sinh(±0) = ±0
//	Sinh(±Inf) = ±Inf
//	Sinh(NaN) = NaN
func Sinh(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.IsInf() || x.Sign() == 0:
		return z.Set(x)
	}
	a := arg(x, prec)
	neg := a.Signbit()
	if cmpAbs(a, hyperOverflow) > 0 {
		return z.SetInf(neg)
	}
	// sinh(|x|) = (E + E/(E+1)) / 2 with E = e**|x| - 1
	e := expm1(newFloat(prec+32), a.Abs(a))
	t := newFloat(prec + 32).Add(e, one)
	t.Quo(e, t)
	e.Add(e, t)
	e.SetMantExp(e, -1)
	if neg {
		e.Neg(e)
	}
	return z.SetFloat(e)
}

// Cosh sets z to the hyperbolic cosine of x and returns z.
//
// Special cases are:
//
//	Cosh(±0) = 1
//	Cosh(±Inf) = +Inf
//	Cosh(NaN) = NaN
func Cosh(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.IsInf():
		return z.SetInf(false)
	case x.Sign() == 0:
		return z.SetInt64(1)
	}
	a := arg(x, prec)
	if cmpAbs(a, hyperOverflow) > 0 {
		return z.SetInf(false)
	}
	// cosh(x) = 1 + E²/2(E+1) with E = e**|x| - 1
	e := expm1(newFloat(prec+32), a.Abs(a))
	t := newFloat(prec + 32).Add(e, one)
	t.SetMantExp(t, 1)
	e.Quo(e.Mul(e, e), t)
	return z.SetFloat(e.Add(e, one))
}

// Tanh sets z to the hyperbolic tangent of x and returns z.
//
// Special cases are:
//
//	Tanh(±0) = ±0
//	Tanh(±Inf) = ±1
//	Tanh(NaN) = NaN
func Tanh(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.Sign() == 0:
		return z.Set(x)
	}
	neg := x.Signbit()
	a := arg(x, prec)
	if x.IsInf() || cmpAbs(a, tanhOne) > 0 {
		z.SetInt64(1)
		if neg {
			z.Neg(z)
		}
		return z
	}
	// tanh(|x|) = E/(E+2) with E = e**2|x| - 1
	a.Abs(a)
	e := expm1(newFloat(prec+32), a.SetMantExp(a, 1))
	t := newFloat(prec+32).Add(e, two)
	e.Quo(e, t)
	if neg {
		e.Neg(e)
	}
	return z.SetFloat(e)
}

// Asinh sets z to the inverse hyperbolic sine of x and returns z.
//
// Special cases are:
//
//	Asinh(±0) = ±0
//	Asinh(±Inf) = ±Inf
//	Asinh(NaN) = NaN
func Asinh(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.IsInf() || x.Sign() == 0:
		return z.Set(x)
	}
	a := arg(x, prec+32)
	neg := a.Signbit()
	a.Abs(a)
	// asinh(a) = log1p(a + a²/(1 + sqrt(1 + a²)))
	t := newFloat(prec+32).Mul(a, a)
	s := newFloat(prec+32).Add(t, one)
	s.Sqrt(s)
	t.Quo(t, s.Add(s, one))
	r := log1p(newFloat(prec), t.Add(t, a))
	if neg {
		r.Neg(r)
	}
	return z.SetFloat(r)
}

// Acosh sets z to the inverse hyperbolic cosine of x and returns z.
//
// Special cases are:
//
//	Acosh(+Inf) = +Inf
//	Acosh(1) = +0
//	Acosh(x) = NaN if x < 1
//	Acosh(NaN) = NaN
func Acosh(z, x *float80.Float80) *float80.Float80 {
	if x.IsNaN() {
		return z.Quiet(x)
	}
	if x.IsInf() && !x.Signbit() {
		return z.SetInf(false)
	}
	if x.Sign() <= 0 || x.IsInf() {
		return invalid(z)
	}
	a := arg(x, prec+32)
	switch a.Cmp(one) {
	case -1:
		return invalid(z)
	case 0:
		return z.SetInt64(0)
	}
	// acosh(x) = log1p(u + sqrt(u(x+1))) with u = x-1
	u := newFloat(prec+32).Sub(a, one)
	t := newFloat(prec+32).Add(a, one)
	t.Mul(t, u)
	t.Sqrt(t)
	return z.SetFloat(log1p(newFloat(prec), t.Add(t, u)))
}

// Atanh sets z to the inverse hyperbolic tangent of x and returns z.
//
// Special cases are:
//
//	Atanh(±1) = ±Inf
//	Atanh(±0) = ±0
//	Atanh(x) = NaN if x < -1 or x > 1
//	Atanh(NaN) = NaN
func Atanh(z, x *float80.Float80) *float80.Float80 {
	switch {
	case x.IsNaN():
		return z.Quiet(x)
	case x.Sign() == 0:
		return z.Set(x)
	case x.IsInf():
		return invalid(z)
	}
	a := arg(x, prec+32)
	neg := a.Signbit()
	switch cmpAbs(a, one) {
	case 1:
		return invalid(z)
	case 0:
		return z.SetInf(neg)
	}
	// atanh(a) = log1p(2a/(1-a)) / 2
	a.Abs(a)
	t := newFloat(prec+32).Sub(one, a)
	t.Quo(a.SetMantExp(a, 1), t)
	r := log1p(newFloat(prec), t)
	r.SetMantExp(r, -1)
	if neg {
		r.Neg(r)
	}
	return z.SetFloat(r)
}
