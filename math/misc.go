// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides elementary functions for float80.Float80 values.
//
// Functions follow the receiver convention of the float80 package: they set
// z to the result, rounded to nearest even, and return z. Arguments may alias
// z. Special values (infinities, zeros, NaNs) are handled as specified by
// Annex F of the C99 standard; invalid operations return the x87 indefinite
// NaN and NaN operands are propagated quieted.
//
// Results are computed with math/big at a precision well above 64 bits and
// rounded once.
package math

import (
	"math/big"

	"github.com/db47h/float80"
)

// prec is the working precision of intermediate results.
const prec = 192

// constants
var (
	one     = new(big.Float).SetUint64(1)
	two     = new(big.Float).SetUint64(2)
	four    = new(big.Float).SetUint64(4)
	half    = new(big.Float).SetFloat64(0.5)
	quarter = new(big.Float).SetFloat64(0.25)
)

// overflow bounds |x| of the arguments of exponentials. Beyond it the result
// overflows or underflows any Float80.
var overflow = new(big.Float).SetUint64(1 << 20)

// newFloat returns a new big.Float with precision prec.
func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// arg returns the exact value of the finite x as a big.Float of precision p.
func arg(x *float80.Float80, p uint) *big.Float {
	return x.Float(newFloat(p))
}

// cmpAbs compares |x| and |y|.
func cmpAbs(x, y *big.Float) int {
	var ax, ay big.Float
	return ax.Abs(x).Cmp(ay.Abs(y))
}

// invalid sets z to the indefinite NaN and returns z.
func invalid(z *float80.Float80) *float80.Float80 {
	return z.SetNaN(true)
}

// propagate sets z to the first NaN of x and y, quieted, and returns z and
// true, or z and false if neither is a NaN.
func propagate(z, x, y *float80.Float80) (*float80.Float80, bool) {
	switch {
	case x.IsNaN():
		return z.Quiet(x), true
	case y.IsNaN():
		return z.Quiet(y), true
	}
	return z, false
}

// pow sets z to x**n and returns z. z's precision must be high enough for
// the result to be exact, or the caller is responsible for rounding z.
func pow(z, x *big.Float, n uint64) *big.Float {
	if n == 0 {
		return z.SetUint64(1)
	}
	t := newFloat(z.Prec())
	y := newFloat(z.Prec()).SetUint64(1)
	z.Set(x)

	for n > 1 {
		if n%2 != 0 {
			y.Mul(t.Set(y), z)
		}
		z.Mul(t.Set(z), t)
		if z.IsInf() || z.Sign() == 0 {
			return z
		}
		n /= 2
	}
	if y.Cmp(one) == 0 {
		return z
	}
	return z.Mul(t.Set(z), y)
}

// oddSeries sets z to the sum of t**(2k+1) / (2k+1), k >= 0, with
// alternating signs if alt is set (atan) and constant signs otherwise
// (atanh), and returns z. |t| must be below 1; convergence is fast for small
// |t|. z and t must be distinct.
func oddSeries(z, t *big.Float, alt bool) *big.Float {
	p := z.Prec()
	t2 := newFloat(p).Mul(t, t)
	if alt {
		t2.Neg(t2)
	}
	pw := newFloat(p).Set(t)
	term := newFloat(p)
	k := newFloat(p)
	z.Set(t)
	for n := int64(3); ; n += 2 {
		pw.Mul(pw, t2)
		term.Quo(pw, k.SetInt64(n))
		if term.Sign() == 0 || term.MantExp(nil) < z.MantExp(nil)-int(p) {
			return z
		}
		z.Add(z, term)
	}
}
