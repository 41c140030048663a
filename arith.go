// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float80

import "math/big"

// propagate returns the quieted first NaN among the operands, if any.
func propagate(rs ...register) (register, bool) {
	for _, r := range rs {
		if r.unpack().form == nan {
			return r.quiet(), true
		}
	}
	return register{}, false
}

// Add sets z to the rounded sum x+y and returns z. The sum of infinities
// with opposite signs is the indefinite NaN.
func (z *Float80) Add(x, y *Float80) *Float80 {
	return z.add(load(x), load(y), false)
}

// Sub sets z to the rounded difference x-y and returns z.
func (z *Float80) Sub(x, y *Float80) *Float80 {
	return z.add(load(x), load(y), true)
}

func (z *Float80) add(rx, ry register, sub bool) *Float80 {
	if r, ok := propagate(rx, ry); ok {
		return r.store(z)
	}
	if sub {
		ry.se ^= signBit
	}
	ux, uy := rx.unpack(), ry.unpack()
	switch {
	case ux.form == inf && uy.form == inf:
		if ux.neg != uy.neg {
			return indefinite.store(z)
		}
		return infReg(ux.neg).store(z)
	case ux.form == inf:
		return infReg(ux.neg).store(z)
	case uy.form == inf:
		return infReg(uy.neg).store(z)
	}
	var a, b big.Float
	s := newFloat(workPrec)
	s.Add(ux.float(&a), uy.float(&b))
	return roundFloat(s, s.Acc()).store(z)
}

// Mul sets z to the rounded product x*y and returns z. The product of a zero
// and an infinity is the indefinite NaN.
func (z *Float80) Mul(x, y *Float80) *Float80 {
	rx, ry := load(x), load(y)
	if r, ok := propagate(rx, ry); ok {
		return r.store(z)
	}
	ux, uy := rx.unpack(), ry.unpack()
	neg := ux.neg != uy.neg
	switch {
	case ux.form == inf || uy.form == inf:
		if ux.form == zero || uy.form == zero {
			return indefinite.store(z)
		}
		return infReg(neg).store(z)
	case ux.form == zero || uy.form == zero:
		return zeroReg(neg).store(z)
	}
	var a, b big.Float
	p := newFloat(workPrec)
	p.Mul(ux.float(&a), uy.float(&b))
	return roundFloat(p, p.Acc()).store(z)
}

// Quo sets z to the rounded quotient x/y and returns z. A nonzero finite
// value divided by ±0 is an infinity; 0/0 and Inf/Inf are the indefinite
// NaN.
func (z *Float80) Quo(x, y *Float80) *Float80 {
	rx, ry := load(x), load(y)
	if r, ok := propagate(rx, ry); ok {
		return r.store(z)
	}
	ux, uy := rx.unpack(), ry.unpack()
	neg := ux.neg != uy.neg
	switch {
	case ux.form == inf && uy.form == inf, ux.form == zero && uy.form == zero:
		return indefinite.store(z)
	case ux.form == inf, uy.form == zero:
		return infReg(neg).store(z)
	case uy.form == inf, ux.form == zero:
		return zeroReg(neg).store(z)
	}
	var a, b big.Float
	q := newFloat(workPrec)
	q.Quo(ux.float(&a), uy.float(&b))
	return roundFloat(q, q.Acc()).store(z)
}

// FMA sets z to x*y+u computed with a single rounding and returns z.
func (z *Float80) FMA(x, y, u *Float80) *Float80 {
	rx, ry, ru := load(x), load(y), load(u)
	if r, ok := propagate(rx, ry, ru); ok {
		return r.store(z)
	}
	ux, uy, uu := rx.unpack(), ry.unpack(), ru.unpack()
	neg := ux.neg != uy.neg
	if ux.form == inf || uy.form == inf {
		switch {
		case ux.form == zero || uy.form == zero:
			return indefinite.store(z)
		case uu.form == inf && uu.neg != neg:
			return indefinite.store(z)
		}
		return infReg(neg).store(z)
	}
	if uu.form == inf {
		return infReg(uu.neg).store(z)
	}
	var a, b, c big.Float
	p := newFloat(2 * MantBits)
	p.Mul(ux.float(&a), uy.float(&b)) // exact
	s := newFloat(3 * MantBits)
	s.Add(p, uu.float(&c))
	return roundFloat(s, s.Acc()).store(z)
}

// Sqrt sets z to the rounded square root of x and returns z. The square
// root of -0 is -0; the square root of any other negative value is the
// indefinite NaN.
func (z *Float80) Sqrt(x *Float80) *Float80 {
	rx := load(x)
	ux := rx.unpack()
	switch {
	case ux.form == nan:
		return rx.quiet().store(z)
	case ux.form == zero:
		return rx.store(z)
	case ux.neg:
		return indefinite.store(z)
	case ux.form == inf:
		return rx.store(z)
	}
	var a big.Float
	ux.float(&a)
	s := new(big.Float).SetPrec(3 * MantBits).Sqrt(&a)
	sq := new(big.Float).SetPrec(6 * MantBits).Mul(s, s) // exact
	acc := big.Accuracy(sq.Cmp(&a))
	return roundFloat(s, acc).store(z)
}

// Rem sets z to the remainder of x/y truncated toward zero (C fmod) and
// returns z. The result is exact, has the sign of x and a magnitude less
// than |y|. Rem(±Inf, y) and Rem(x, ±0) are the indefinite NaN;
// Rem(x, ±Inf) is x for finite x.
func (z *Float80) Rem(x, y *Float80) *Float80 {
	rx, ry := load(x), load(y)
	if r, ok := propagate(rx, ry); ok {
		return r.store(z)
	}
	ux, uy := rx.unpack(), ry.unpack()
	switch {
	case ux.form == inf || uy.form == zero:
		return indefinite.store(z)
	case uy.form == inf || ux.form == zero:
		return ux.normal(rx).store(z)
	}
	// align both operands on the smaller exponent and reduce
	e := min(ux.exp, uy.exp)
	a := new(big.Int).SetUint64(ux.mant)
	a.Lsh(a, uint(ux.exp-e))
	b := new(big.Int).SetUint64(uy.mant)
	b.Lsh(b, uint(uy.exp-e))
	a.Rem(a, b)
	if a.Sign() == 0 {
		return zeroReg(ux.neg).store(z)
	}
	return roundInt(ux.neg, a, e-(MantBits-1), big.Exact).store(z)
}

// normal returns the canonical encoding of the finite x decoded from r:
// pseudo-denormals are rewritten with the exponent of their value.
func (x unpacked) normal(r register) register {
	if x.form != finite || r.exp() != 0 || r.mant&jBit == 0 {
		return r
	}
	return register{mant: r.mant, se: signWord(x.neg) | 1}
}

// Min sets z to the smaller of x and y and returns z. If exactly one operand
// is a NaN, the other one is the result; -0 is smaller than +0.
func (z *Float80) Min(x, y *Float80) *Float80 {
	return z.minmax(x, y, -1)
}

// Max sets z to the larger of x and y and returns z. If exactly one operand
// is a NaN, the other one is the result; +0 is larger than -0.
func (z *Float80) Max(x, y *Float80) *Float80 {
	return z.minmax(x, y, +1)
}

func (z *Float80) minmax(x, y *Float80, want int) *Float80 {
	rx, ry := load(x), load(y)
	ux, uy := rx.unpack(), ry.unpack()
	switch {
	case ux.form == nan && uy.form == nan:
		return rx.quiet().store(z)
	case ux.form == nan:
		return ry.store(z)
	case uy.form == nan:
		return rx.store(z)
	}
	c := x.Cmp(y)
	if c == 0 {
		// ±0 or equal values: order by sign
		if ux.neg != uy.neg {
			if (want < 0) == ux.neg {
				return rx.store(z)
			}
			return ry.store(z)
		}
		return rx.store(z)
	}
	if c == want {
		return rx.store(z)
	}
	return ry.store(z)
}
