// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float80

import "math/big"

// workPrec is the precision of intermediate results. It must exceed the
// 64-bit significand by at least two bits for the single rounding in
// roundFloat to be correct.
const workPrec = 128

// roundInt returns the register nearest to (-1)**neg × m × 2**e, m > 0,
// rounding ties to even.
//
// m × 2**e may itself be an approximation of the exact result: acc tells on
// which side of the exact value it lies. It only matters when m × 2**e is
// exactly halfway between two representable values; the rounding is then
// directed toward the exact value instead of to even.
func roundInt(neg bool, m *big.Int, e int, acc big.Accuracy) register {
	n := m.BitLen()
	if e+n-1 > MaxExp {
		return infReg(neg)
	}
	// exponent of the lowest significand bit of the result
	lsb := e + n - MantBits
	if lsb < minLSB {
		lsb = minLSB
	}
	shift := lsb - e
	var mant uint64
	if shift <= 0 {
		mant = new(big.Int).Lsh(m, uint(-shift)).Uint64()
	} else {
		mant = new(big.Int).Rsh(m, uint(shift)).Uint64()
		if m.Bit(shift-1) != 0 {
			up := m.TrailingZeroBits() < uint(shift-1)
			if !up {
				// halfway
				if acc == big.Exact {
					up = mant&1 != 0
				} else {
					up = (acc == big.Below) != neg
				}
			}
			if up {
				mant++
				if mant == 0 {
					mant = jBit
					lsb++
				}
			}
		}
	}
	switch {
	case mant == 0:
		return zeroReg(neg)
	case mant&jBit == 0:
		return register{mant: mant, se: signWord(neg)}
	}
	be := lsb + MantBits - 1 + Bias
	if be >= expMask {
		return infReg(neg)
	}
	return register{mant: mant, se: signWord(neg) | uint16(be)}
}

// roundFloat returns the register nearest to x. acc is the accuracy of x
// relative to the exact result it approximates; x must have been computed
// with at least 66 bits of precision.
func roundFloat(x *big.Float, acc big.Accuracy) register {
	neg := x.Signbit()
	switch {
	case x.IsInf():
		return infReg(neg)
	case x.Sign() == 0:
		return zeroReg(neg)
	}
	var mant big.Float
	exp := x.MantExp(&mant)
	p := int(x.MinPrec())
	mant.SetMantExp(&mant, p)
	m, _ := mant.Int(nil)
	return roundInt(neg, m.Abs(m), exp-p, acc)
}

// float sets z to the exact value of the non-NaN u and returns z. z's
// precision is raised to 64 bits if lower.
func (u unpacked) float(z *big.Float) *big.Float {
	if z.Prec() < MantBits {
		z.SetPrec(MantBits)
	}
	switch u.form {
	case zero:
		z.SetInt64(0)
		if u.neg {
			z.Neg(z)
		}
	case inf:
		z.SetInf(u.neg)
	default:
		z.SetUint64(u.mant)
		z.SetMantExp(z, u.exp-(MantBits-1))
		if u.neg {
			z.Neg(z)
		}
	}
	return z
}

// SetFloat sets z to the value of x rounded to nearest even and returns z.
// The accuracy of x (x.Acc()) is taken into account for values exactly
// halfway between two Float80 values, so that a big.Float computed at a
// higher precision with big.ToZero rounds correctly.
func (z *Float80) SetFloat(x *big.Float) *Float80 {
	return roundFloat(x, x.Acc()).store(z)
}

// Float sets z to the exact value of x and returns z. If z is nil, a new
// big.Float is allocated. z's precision is raised to 64 if it is lower.
//
// Float panics with ErrNaN if x is a NaN.
func (x *Float80) Float(z *big.Float) *big.Float {
	if z == nil {
		z = new(big.Float)
	}
	u := load(x).unpack()
	if u.form == nan {
		panic(ErrNaN{"float80: Float called on NaN"})
	}
	return u.float(z)
}

// SetInt sets z to the value of x rounded to nearest even and returns z.
func (z *Float80) SetInt(x *big.Int) *Float80 {
	if x.Sign() == 0 {
		return zeroReg(false).store(z)
	}
	return roundInt(x.Sign() < 0, new(big.Int).Abs(x), 0, big.Exact).store(z)
}

// SetRat sets z to the value of x rounded to nearest even and returns z.
func (z *Float80) SetRat(x *big.Rat) *Float80 {
	if x.Sign() == 0 {
		return zeroReg(false).store(z)
	}
	a := new(big.Float).SetInt(x.Num())
	b := new(big.Float).SetInt(x.Denom())
	q := newFloat(workPrec).Quo(a, b)
	return z.SetFloat(q)
}

// newFloat returns a big.Float of precision prec, rounding toward zero.
func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetMode(big.ToZero)
}
