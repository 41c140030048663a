// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float80

type rintMode byte

const (
	rintTrunc rintMode = iota
	rintFloor
	rintCeil
	rintRound // ties away from zero
)

// Trunc sets z to the integer part of x (rounded toward zero) and returns z.
func (z *Float80) Trunc(x *Float80) *Float80 { return z.rint(x, rintTrunc) }

// Floor sets z to the greatest integer value less than or equal to x and
// returns z.
func (z *Float80) Floor(x *Float80) *Float80 { return z.rint(x, rintFloor) }

// Ceil sets z to the least integer value greater than or equal to x and
// returns z.
func (z *Float80) Ceil(x *Float80) *Float80 { return z.rint(x, rintCeil) }

// Round sets z to the integer nearest to x, rounding half-way cases away from
// zero, and returns z.
func (z *Float80) Round(x *Float80) *Float80 { return z.rint(x, rintRound) }

// rint works on the bits of x: the fractional significand bits are masked
// off, and the integer part is bumped by one unit when the mode requires
// it. The sign of x is always preserved, so that Ceil(-0.5) is -0.
func (z *Float80) rint(x *Float80, mode rintMode) *Float80 {
	r := load(x)
	u := r.unpack()
	switch u.form {
	case nan:
		return r.quiet().store(z)
	case zero, inf:
		return r.store(z)
	}
	if u.exp >= MantBits-1 {
		return u.normal(r).store(z)
	}
	if u.exp < 0 {
		// 0 < |x| < 1
		up := false
		switch mode {
		case rintFloor:
			up = u.neg
		case rintCeil:
			up = !u.neg
		case rintRound:
			up = u.exp == -1
		}
		if up {
			return register{mant: jBit, se: signWord(u.neg) | Bias}.store(z)
		}
		return zeroReg(u.neg).store(z)
	}
	fbits := uint(MantBits - 1 - u.exp)
	mask := uint64(1)<<fbits - 1
	frac := u.mant & mask
	u.mant &^= mask
	if frac == 0 {
		return u.pack().store(z)
	}
	up := false
	switch mode {
	case rintFloor:
		up = u.neg
	case rintCeil:
		up = !u.neg
	case rintRound:
		up = frac >= 1<<(fbits-1)
	}
	if up {
		u.mant += 1 << fbits
		if u.mant == 0 {
			u.mant = jBit
			u.exp++
		}
	}
	return u.pack().store(z)
}

// Modf sets z to the fractional part of x and i to its integral part, and
// returns z. Both parts have the sign of x, so that their sum is x. If x is
// an infinity, the fractional part is a zero; if x is a NaN, both parts are.
func (z *Float80) Modf(i, x *Float80) *Float80 {
	r := load(x)
	var ip, fp Float80
	switch u := r.unpack(); u.form {
	case nan:
		ip.Quiet(x)
		fp = ip
	case inf:
		ip = *x
		zeroReg(u.neg).store(&fp)
	default:
		ip.Trunc(x)
		fp.Sub(x, &ip)
		if fp.Sign() == 0 {
			zeroReg(u.neg).store(&fp)
		}
	}
	*i = ip
	*z = fp
	return z
}
