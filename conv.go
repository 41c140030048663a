// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float80

import (
	"math"
	"math/big"
	"math/bits"
)

// SetFloat64 sets z to the exact value of x and returns z. A NaN keeps its
// sign and payload and is quieted.
func (z *Float80) SetFloat64(x float64) *Float80 {
	b := math.Float64bits(x)
	return setIEEE(z, b>>63 != 0, int(b>>52&0x7ff), b&(1<<52-1), 52, 1023)
}

// SetFloat32 sets z to the exact value of x and returns z. A NaN keeps its
// sign and payload and is quieted.
func (z *Float80) SetFloat32(x float32) *Float80 {
	b := math.Float32bits(x)
	return setIEEE(z, b>>31 != 0, int(b>>23&0xff), uint64(b&(1<<23-1)), 23, 127)
}

// setIEEE widens an IEEE 754 binary value with a fbits-bit fraction and the
// given exponent bias.
func setIEEE(z *Float80, neg bool, e int, frac uint64, fbits uint, bias int) *Float80 {
	maxE := 2*bias + 1
	sw := signWord(neg)
	switch {
	case e == maxE:
		if frac == 0 {
			return infReg(neg).store(z)
		}
		return register{mant: jBit | qBit | frac<<(63-fbits), se: sw | expMask}.store(z)
	case e == 0:
		if frac == 0 {
			return zeroReg(neg).store(z)
		}
		// subnormal: frac × 2**(1-bias-fbits)
		s := bits.LeadingZeros64(frac)
		lead := 63 - s + 1 - bias - int(fbits)
		return register{mant: frac << s, se: sw | uint16(lead+Bias)}.store(z)
	}
	return register{mant: jBit | frac<<(63-fbits), se: sw | uint16(e-bias+Bias)}.store(z)
}

// SetInt64 sets z to the exact value of x and returns z.
func (z *Float80) SetInt64(x int64) *Float80 {
	if x < 0 {
		return z.setUint64(true, uint64(-x))
	}
	return z.setUint64(false, uint64(x))
}

// SetUint64 sets z to the exact value of x and returns z.
func (z *Float80) SetUint64(x uint64) *Float80 {
	return z.setUint64(false, x)
}

func (z *Float80) setUint64(neg bool, x uint64) *Float80 {
	if x == 0 {
		return zeroReg(false).store(z)
	}
	s := bits.LeadingZeros64(x)
	return register{mant: x << s, se: signWord(neg) | uint16(63-s+Bias)}.store(z)
}

// Float64 returns the float64 value nearest to x (ties to even) and the
// accuracy of the conversion. Results below the float64 normal range are
// subnormal or ±0; results beyond it are ±Inf. A NaN keeps its sign and the
// upper 51 bits of its payload, quieted; pseudo-NaNs and unnormals yield the
// default float64 NaN with the sign bit set.
func (x *Float80) Float64() (float64, Accuracy) {
	r := load(x)
	u := r.unpack()
	switch u.form {
	case zero:
		return math.Copysign(0, sign(u.neg)), Exact
	case inf:
		return math.Inf(int(sign(u.neg))), Exact
	case nan:
		r = r.quiet()
		b := uint64(r.se&signBit)<<48 | 0x7ff<<52 | r.mant>>11&(1<<52-1)
		return math.Float64frombits(b), Exact
	}
	var f big.Float
	v, acc := u.float(&f).Float64()
	return v, fromBigAcc(acc)
}

// Float32 returns the float32 value nearest to x (ties to even) and the
// accuracy of the conversion, following the rules of Float64.
func (x *Float80) Float32() (float32, Accuracy) {
	r := load(x)
	u := r.unpack()
	switch u.form {
	case zero:
		return float32(math.Copysign(0, sign(u.neg))), Exact
	case inf:
		return float32(math.Inf(int(sign(u.neg)))), Exact
	case nan:
		r = r.quiet()
		b := uint32(r.se&signBit)<<16 | 0xff<<23 | uint32(r.mant>>40)&(1<<23-1)
		return math.Float32frombits(b), Exact
	}
	var f big.Float
	v, acc := u.float(&f).Float32()
	return v, fromBigAcc(acc)
}

func sign(neg bool) float64 {
	if neg {
		return -1
	}
	return 1
}

// Int sets z to the integer resulting from truncating x toward zero and
// returns z and the accuracy of the conversion, following big.Float.Int.
// If z is nil a new big.Int is allocated. If x is an infinity, the result is
// (nil, Below) for +Inf and (nil, Above) for -Inf.
//
// Int panics with ErrNaN if x is a NaN.
func (x *Float80) Int(z *big.Int) (*big.Int, Accuracy) {
	var f big.Float
	i, acc := x.Float(&f).Int(z)
	return i, fromBigAcc(acc)
}

// Int64 returns the integer resulting from truncating x toward zero. If
// math.MinInt64 <= x <= math.MaxInt64, the result is Exact if x is an
// integer, and Above (x < 0) or Below (x > 0) otherwise. The result is
// (math.MinInt64, Above) for x < math.MinInt64, and (math.MaxInt64, Below)
// for x > math.MaxInt64.
//
// Int64 panics with ErrNaN if x is a NaN.
func (x *Float80) Int64() (int64, Accuracy) {
	var f big.Float
	i, acc := x.Float(&f).Int64()
	return i, fromBigAcc(acc)
}

// Uint64 returns the unsigned integer resulting from truncating x toward
// zero. If 0 <= x <= math.MaxUint64, the result is Exact if x is an integer
// and Below otherwise. The result is (0, Above) for x < 0, and
// (math.MaxUint64, Below) for x > math.MaxUint64.
//
// Uint64 panics with ErrNaN if x is a NaN.
func (x *Float80) Uint64() (uint64, Accuracy) {
	var f big.Float
	i, acc := x.Float(&f).Uint64()
	// big.Float.Uint64 reports Exact for some non-integers, such as 42.9
	if acc == big.Exact && !f.IsInt() {
		acc = big.Below
	}
	return i, fromBigAcc(acc)
}

// intIndefinite is the x87 "integer indefinite", stored by FISTTP for NaN,
// infinite and out of range operands.
const intIndefinite = 1 << 63

// TruncInt64 returns x truncated toward zero the way the x87 FISTTP
// instruction converts it: NaNs, infinities and values whose truncation does
// not fit an int64 yield math.MinInt64. Use Int64 for a checked conversion.
func (x *Float80) TruncInt64() int64 {
	t, ok := x.trunc()
	if !ok || !t.IsInt64() {
		return math.MinInt64
	}
	return t.Int64()
}

// TruncUint64 returns x truncated toward zero the way x86-64 C compilers
// convert a long double to an unsigned 64-bit integer:
//
//	[0, 2**64)          the truncated value
//	[2**64, +Inf]       0
//	[-2**63, 0)         the truncated value modulo 2**64
//	NaN and the rest    1<<63
//
// The behavior outside [0, 2**64) is platform specific and must not be
// relied upon. Use Uint64 for a checked conversion.
func (x *Float80) TruncUint64() uint64 {
	t, ok := x.trunc()
	switch {
	case !ok:
		if x.IsInf() && !x.Signbit() {
			return 0
		}
		return intIndefinite
	case t.Sign() >= 0 && t.IsUint64():
		return t.Uint64()
	case t.Sign() > 0:
		// x - 2**63 overflows FISTTP, the indefinite is then xored with 1<<63
		return 0
	case t.IsInt64():
		return uint64(t.Int64())
	}
	return intIndefinite
}

// trunc returns x truncated toward zero, or false if x is not finite.
func (x *Float80) trunc() (*big.Int, bool) {
	u := load(x).unpack()
	if u.form == nan || u.form == inf {
		return nil, false
	}
	var f big.Float
	t, _ := u.float(&f).Int(nil)
	return t, true
}
