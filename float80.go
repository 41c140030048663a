// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float80

import (
	"math/bits"
	"unsafe"
)

// A nonzero finite Float80 represents a signed binary floating-point number
//
//	sign × mantissa × 2**(exponent - 16383 - 63)
//
// with a 64-bit mantissa whose most significant bit (the integer bit J) is
// stored explicitly. The Float80 value is the raw 10-byte little-endian image
// of an x87 register:
//
//	bytes 0..7   mantissa
//	bytes 8..9   sign (bit 15) and biased exponent (bits 0..14)
//
// Two Float80 values compare equal with == if and only if their images are
// identical; use Cmp or Eq for numeric comparison.
type Float80 [Size]byte

// Format parameters.
const (
	Size     = 10    // size of a Float80 image in bytes
	MantBits = 64    // significand bits, integer bit included
	Bias     = 16383 // exponent bias
	MaxExp   = 16383 // largest unbiased exponent of a finite value
	MinExp   = -16382

	expMask = 0x7fff
	signBit = 0x8000
	jBit    = 1 << 63
	qBit    = 1 << 62

	// exponent of the least significant mantissa bit of subnormals.
	minLSB = 1 - Bias - (MantBits - 1)
)

// A register is the in-memory form of an extended value on the host: the
// significand followed by the sign and biased exponent, padded by the
// compiler to the alignment of uint64 (16 bytes on 64-bit hosts, like a long
// double slot in the x86-64 ABI).
type register struct {
	mant uint64
	se   uint16
}

// load reinterprets the image of x as a register. Together with store, this
// is the only place where bytes are reinterpreted; it is only sound once
// VerifyLayout has accepted the host.
func load(x *Float80) (r register) {
	copy((*[Size]byte)(unsafe.Pointer(&r))[:], x[:])
	return r
}

func (r register) store(z *Float80) *Float80 {
	copy(z[:], (*[Size]byte)(unsafe.Pointer(&r))[:])
	return z
}

func (r register) neg() bool { return r.se&signBit != 0 }
func (r register) exp() int  { return int(r.se & expMask) }

func signWord(neg bool) uint16 {
	if neg {
		return signBit
	}
	return 0
}

func zeroReg(neg bool) register { return register{se: signWord(neg)} }
func infReg(neg bool) register  { return register{mant: jBit, se: signWord(neg) | expMask} }

// indefinite is the NaN produced by invalid operations on the x87.
var indefinite = register{mant: jBit | qBit, se: signBit | expMask}

// quiet returns r with its quiet bit set if r is a NaN proper, and the
// indefinite NaN if r is a pseudo-NaN, pseudo-Inf or unnormal.
func (r register) quiet() register {
	if r.exp() == expMask && r.mant&jBit != 0 {
		r.mant |= qBit
		return r
	}
	return indefinite
}

// A form value describes the class of a decoded value.
type form byte

// The form value order is relevant - do not change!
const (
	zero form = iota
	finite
	inf
	nan
)

// unpacked is a decoded register. A finite unpacked value is normalized:
//
//	mant × 2**(exp - 63), with mant >= 1<<63
type unpacked struct {
	form form
	neg  bool
	mant uint64
	exp  int
}

func (r register) unpack() (u unpacked) {
	u.neg = r.neg()
	e := r.exp()
	switch {
	case e == expMask:
		if r.mant == jBit {
			u.form = inf
		} else {
			u.form = nan
		}
	case e == 0:
		if r.mant == 0 {
			return
		}
		// subnormal or pseudo-denormal
		s := bits.LeadingZeros64(r.mant)
		u.form = finite
		u.mant = r.mant << s
		u.exp = MinExp - s
	case r.mant&jBit == 0:
		// unnormal
		u.form = nan
	default:
		u.form = finite
		u.mant = r.mant
		u.exp = e - Bias
	}
	return
}

// pack encodes a finite normalized value that is known to be representable
// as a normal number.
func (u unpacked) pack() register {
	switch u.form {
	case zero:
		return zeroReg(u.neg)
	case inf:
		return infReg(u.neg)
	case nan:
		return indefinite
	}
	return register{mant: u.mant, se: signWord(u.neg) | uint16(u.exp+Bias)}
}

// NewFloat80 allocates and returns a new Float80 set to x.
func NewFloat80(x float64) *Float80 {
	return new(Float80).SetFloat64(x)
}

// Set sets z to x and returns z. The image is copied verbatim.
func (z *Float80) Set(x *Float80) *Float80 {
	*z = *x
	return z
}

// Neg sets z to x with its sign bit flipped and returns z. It is a pure sign
// manipulation: NaNs keep their payload.
func (z *Float80) Neg(x *Float80) *Float80 {
	r := load(x)
	r.se ^= signBit
	return r.store(z)
}

// Abs sets z to |x| (x with its sign bit cleared) and returns z.
func (z *Float80) Abs(x *Float80) *Float80 {
	r := load(x)
	r.se &^= signBit
	return r.store(z)
}

// SetInf sets z to -Inf if signbit is set, or +Inf otherwise, and returns z.
func (z *Float80) SetInf(signbit bool) *Float80 {
	return infReg(signbit).store(z)
}

// SetNaN sets z to the quiet NaN with an empty payload and the given sign,
// and returns z. SetNaN(true) is the x87 real indefinite.
func (z *Float80) SetNaN(signbit bool) *Float80 {
	return register{mant: jBit | qBit, se: signWord(signbit) | expMask}.store(z)
}

// Quiet sets z to x and returns z. If x is a NaN, its quiet bit is set;
// pseudo-NaNs, pseudo-infinities and unnormals become the indefinite NaN.
func (z *Float80) Quiet(x *Float80) *Float80 {
	r := load(x)
	if r.unpack().form == nan {
		r = r.quiet()
	}
	return r.store(z)
}

// SetBits sets z to the value with the given sign, biased exponent (only the
// low 15 bits are used) and significand, and returns z.
func (z *Float80) SetBits(neg bool, exp uint16, mant uint64) *Float80 {
	return register{mant: mant, se: signWord(neg) | exp&expMask}.store(z)
}

// Bits returns the sign, biased exponent and significand of x.
func (x *Float80) Bits() (neg bool, exp uint16, mant uint64) {
	r := load(x)
	return r.neg(), uint16(r.exp()), r.mant
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x *Float80) Sign() int {
	u := load(x).unpack()
	if u.form == zero || u.form == nan {
		return 0
	}
	if u.neg {
		return -1
	}
	return 1
}

// Signbit reports whether the sign bit of x is set, including for -0 and
// negative NaNs.
func (x *Float80) Signbit() bool {
	return load(x).neg()
}

// IsNaN reports whether x is a NaN. Pseudo-NaNs, pseudo-infinities and
// unnormals are invalid operands on the x87 and are reported as NaN.
func (x *Float80) IsNaN() bool {
	return load(x).unpack().form == nan
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float80) IsInf() bool {
	return load(x).unpack().form == inf
}

// IsFinite reports whether x is neither infinite nor NaN.
func (x *Float80) IsFinite() bool {
	f := load(x).unpack().form
	return f == zero || f == finite
}

// IsNormal reports whether x is a normal number: not zero, subnormal,
// infinite or NaN.
func (x *Float80) IsNormal() bool {
	r := load(x)
	e := r.exp()
	return e != 0 && e != expMask && r.mant&jBit != 0
}

// IsInt reports whether x is an integer. ±Inf and NaN values are not
// integers.
func (x *Float80) IsInt() bool {
	u := load(x).unpack()
	switch u.form {
	case zero:
		return true
	case finite:
		if u.exp < 0 {
			return false
		}
		return u.exp >= 63 || u.mant<<(u.exp+1) == 0
	}
	return false
}

// Unordered is the result of Cmp when either operand is a NaN.
const Unordered = 2

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//	Unordered if x or y is a NaN
func (x *Float80) Cmp(y *Float80) int {
	ux, uy := load(x).unpack(), load(y).unpack()
	if ux.form == nan || uy.form == nan {
		return Unordered
	}
	sx, sy := ux.ord(), uy.ord()
	switch {
	case sx < sy:
		return -1
	case sx > sy:
		return +1
	case sx == 0:
		return 0
	}
	c := ux.ucmp(uy)
	if sx < 0 {
		return -c
	}
	return c
}

// Eq reports whether x and y are numerically equal. NaN is not equal to
// anything, itself included; -0 equals +0.
func (x *Float80) Eq(y *Float80) bool {
	return x.Cmp(y) == 0
}

// ord classifies x as -1, 0 or +1.
func (x unpacked) ord() int {
	if x.form == zero {
		return 0
	}
	if x.neg {
		return -1
	}
	return +1
}

// ucmp compares the magnitudes of two non-zero, non-NaN values.
func (x unpacked) ucmp(y unpacked) int {
	switch {
	case x.form != y.form:
		if x.form < y.form {
			return -1
		}
		return +1
	case x.form == inf:
		return 0
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return +1
	case x.mant < y.mant:
		return -1
	case x.mant > y.mant:
		return +1
	}
	return 0
}
