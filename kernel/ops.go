// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/db47h/float80"
	"github.com/db47h/float80/math"
)

type (
	binaryOp func(z, x, y *float80.Float80) *float80.Float80
	unaryOp  func(z, x *float80.Float80) *float80.Float80
)

func (k *Kernel) binary(op binaryOp, first, second *float80.Float80) {
	k.guard()
	op(first, first, second)
}

func (k *Kernel) unary(op unaryOp, first *float80.Float80) {
	k.guard()
	op(first, first)
}

// Add sets first to the rounded sum first+second.
func (k *Kernel) Add(first, second *float80.Float80) {
	k.binary((*float80.Float80).Add, first, second)
}

// Sub sets first to the rounded difference first-second.
func (k *Kernel) Sub(first, second *float80.Float80) {
	k.binary((*float80.Float80).Sub, first, second)
}

// Mul sets first to the rounded product first×second.
func (k *Kernel) Mul(first, second *float80.Float80) {
	k.binary((*float80.Float80).Mul, first, second)
}

// Div sets first to the rounded quotient first/second.
func (k *Kernel) Div(first, second *float80.Float80) {
	k.binary((*float80.Float80).Quo, first, second)
}

// Mod sets first to the remainder of first/second truncated toward zero
// (C fmod). The result is exact and has the sign of first.
func (k *Kernel) Mod(first, second *float80.Float80) {
	k.binary((*float80.Float80).Rem, first, second)
}

// Min sets first to the smaller of first and second. A NaN operand loses to
// a number.
func (k *Kernel) Min(first, second *float80.Float80) {
	k.binary((*float80.Float80).Min, first, second)
}

// Max sets first to the larger of first and second. A NaN operand loses to a
// number.
func (k *Kernel) Max(first, second *float80.Float80) {
	k.binary((*float80.Float80).Max, first, second)
}

// Pow sets first to first**second.
func (k *Kernel) Pow(first, second *float80.Float80) {
	k.binary(math.Pow, first, second)
}

// Hypot sets first to Sqrt(first*first + second*second) without undue
// overflow or underflow.
func (k *Kernel) Hypot(first, second *float80.Float80) {
	k.binary(math.Hypot, first, second)
}

// Atan2 sets first to the arc tangent of first/second, using the signs of
// both to determine the quadrant.
func (k *Kernel) Atan2(first, second *float80.Float80) {
	k.binary(math.Atan2, first, second)
}

// Sqrt sets first to its square root.
func (k *Kernel) Sqrt(first *float80.Float80) { k.unary((*float80.Float80).Sqrt, first) }

// Abs sets first to its absolute value.
func (k *Kernel) Abs(first *float80.Float80) { k.unary((*float80.Float80).Abs, first) }

// Signum flips the sign of first. It is the same operation as Neg, not the
// sign function.
func (k *Kernel) Signum(first *float80.Float80) { k.unary((*float80.Float80).Neg, first) }

// Neg flips the sign of first.
func (k *Kernel) Neg(first *float80.Float80) { k.unary((*float80.Float80).Neg, first) }

// Ceil rounds first toward +Inf.
func (k *Kernel) Ceil(first *float80.Float80) { k.unary((*float80.Float80).Ceil, first) }

// Floor rounds first toward -Inf.
func (k *Kernel) Floor(first *float80.Float80) { k.unary((*float80.Float80).Floor, first) }

// Round rounds first to the nearest integer, ties away from zero.
func (k *Kernel) Round(first *float80.Float80) { k.unary((*float80.Float80).Round, first) }

// Trunc rounds first toward zero.
func (k *Kernel) Trunc(first *float80.Float80) { k.unary((*float80.Float80).Trunc, first) }

// Exp sets first to e**first.
func (k *Kernel) Exp(first *float80.Float80) { k.unary(math.Exp, first) }

// ExpM1 sets first to e**first - 1, accurate for first near zero.
func (k *Kernel) ExpM1(first *float80.Float80) { k.unary(math.Expm1, first) }

// Exp2 sets first to 2**first.
func (k *Kernel) Exp2(first *float80.Float80) { k.unary(math.Exp2, first) }

// Ln sets first to its natural logarithm.
func (k *Kernel) Ln(first *float80.Float80) { k.unary(math.Log, first) }

// Ln1p sets first to the natural logarithm of 1+first, accurate for
// first near zero.
func (k *Kernel) Ln1p(first *float80.Float80) { k.unary(math.Log1p, first) }

// Log2 sets first to its binary logarithm.
func (k *Kernel) Log2(first *float80.Float80) { k.unary(math.Log2, first) }

// Log10 sets first to its decimal logarithm.
func (k *Kernel) Log10(first *float80.Float80) { k.unary(math.Log10, first) }

// Cbrt sets first to its cube root.
func (k *Kernel) Cbrt(first *float80.Float80) { k.unary(math.Cbrt, first) }

// Sin sets first to its sine.
func (k *Kernel) Sin(first *float80.Float80) { k.unary(math.Sin, first) }

// Cos sets first to its cosine.
func (k *Kernel) Cos(first *float80.Float80) { k.unary(math.Cos, first) }

// Tan sets first to its tangent.
func (k *Kernel) Tan(first *float80.Float80) { k.unary(math.Tan, first) }

// Asin sets first to its arc sine, in [-π/2, π/2].
func (k *Kernel) Asin(first *float80.Float80) { k.unary(math.Asin, first) }

// Acos sets first to its arc cosine, in [0, π].
func (k *Kernel) Acos(first *float80.Float80) { k.unary(math.Acos, first) }

// Atan sets first to its arc tangent, in [-π/2, π/2].
func (k *Kernel) Atan(first *float80.Float80) { k.unary(math.Atan, first) }

// Sinh sets first to its hyperbolic sine.
func (k *Kernel) Sinh(first *float80.Float80) { k.unary(math.Sinh, first) }

// Cosh sets first to its hyperbolic cosine.
func (k *Kernel) Cosh(first *float80.Float80) { k.unary(math.Cosh, first) }

// Tanh sets first to its hyperbolic tangent.
func (k *Kernel) Tanh(first *float80.Float80) { k.unary(math.Tanh, first) }

// Asinh sets first to its inverse hyperbolic sine.
func (k *Kernel) Asinh(first *float80.Float80) { k.unary(math.Asinh, first) }

// Acosh sets first to its inverse hyperbolic cosine.
func (k *Kernel) Acosh(first *float80.Float80) { k.unary(math.Acosh, first) }

// Atanh sets first to its inverse hyperbolic tangent.
func (k *Kernel) Atanh(first *float80.Float80) { k.unary(math.Atanh, first) }

// MulAdd sets first to first×second+third computed with a single rounding.
func (k *Kernel) MulAdd(first, second, third *float80.Float80) {
	k.guard()
	first.FMA(first, second, third)
}

// Modf splits first into its integral part, stored in iptr, and its
// fractional part, stored in first. Both parts have the sign of first.
func (k *Kernel) Modf(first, iptr *float80.Float80) {
	k.guard()
	first.Modf(iptr, first)
}

// IsFinite reports whether x is neither an infinity nor a NaN.
func (k *Kernel) IsFinite(x *float80.Float80) bool {
	k.guard()
	return x.IsFinite()
}

// IsNaN reports whether x is a NaN.
func (k *Kernel) IsNaN(x *float80.Float80) bool {
	k.guard()
	return x.IsNaN()
}

// IsInf reports whether x is an infinity.
func (k *Kernel) IsInf(x *float80.Float80) bool {
	k.guard()
	return x.IsInf()
}

// IsNormal reports whether x is a normal number.
func (k *Kernel) IsNormal(x *float80.Float80) bool {
	k.guard()
	return x.IsNormal()
}

// Signbit returns the sign bit of x: 1 for negative values, -0 and NaNs with
// the sign bit set, 0 otherwise.
func (k *Kernel) Signbit(x *float80.Float80) uint {
	k.guard()
	if x.Signbit() {
		return 1
	}
	return 0
}

// Eq reports whether first == second. NaNs are not equal to anything and
// -0 equals +0.
func (k *Kernel) Eq(first, second *float80.Float80) bool {
	k.guard()
	return first.Eq(second)
}

// Cmp compares first and second and returns -1, 0 or +1, or
// float80.Unordered if either is a NaN.
func (k *Kernel) Cmp(first, second *float80.Float80) int {
	k.guard()
	return first.Cmp(second)
}
