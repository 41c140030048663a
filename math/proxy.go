// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/float80"

// FMA sets z to x * y + u, computed with only one rounding, and returns z.
//
// This function is a proxy for z.FMA(x, y, u).
func FMA(z, x, y, u *float80.Float80) *float80.Float80 {
	return z.FMA(x, y, u)
}

// Sqrt sets z to the rounded square root of x and returns z. Sqrt of a
// negative nonzero value is the indefinite NaN.
//
// This function is a proxy for z.Sqrt(x).
func Sqrt(z, x *float80.Float80) *float80.Float80 {
	return z.Sqrt(x)
}

// Mod sets z to the remainder of x / y truncated toward zero, with the sign
// of x, and returns z.
//
// This function is a proxy for z.Rem(x, y).
func Mod(z, x, y *float80.Float80) *float80.Float80 {
	return z.Rem(x, y)
}

// Min is a proxy for z.Min(x, y).
func Min(z, x, y *float80.Float80) *float80.Float80 {
	return z.Min(x, y)
}

// Max is a proxy for z.Max(x, y).
func Max(z, x, y *float80.Float80) *float80.Float80 {
	return z.Max(x, y)
}
