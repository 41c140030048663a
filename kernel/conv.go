// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"

	"github.com/db47h/float80"
)

// defaultPrec is the precision of C's %g when none is given.
const defaultPrec = 6

// Print formats x like the C format "%*.*Lg" with the given width and
// precision, and returns the text and its length in bytes.
//
// precision is the number of significant digits: 0 means 1 and a negative
// precision means 6. A negative width left-justifies the text in a field of
// -width bytes.
func (k *Kernel) Print(x *float80.Float80, width, precision int) (string, int) {
	k.guard()
	if precision < 0 {
		precision = defaultPrec
	}
	s := fmt.Sprintf("%*.*g", width, precision, x)
	return s, len(s)
}

// Parse sets out to the value of the longest prefix of s that is a valid
// number, as described in (*float80.Float80).Parse, and returns the number
// of bytes consumed. If no conversion can be performed, out is set to +0 and
// Parse returns 0.
func (k *Kernel) Parse(out *float80.Float80, s string) int {
	k.guard()
	return out.Parse(s)
}

// ConvertFromF32 sets out to the exact value of v.
func (k *Kernel) ConvertFromF32(out *float80.Float80, v float32) {
	k.guard()
	out.SetFloat32(v)
}

// ConvertFromF64 sets out to the exact value of v.
func (k *Kernel) ConvertFromF64(out *float80.Float80, v float64) {
	k.guard()
	out.SetFloat64(v)
}

// ConvertFromI64 sets out to the exact value of v.
func (k *Kernel) ConvertFromI64(out *float80.Float80, v int64) {
	k.guard()
	out.SetInt64(v)
}

// ConvertFromU64 sets out to the exact value of v.
func (k *Kernel) ConvertFromU64(out *float80.Float80, v uint64) {
	k.guard()
	out.SetUint64(v)
}

// ConvertIntoF64 returns x rounded to the nearest float64.
func (k *Kernel) ConvertIntoF64(x *float80.Float80) float64 {
	k.guard()
	v, _ := x.Float64()
	return v
}

// ConvertIntoF32 returns x rounded to the nearest float32.
func (k *Kernel) ConvertIntoF32(x *float80.Float80) float32 {
	k.guard()
	v, _ := x.Float32()
	return v
}

// ConvertIntoI64 returns x truncated toward zero. The result for NaNs,
// infinities and out of range values is platform specific; see
// (*float80.Float80).TruncInt64.
func (k *Kernel) ConvertIntoI64(x *float80.Float80) int64 {
	k.guard()
	return x.TruncInt64()
}

// ConvertIntoU64 returns x truncated toward zero. The result for NaNs,
// infinities and out of range values is platform specific; see
// (*float80.Float80).TruncUint64.
func (k *Kernel) ConvertIntoU64(x *float80.Float80) uint64 {
	k.guard()
	return x.TruncUint64()
}
