// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float80

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// FromInteger returns a new Float80 set to the exact value of x.
func FromInteger[T constraints.Integer](x T) *Float80 {
	if x < 0 {
		return new(Float80).SetInt64(int64(x))
	}
	return new(Float80).SetUint64(uint64(x))
}

// FromFloat returns a new Float80 set to the exact value of x.
func FromFloat[T constraints.Float](x T) *Float80 {
	if unsafe.Sizeof(x) == 4 {
		return new(Float80).SetFloat32(float32(x))
	}
	return new(Float80).SetFloat64(float64(x))
}

// ToFloat returns the value of type T nearest to x.
func ToFloat[T constraints.Float](x *Float80) T {
	var t T
	if unsafe.Sizeof(t) == 4 {
		f, _ := x.Float32()
		return T(f)
	}
	f, _ := x.Float64()
	return T(f)
}
