// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float80

import "encoding/binary"

// Mathematical constants, correctly rounded.
var (
	E       = constant(0x4000, 0xadf85458a2bb4a9b)
	Pi      = constant(0x4000, 0xc90fdaa22168c235)
	Pi_2    = constant(0x3fff, 0xc90fdaa22168c235) // π/2
	Pi_3    = constant(0x3fff, 0x860a91c16b9b2c23) // π/3
	Pi_4    = constant(0x3ffe, 0xc90fdaa22168c235) // π/4
	Pi_6    = constant(0x3ffe, 0x860a91c16b9b2c23) // π/6
	Sqrt2   = constant(0x3fff, 0xb504f333f9de6484)
	Sqrt1_2 = constant(0x3ffe, 0xb504f333f9de6484) // 1/√2
	Ln2     = constant(0x3ffe, 0xb17217f7d1cf79ac)
	Log2E   = constant(0x3fff, 0xb8aa3b295c17f0bc) // 1/Ln2
	Ln10    = constant(0x4000, 0x935d8dddaaa8ac17)
	Log10E  = constant(0x3ffd, 0xde5bd8a937287195) // 1/Ln10
)

// Special values and limits.
var (
	Inf    = constant(expMask, jBit)
	NegInf = constant(signBit|expMask, jBit)
	// NaN is the positive quiet NaN of C's NAN macro. Invalid operations
	// produce its negative counterpart, the x87 real indefinite.
	NaN = constant(expMask, jBit|qBit)

	MaxValue        = constant(expMask-1, 1<<64-1) // largest finite value, about 1.19e4932
	SmallestNormal  = constant(1, jBit)            // 2**-16382, about 3.36e-4932
	SmallestNonzero = constant(0, 1)               // 2**-16445, about 3.65e-4951
)

// constant encodes an image without going through the native register.
func constant(se uint16, mant uint64) (f Float80) {
	binary.LittleEndian.PutUint64(f[:8], mant)
	binary.LittleEndian.PutUint16(f[8:], se)
	return f
}
