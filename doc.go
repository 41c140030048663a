// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package float80 implements the x87 80-bit extended precision floating-point
format (the C long double of x86 hosts).

A Float80 is the 10-byte little-endian register image of a value: a 64-bit
significand with an explicit integer bit, followed by a sign bit and a 15-bit
exponent biased by 16383. Go has no native extended precision type, so all
arithmetic is carried out exactly (or at a much higher working precision) with
math/big and rounded once, to nearest even, into the 64-bit significand.
Subnormal results and overflow to ±Inf follow the x87 rules.

The zero value for a Float80 corresponds to +0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

    x := new(Float80)  // x is a *Float80 of value 0

Alternatively, new Float80 values can be allocated and initialized with the
function:

    func NewFloat80(f float64) *Float80

More flexibility is provided with explicit setters, for instance:

    z := new(Float80).SetUint64(123)    // z := 123.0

Setters, numeric operations and predicates are represented as methods of the
form:

    func (z *Float80) SetV(v V) *Float80                // z = v
    func (z *Float80) Unary(x *Float80) *Float80        // z = unary x
    func (z *Float80) Binary(x, y *Float80) *Float80    // z = x binary y
    func (x *Float80) Pred() P                          // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z in
that case); if it is one of the operands x or y it may be safely overwritten.
For instance, given three *Float80 values a, b and c, the invocation

    c.Add(a, b)

computes the sum a + b and stores the result in c, overwriting whatever value
was held in c before. Operations permit aliasing of parameters, so it is
perfectly ok to write

    sum.Add(sum, x)

to accumulate values x in a sum.

Unlike big.Float, operations never panic on invalid operands: as on the x87,
an invalid operation (Inf-Inf, 0×Inf, 0/0, sqrt of a negative number...)
produces the "real indefinite" NaN, and NaN operands propagate quieted.

Before any value is touched, package initialization verifies that the host
lays out the native register the way the 10-byte image expects (see
VerifyLayout). A mismatch panics with a *LayoutError.

Elementary functions (exp, log, trigonometric, hyperbolic, pow...) live in the
float80/math package. The float80/kernel package exposes the whole catalog
behind an explicitly verified Kernel, with in-place operations that overwrite
their first operand.

Finally, *Float80 satisfies the fmt package's Scanner interface for scanning
and the Formatter interface for formatted printing.
*/
package float80
