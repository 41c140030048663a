// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// A constCache holds a mathematical constant computed to some precision and
// recomputes it when a higher precision is requested. Values returned by get
// are never modified afterwards and may be shared by concurrent readers.
type constCache struct {
	mu      atomix.Uint64
	v       *big.Float
	compute func(prec uint) *big.Float
}

func (c *constCache) get(prec uint) *big.Float {
	sw := spin.Wait{}
	for !c.mu.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
	v := c.v
	if v == nil || v.Prec() < prec {
		// grow by at least a half to amortize recomputations
		if v != nil {
			prec = max(prec, v.Prec()+v.Prec()/2)
		}
		v = c.compute(prec)
		c.v = v
	}
	c.mu.StoreRelease(0)
	return v
}

var (
	_pi   = constCache{compute: computePi}
	_ln2  = constCache{compute: computeLn2}
	_ln10 = constCache{compute: computeLn10}
)

// pi sets z to π rounded to z's precision and returns z.
func pi(z *big.Float) *big.Float {
	return z.Set(_pi.get(z.Prec()))
}

// ln2 sets z to log(2) rounded to z's precision and returns z.
func ln2(z *big.Float) *big.Float {
	return z.Set(_ln2.get(z.Prec()))
}

// ln10 sets z to log(10) rounded to z's precision and returns z.
func ln10(z *big.Float) *big.Float {
	return z.Set(_ln10.get(z.Prec()))
}

// converged reports whether a and b agree to about prec bits.
func converged(a, b, t *big.Float, prec uint) bool {
	t.Sub(a, b)
	return t.Sign() == 0 || t.MantExp(nil) < a.MantExp(nil)-int(prec)
}

// computePi computes π with the Gauss-Legendre algorithm to prec bits of
// precision.
func computePi(prec uint) *big.Float {
	var (
		// the last few bits are lost to rounding in the loop
		pp = prec + 64
		a  = newFloat(pp).SetUint64(1)
		u  = newFloat(pp)
		b  = newFloat(pp).Sqrt(half)
		t  = newFloat(pp).Set(quarter)
		p  = newFloat(pp).SetUint64(1)
		z  = newFloat(pp)
	)
	for {
		u.Set(a)                 // a_n
		a.Mul(z.Add(a, b), half) // a_n+1
		b.Sqrt(z.Mul(u, b))      // b_n+1

		// t = t - p×(a_n - a_n+1)²
		z.Sub(u, a)
		t.Sub(t, z.Mul(z.Mul(z, z), p))

		if converged(a, b, z, pp-16) {
			break
		}
		p.Add(p, p)
	}
	z.Add(a, b)
	a.Mul(z, z)
	t.Mul(t, four)
	return z.Quo(a, t).SetPrec(prec)
}

// computeLn2 computes log(2) to prec bits of precision.
//
// For s > 2**(p/2), log(s) = π / 2agm(1, 4/s) with a relative error below
// 2**-p. With s = 2**n, log(2) is that value divided by n.
func computeLn2(prec uint) *big.Float {
	pp := prec + 64
	n := int(pp/2) + 16
	a := newFloat(pp).SetUint64(1)
	b := newFloat(pp).SetUint64(1)
	b.SetMantExp(b, 2-n) // SetMantExp takes the precision of its argument
	z := agm(newFloat(pp), a, b)
	z.Mul(z, newFloat(pp).SetInt64(2*int64(n)))
	return z.Quo(pi(newFloat(pp)), z).SetPrec(prec)
}

func computeLn10(prec uint) *big.Float {
	z := newFloat(prec + 32)
	return log(z, newFloat(prec+32).SetUint64(10)).SetPrec(prec)
}

// agm sets z to the arithmetic-geometric mean of a and b and returns z.
// a, b and z must be distinct. a and b are not preserved.
func agm(z, a, b *big.Float) *big.Float {
	prec := z.Prec()
	t := newFloat(prec)
	for {
		t.Set(a)
		a.Mul(z.Add(a, b), half) // a_n+1 = (a_n+b_n)/2
		b.Sqrt(z.Mul(t, b))      // b_n+1 = sqrt(a_n × b_n)
		if converged(a, b, z, prec-16) {
			break
		}
	}
	return z.Set(a)
}
