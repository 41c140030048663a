// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Float80-to-string conversion functions.

package float80

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxDigits is the number of significant decimal digits that always
// identifies a Float80 uniquely.
const maxDigits = 21

// Text converts the floating-point number x to a string according to the
// given format and precision prec, following the C printf conventions. The
// format is one of:
//
//	'e'	-d.dddde±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'E'	-d.ddddE±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'f'	-ddddd.dddd, no exponent
//	'F'	same as 'f'
//	'g'	like 'e' for large exponents, like 'f' otherwise
//	'G'	like 'g' with 'E'
//
// The precision prec controls the number of digits (excluding the exponent)
// printed by the 'e', 'E', 'f' and 'F' formats. For 'e', 'E', 'f' and 'F' it
// is the number of digits after the decimal point. For 'g' and 'G' it is the
// total number of significant digits, 0 meaning 1, and trailing zeros are
// removed. A negative precision selects the smallest number of decimal
// digits necessary to represent the value x uniquely.
//
// Infinities and NaNs are printed as "inf", "-inf", "nan" and "-nan" ("INF",
// "NAN"... for the upper case formats).
//
// An unknown format is printed as '%' followed by the format character.
func (x *Float80) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, 32), format, prec))
}

// String formats x like x.Text('g', 10).
// (String must be called explicitly, Float80.Format does not support %s verb.)
func (x *Float80) String() string {
	return x.Text('g', 10)
}

// Append appends to buf the string form of the floating-point number x, as
// generated by x.Text, and returns the extended buffer.
func (x *Float80) Append(buf []byte, fmt byte, prec int) []byte {
	return x.appendC(buf, fmt, prec, fmtFlags{})
}

// fmtFlags are the printf flags that change the digits of a conversion.
type fmtFlags struct {
	sharp bool // keep the decimal point and trailing zeros
	plus  bool // always print a sign
	space bool // print a space in place of a plus sign
}

func (x *Float80) appendC(buf []byte, format byte, prec int, fl fmtFlags) []byte {
	u := load(x).unpack()
	upper := format == 'E' || format == 'F' || format == 'G'
	switch lower(format) {
	case 'e', 'f', 'g':
	default:
		return append(buf, '%', format)
	}

	switch {
	case u.neg:
		buf = append(buf, '-')
	case fl.plus:
		buf = append(buf, '+')
	case fl.space:
		buf = append(buf, ' ')
	}
	switch u.form {
	case nan:
		return appendWord(buf, "nan", upper)
	case inf:
		return appendWord(buf, "inf", upper)
	}

	u.neg = false
	var f big.Float
	u.float(&f)
	shortest := prec < 0

	switch lower(format) {
	case 'e':
		var digs []byte
		var exp int
		if shortest {
			digs, exp = u.shortest()
		} else {
			digs, exp = decimalDigits(&f, prec+1)
		}
		return appendExp(buf, digs, exp, fl.sharp, upper)

	case 'f':
		if shortest {
			digs, exp := u.shortest()
			return appendFixed(buf, digs, exp+1, max(len(digs)-exp-1, 0), fl.sharp)
		}
		buf = append(buf, f.Text('f', prec)...)
		if prec == 0 && fl.sharp {
			buf = append(buf, '.')
		}
		return buf
	}

	// %g
	var (
		digs  []byte
		exp   int
		eprec int
	)
	if shortest {
		digs, exp = u.shortest()
		eprec = 6
	} else {
		if prec == 0 {
			prec = 1
		}
		eprec = prec
		digs, exp = decimalDigits(&f, prec)
		if !fl.sharp {
			digs = trimZeros(digs)
		}
	}
	if -4 <= exp && exp < eprec {
		return appendFixed(buf, digs, exp+1, max(len(digs)-exp-1, 0), fl.sharp)
	}
	return appendExp(buf, digs, exp, fl.sharp, upper)
}

func appendWord(buf []byte, w string, upper bool) []byte {
	if upper {
		w = strings.ToUpper(w)
	}
	return append(buf, w...)
}

// decimalDigits returns the n > 0 significant decimal digits of |f|,
// correctly rounded with ties to even, and the decimal exponent of the
// first one.
func decimalDigits(f *big.Float, n int) (digs []byte, exp int) {
	s := f.Text('e', n-1)
	i := strings.IndexByte(s, 'e')
	exp, _ = strconv.Atoi(s[i+1:])
	digs = make([]byte, 0, n)
	for _, c := range []byte(s[:i]) {
		if isDigit(c) {
			digs = append(digs, c)
		}
	}
	return digs, exp
}

// shortest returns the shortest decimal digit string that parses back to
// the non-negative finite u, and the decimal exponent of its first digit.
// Among the shortest strings, the one nearest to u is returned.
//
// Any number strictly between the midpoints to the neighbours of u rounds to
// u, and so do the midpoints themselves if the significand of u is even. All
// three values are scaled once to integers holding maxDigits+1 decimal
// digits; candidates of n digits are then read off by integer division.
func (u unpacked) shortest() (digs []byte, exp int) {
	if u.form == zero {
		return []byte{'0'}, 0
	}
	m, e := u.mant, u.exp
	if e < MinExp {
		m >>= uint(MinExp - e)
		e = MinExp
	}
	// u = v×2**e2, midpoints at l×2**e2 and h×2**e2
	e2 := e - (MantBits - 1) - 2
	v := new(big.Int).SetUint64(m)
	v.Lsh(v, 2)
	h := new(big.Int).Add(v, big.NewInt(2))
	l := new(big.Int)
	if m == jBit && e > MinExp {
		// the gap below a power of two is half the gap above
		l.Sub(v, big.NewInt(1))
	} else {
		l.Sub(v, big.NewInt(2))
	}
	inclusive := m&1 == 0

	// k is the decimal exponent of h×2**e2
	k := int(math.Floor(float64(h.BitLen()-1+e2) * math.Log10(2)))
	var qh, qv, ql big.Int
	var xh, xv, xl bool
	lim := pow10(new(big.Int), maxDigits+1)
	for {
		xh = scale10(&qh, h, e2, k-maxDigits)
		switch {
		case qh.Cmp(lim) >= 0:
			k++
			continue
		case new(big.Int).Mul(&qh, big.NewInt(10)).Cmp(lim) < 0:
			k--
			continue
		}
		break
	}
	xv = scale10(&qv, v, e2, k-maxDigits)
	xl = scale10(&ql, l, e2, k-maxDigits)

	var c, lo, hi, r big.Int
	div := new(big.Int).Set(lim)
	ten := big.NewInt(10)
	for n := 1; n <= maxDigits; n++ {
		// candidates are c×10**(k-n+1) with lo <= c <= hi
		div.Quo(div, ten)
		lo.QuoRem(&ql, div, &r)
		if !(xl && r.Sign() == 0 && inclusive) {
			lo.Add(&lo, big.NewInt(1))
		}
		hi.QuoRem(&qh, div, &r)
		if xh && r.Sign() == 0 && !inclusive {
			hi.Sub(&hi, big.NewInt(1))
		}
		if lo.Cmp(&hi) > 0 {
			continue
		}
		// nearest to v, ties to even
		c.QuoRem(&qv, div, &r)
		r.Lsh(&r, 1)
		switch d := r.Cmp(div); {
		case d > 0, d == 0 && !xv, d == 0 && c.Bit(0) == 1:
			c.Add(&c, big.NewInt(1))
		}
		switch {
		case c.Cmp(&lo) < 0:
			c.Set(&lo)
		case c.Cmp(&hi) > 0:
			c.Set(&hi)
		}
		digs = c.Append(nil, 10)
		return trimZeros(digs), k - n + len(digs)
	}
	// not reached: maxDigits digits always identify u
	digs = qv.Append(nil, 10)
	return trimZeros(digs[:maxDigits]), k
}

// scale10 sets z to the integer part of x×2**e2/10**p and reports whether
// the division is exact.
func scale10(z, x *big.Int, e2, p int) bool {
	num := new(big.Int).Set(x)
	den := big.NewInt(1)
	if e2 >= 0 {
		num.Lsh(num, uint(e2))
	} else {
		den.Lsh(den, uint(-e2))
	}
	if p >= 0 {
		den.Mul(den, pow10(new(big.Int), p))
	} else {
		num.Mul(num, pow10(new(big.Int), -p))
	}
	var r big.Int
	z.QuoRem(num, den, &r)
	return r.Sign() == 0
}

func trimZeros(digs []byte) []byte {
	i := len(digs)
	for i > 1 && digs[i-1] == '0' {
		i--
	}
	return digs[:i]
}

// appendExp appends d.ddd e±dd, where digs are the significant digits and
// exp the decimal exponent of the first one.
func appendExp(buf, digs []byte, exp int, sharp, upper bool) []byte {
	buf = append(buf, digs[0])
	if len(digs) > 1 || sharp {
		buf = append(buf, '.')
		buf = append(buf, digs[1:]...)
	}
	if upper {
		buf = append(buf, 'E')
	} else {
		buf = append(buf, 'e')
	}
	if exp < 0 {
		buf = append(buf, '-')
		exp = -exp
	} else {
		buf = append(buf, '+')
	}
	if exp < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, int64(exp), 10)
}

// appendFixed appends %f formatted digits: digs are the significant digits,
// dp the position of the decimal point relative to the first one and frac
// the number of digits to print after the point.
func appendFixed(buf, digs []byte, dp, frac int, sharp bool) []byte {
	if dp > 0 {
		m := min(len(digs), dp)
		buf = append(buf, digs[:m]...)
		for ; m < dp; m++ {
			buf = append(buf, '0')
		}
	} else {
		buf = append(buf, '0')
	}
	if frac > 0 || sharp {
		buf = append(buf, '.')
		for i := 0; i < frac; i++ {
			ch := byte('0')
			if j := dp + i; 0 <= j && j < len(digs) {
				ch = digs[j]
			}
			buf = append(buf, ch)
		}
	}
	return buf
}

// pad pads buf to width. Padding is done with spaces on the left, spaces on
// the right if left is set, or zeros after the sign if zeros is set.
func pad(buf []byte, width int, left, zeros bool) []byte {
	n := width - len(buf)
	if n <= 0 {
		return buf
	}
	switch {
	case left:
		return append(buf, strings.Repeat(" ", n)...)
	case zeros:
		i := 0
		if len(buf) > 0 && (buf[0] == '-' || buf[0] == '+' || buf[0] == ' ') {
			i = 1
		}
		out := make([]byte, 0, width)
		out = append(out, buf[:i]...)
		out = append(out, strings.Repeat("0", n)...)
		return append(out, buf[i:]...)
	}
	return append([]byte(strings.Repeat(" ", n)), buf...)
}

// Format implements fmt.Formatter. It accepts the formats 'e', 'E', 'f',
// 'F', 'g', 'G' and 'v' ('v' is 'g'). Format also supports the flags '+',
// '-', ' ', '#' and '0', minimum field width and precision. If no precision
// is given, 'e', 'E', 'f' and 'F' use 6 digits and 'g', 'G' and 'v' use the
// smallest number of digits necessary to represent the value uniquely.
func (x *Float80) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6 // default precision for 'e', 'f'
	}

	switch format {
	case 'e', 'E', 'f', 'F':
		// nothing to do
	case 'v':
		format = 'g'
		fallthrough
	case 'g', 'G':
		if !hasPrec {
			prec = -1
		}
	default:
		fmt.Fprintf(s, "%%!%c(*float80.Float80=%s)", format, x.String())
		return
	}

	fl := fmtFlags{sharp: s.Flag('#'), plus: s.Flag('+'), space: s.Flag(' ')}
	buf := x.appendC(make([]byte, 0, 32), byte(format), prec, fl)
	width, _ := s.Width()
	_, _ = s.Write(pad(buf, width, s.Flag('-'), s.Flag('0') && x.IsFinite()))
}
