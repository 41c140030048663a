// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string-to-Float80 conversion functions.

package float80

import (
	"fmt"
	"math/big"
	"strconv"
	"unicode"
)

// Decimal magnitudes beyond which a value is certainly infinite or zero:
// MaxValue is about 1.19e4932 and half of the smallest subnormal about
// 1.82e-4951.
const (
	maxDecExp = 4934
	minDecExp = -4951

	// exponents are saturated to this magnitude while scanning
	expLimit = 1 << 30
)

// Parse sets z to the value of the longest prefix of s that is a valid
// floating-point number and returns the length of that prefix, following the
// conventions of the C strtold function:
//
//   - leading white space is skipped and an optional sign accepted;
//   - a decimal number is a non-empty sequence of digits optionally
//     containing a decimal point, followed by an optional exponent made of
//     'e' or 'E', an optional sign and a non-empty sequence of digits;
//   - a hexadecimal number is "0x" or "0X" followed by a non-empty sequence
//     of hexadecimal digits optionally containing a point, followed by an
//     optional binary exponent made of 'p' or 'P', an optional sign and a
//     non-empty sequence of decimal digits;
//   - "inf", "infinity" and "nan", ignoring case, optionally followed for
//     "nan" by a parenthesized sequence of letters, digits and underscores.
//
// The result is correctly rounded to nearest even; values too large are
// ±Inf and values too small ±0. If no conversion can be performed, z is set
// to +0 and Parse returns 0.
func (z *Float80) Parse(s string) (end int) {
	r, end := parse(s)
	r.store(z)
	return end
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be a floating-point number of the same format as accepted
// by Parse, without leading white space, and must be consumed entirely. If
// the operation failed, the value of z is undefined but the returned value
// is nil.
func (z *Float80) SetString(s string) (*Float80, bool) {
	if s == "" || isSpace(s[0]) {
		return nil, false
	}
	r, end := parse(s)
	if end != len(s) {
		return nil, false
	}
	r.store(z)
	return z, true
}

// ParseFloat80 is like z.SetString(s) with z a new Float80, but reports
// failures with a *strconv.NumError.
func ParseFloat80(s string) (*Float80, error) {
	z, ok := new(Float80).SetString(s)
	if !ok {
		return nil, &strconv.NumError{Func: "ParseFloat80", Num: s, Err: strconv.ErrSyntax}
	}
	return z, nil
}

func parse(s string) (register, int) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	switch n := prefixFold(s[i:], "infinity"); {
	case n == len("infinity"):
		return infReg(neg), i + n
	case n >= len("inf"):
		return infReg(neg), i + len("inf")
	}
	if prefixFold(s[i:], "nan") == len("nan") {
		i += len("nan")
		if i < len(s) && s[i] == '(' {
			j := i + 1
			for j < len(s) && (isDigit(s[j]) || s[j] == '_' || 'a' <= lower(s[j]) && lower(s[j]) <= 'z') {
				j++
			}
			if j < len(s) && s[j] == ')' {
				i = j + 1
			}
		}
		return register{mant: jBit | qBit, se: signWord(neg) | expMask}, i
	}

	if i+1 < len(s) && s[i] == '0' && lower(s[i+1]) == 'x' {
		if r, end := parseHex(neg, s, i+2); end > 0 {
			return r, end
		}
		// "0x" not followed by a hexadecimal number: only "0" is consumed
		return zeroReg(neg), i + 1
	}

	// decimal mantissa
	var digs []byte
	dexp := 0
	sawDigits, sawDot := false, false
	j := i
	for ; j < len(s); j++ {
		c := s[j]
		switch {
		case isDigit(c):
			sawDigits = true
			if c == '0' && len(digs) == 0 {
				// leading zero
				if sawDot {
					dexp--
				}
				continue
			}
			digs = append(digs, c)
			if sawDot {
				dexp--
			}
			continue
		case c == '.' && !sawDot:
			sawDot = true
			continue
		}
		break
	}
	if !sawDigits {
		return zeroReg(false), 0
	}
	if e, end := scanExponent(s, j, 'e'); end > j {
		dexp = satAdd(dexp, e)
		j = end
	}
	return decimalReg(neg, digs, dexp), j
}

// parseHex parses the hexadecimal number starting at s[i], after the "0x"
// prefix. It returns an end of 0 if there are no hexadecimal digits.
func parseHex(neg bool, s string, i int) (register, int) {
	m := new(big.Int)
	bexp := 0
	sawDigits, sawDot := false, false
	j := i
	for ; j < len(s); j++ {
		c := s[j]
		if v := hexVal(c); v >= 0 {
			sawDigits = true
			if m.Sign() == 0 && v == 0 {
				if sawDot {
					bexp -= 4
				}
				continue
			}
			m.Lsh(m, 4)
			m.Or(m, big.NewInt(int64(v)))
			if sawDot {
				bexp -= 4
			}
			continue
		}
		if c == '.' && !sawDot {
			sawDot = true
			continue
		}
		break
	}
	if !sawDigits {
		return register{}, 0
	}
	if e, end := scanExponent(s, j, 'p'); end > j {
		bexp = satAdd(bexp, e)
		j = end
	}
	if m.Sign() == 0 {
		return zeroReg(neg), j
	}
	return roundInt(neg, m, bexp, big.Exact), j
}

// scanExponent scans an exponent introduced by the letter ex (or its upper
// case) at s[i]. It returns the exponent value, saturated to ±expLimit, and
// the end of the exponent, or i if there is no valid exponent.
func scanExponent(s string, i int, ex byte) (int, int) {
	if i >= len(s) || lower(s[i]) != ex {
		return 0, i
	}
	j := i + 1
	neg := false
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		neg = s[j] == '-'
		j++
	}
	start := j
	e := 0
	for ; j < len(s) && isDigit(s[j]); j++ {
		if e < expLimit {
			e = e*10 + int(s[j]-'0')
		}
	}
	if j == start {
		return 0, i
	}
	e = min(e, expLimit)
	if neg {
		e = -e
	}
	return e, j
}

func satAdd(a, b int) int {
	return max(min(a+b, expLimit), -expLimit)
}

// decimalReg returns the register nearest to (-1)**neg × digs × 10**dexp,
// where digs is a string of decimal digits without leading zeros.
func decimalReg(neg bool, digs []byte, dexp int) register {
	switch {
	case len(digs) == 0:
		return zeroReg(neg)
	case len(digs)+dexp > maxDecExp:
		return infReg(neg)
	case len(digs)+dexp < minDecExp:
		return zeroReg(neg)
	}
	m, _ := new(big.Int).SetString(string(digs), 10)
	if dexp >= 0 {
		m.Mul(m, pow10(new(big.Int), dexp))
		return roundInt(neg, m, 0, big.Exact)
	}
	a := new(big.Float).SetInt(m)
	b := new(big.Float).SetInt(pow10(new(big.Int), -dexp))
	q := newFloat(workPrec).Quo(a, b)
	r := roundFloat(q, q.Acc())
	if neg {
		r.se |= signBit
	}
	return r
}

// Scan is a support routine for fmt.Scanner; it sets z to the value of
// the scanned number. It accepts formats whose verbs are supported by
// fmt.Scan for floating point values, which are:
// 'e', 'E', 'f', 'F', 'g', 'G' and 'v'. Hexadecimal
// floating-point numbers, infinities and NaNs are accepted as well.
func (z *Float80) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	tok, err := s.Token(false, isNumberRune)
	if err != nil {
		return err
	}
	if _, ok := z.SetString(string(tok)); !ok {
		return &strconv.NumError{Func: "Scan", Num: string(tok), Err: strconv.ErrSyntax}
	}
	return nil
}

func isNumberRune(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsDigit(r) || unicode.IsLetter(r) || r == '+' || r == '-' || r == '.' || r == '(' || r == ')' || r == '_')
}
