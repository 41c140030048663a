// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors types and helpers from math/big.

package float80

import "math/big"

// Accuracy describes the rounding error produced by the most recent
// conversion that generated a value, relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a conversion.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate go tool stringer -type=Accuracy

func fromBigAcc(acc big.Accuracy) Accuracy {
	return Accuracy(acc)
}

// An ErrNaN panic is raised by a conversion that has no meaningful result
// for a NaN operand, such as Int64 or Float. An ErrNaN implements the error
// interface. Arithmetic never panics: it produces NaN values instead.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

// pow10 sets z to 10**n and returns z.
func pow10(z *big.Int, n int) *big.Int {
	return z.Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func isSpace(c byte) bool {
	return c == ' ' || '\t' <= c && c <= '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func hexVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// lower returns the ASCII lower case of c.
func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// prefixFold returns the length of the longest common prefix of s and the
// lower case word w, ignoring ASCII case.
func prefixFold(s, w string) int {
	i := 0
	for i < len(s) && i < len(w) && lower(s[i]) == w[i] {
		i++
	}
	return i
}
