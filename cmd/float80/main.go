// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command float80 inspects 80-bit extended precision values.
//
//	float80 repr [number]
//	float80 print number [--width n] [--precision p]
//
// repr prints the 10-byte image of a number, read from the command line or
// prompted for on standard input, followed by the image of π. print formats a
// number like the C format "%*.*Lg". Flag defaults can be set with the
// FLOAT80_WIDTH and FLOAT80_PRECISION environment variables.
//
// Negative numbers are accepted as operands: "float80 print -2.5 -p 3" and
// "float80 repr -0" work without a "--" separator.
package main

import (
	"os"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
