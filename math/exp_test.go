// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"
	"strconv"
	"testing"
)

func Benchmark_expm1(b *testing.B) {
	for _, prec := range []uint{64, 100, 192, 300} {
		b.Run(strconv.Itoa(int(prec)), func(b *testing.B) {
			z := newFloat(prec)
			x := newFloat(prec).SetFloat64(3.73)
			for i := 0; i < b.N; i++ {
				expm1(z, x)
			}
		})
	}
}

func Test_expm1(t *testing.T) {
	td := []struct {
		x   string
		res string
	}{
		{"1",
			"1.718281828459045235360287471352662497757247093699959574966967627724076630353547594571382178525166427427466"},
		{"1e-33",
			"1.000000000000000000000000000000000500000000000000000000000000000000166666666666666666666666666666666708333e-33"},
		{"-1e-33",
			"-9.999999999999999999999999999999995000000000000000000000000000000001666666666666666666666666666666666250000e-34"},
		{"-1e-200", "-1e-200"},
		{"0.5",
			"6.487212707001281468486507878141635716537761007101480115750793116406610211942156086327765200563666430028666e-1"},
		{"-3.73",
			"-9.760071641632908243817556334374066975186005857216426999538931787462445221567720201390702617570362057831322e-1"},
		{"3.73",
			"4.067910816402929322739107579877176093488028589690682702623331198225635750768772841363508033342457807347204e+1"},
		{"-1e200", "-1"},
		{"1e8", "+Inf"},
		{"0", "0"},
	}

	for _, d := range td {
		t.Run(d.x, func(t *testing.T) {
			x := ref(d.x)
			r := ref(d.res)
			for _, prec := range []uint{300, 64, 192, 100, 53} {
				z := expm1(newFloat(prec), x)
				if r.IsInf() || r.Sign() == 0 {
					if z.Cmp(r) != 0 {
						t.Fatalf("Error at precision %d: Expected:\n%g\nGot:\n%g", prec, r, z)
					}
					continue
				}
				if !closeTo(z, r, prec) {
					t.Fatalf("Error at precision %d: Expected:\n%s\nGot:\n%s", prec, r.Text('g', 100), z.Text('g', 100))
				}
			}
		})
	}
}

func Test_exp(t *testing.T) {
	// exp(x) = expm1(x) + 1 away from zero
	for _, s := range []string{"1", "0.5", "-3.73", "3.73", "-1e-33"} {
		x := ref(s)
		want := expm1(newFloat(refPrec), x)
		want.Add(want, one)
		for _, prec := range []uint{64, 192, 300} {
			z := exp(newFloat(prec), x)
			if !closeTo(z, want, prec) {
				t.Fatalf("exp(%s) at precision %d = %s; want %s", s, prec, z.Text('g', 100), want.Text('g', 100))
			}
		}
	}
}

func Test_log(t *testing.T) {
	td := []struct {
		x, res string
	}{
		{"3", "1.09861228866810969139524523692252570464749055782274945173469433363749429321860896687361575481373208878797002907"},
		{"0.001", "-6.90775527898213705205397436405309262280330446588631892809998370290271782903205744070799161526879489502590335213"},
		{"1e100", "2.30258509299404568401799145468436420760110148862877297603332790096757260967735248023599720508959829834196778404e+2"},
		{"10", ln10_110},
		{"2", ln2_110},
	}
	for _, d := range td {
		x, r := ref(d.x), ref(d.res)
		for _, prec := range []uint{64, 192, 300} {
			z := log(newFloat(prec), x)
			if !closeTo(z, r, prec) {
				t.Fatalf("log(%s) at precision %d = %s; want %s", d.x, prec, z.Text('g', 100), r.Text('g', 100))
			}
		}
	}
	// log1p agrees with log(1+x)
	for _, s := range []string{"0.25", "-0.25", "1e-30", "3"} {
		x := ref(s)
		u := newFloat(refPrec).Add(x, one)
		want := log(newFloat(320), u)
		if z := log1p(newFloat(192), x); !closeTo(z, want, 192) {
			t.Fatalf("log1p(%s) = %s; want %s", s, z.Text('g', 60), want.Text('g', 60))
		}
	}
}

func Test_pow(t *testing.T) {
	x := newFloat(64).SetFloat64(1.5)
	z := pow(newFloat(64*20), x, 20)
	want, _ := new(big.Float).SetPrec(200).SetString("3325.25673007965087890625")
	if z.Cmp(want) != 0 {
		t.Fatalf("1.5**20 = %g; want %g", z, want)
	}
	if z := pow(newFloat(64), x, 0); z.Cmp(one) != 0 {
		t.Fatalf("1.5**0 = %g", z)
	}
}
