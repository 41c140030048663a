// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math_test

import (
	stdmath "math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/db47h/float80"
	"github.com/db47h/float80/math"
	"gonum.org/v1/gonum/floats/scalar"
)

var indef = new(float80.Float80).SetNaN(true)

// mk parses s, which must be a valid number or "indef" for the indefinite
// NaN.
func mk(s string) *float80.Float80 {
	if s == "indef" {
		return new(float80.Float80).Set(indef)
	}
	x, ok := new(float80.Float80).SetString(s)
	if !ok {
		panic("invalid number " + s)
	}
	return x
}

func alike(x, y *float80.Float80) bool {
	return *x == *y
}

// ulps returns the distance between the finite x and y in units in the last
// place, or a large value if their signs differ.
func ulps(x, y *float80.Float80) int64 {
	if x.Signbit() != y.Signbit() {
		return 1 << 62
	}
	key := func(f *float80.Float80) *big.Int {
		_, e, m := f.Bits()
		k := new(big.Int).SetUint64(uint64(e))
		k.Lsh(k, 63)
		return k.Add(k, new(big.Int).SetUint64(m&^(1<<63)))
	}
	d := new(big.Int).Sub(key(x), key(y))
	d.Abs(d)
	if !d.IsInt64() {
		return 1 << 62
	}
	return d.Int64()
}

// check compares got against want: special values must have the same image
// and finite nonzero ones must be within one ulp.
func check(t *testing.T, op string, got, want *float80.Float80) {
	t.Helper()
	if want.IsNaN() || want.IsInf() || want.Sign() == 0 {
		if !alike(got, want) {
			t.Errorf("%s = %v (% x); want %v (% x)", op, got, got[:], want, want[:])
		}
		return
	}
	if !got.IsFinite() || ulps(got, want) > 1 {
		t.Errorf("%s = %v; want %v", op, got, want)
	}
}

type unary func(z, x *float80.Float80) *float80.Float80

type unaryCase struct {
	x, want string
}

func testUnary(t *testing.T, name string, f unary, td []unaryCase) {
	t.Helper()
	for _, d := range td {
		x := mk(d.x)
		save := *x
		z := f(new(float80.Float80), x)
		check(t, name+"("+d.x+")", z, mk(d.want))
		if save != *x {
			t.Errorf("%s(%s): argument modified", name, d.x)
		}
		// aliasing
		f(x, x)
		if !alike(x, z) {
			t.Errorf("%s(%s) in place = %v; want %v", name, d.x, x, z)
		}
	}
}

func TestExp(t *testing.T) {
	testUnary(t, "Exp", math.Exp, []unaryCase{
		{"0", "1"},
		{"-0", "1"},
		{"inf", "inf"},
		{"-inf", "0"},
		{"nan", "nan"},
		{"-nan", "-nan"},
		{"0.5", "1.6487212707001281469"},
		{"-0.5", "0.60653065971263342361"},
		{"1", "2.7182818284590452354"},
		{"2", "7.3890560989306502274"},
		{"-3", "4.978706836786394298e-2"},
		{"25", "72004899337.385872528"},
		{"-25", "1.3887943864964020595e-11"},
		{"10", "2.2026465794806716517e+4"},
		{"0.0009765625", "1.0009770394924165352"},
		{"-11000", "5.7636694291681836964e-4778"},
		{"11000", "1.7350058192777385096e+4777"},
		{"11355", "2.5932358176347452271e+4931"},
		{"11357", "inf"},
		{"-11400", "0"},
		{"1e30", "inf"},
		{"-1e30", "0"},
	})
}

func TestExpm1(t *testing.T) {
	testUnary(t, "Expm1", math.Expm1, []unaryCase{
		{"0", "0"},
		{"-0", "-0"},
		{"inf", "inf"},
		{"-inf", "-1"},
		{"nan", "nan"},
		{"0.0009765625", "9.770394924165352428e-4"},
		{"-0.0009765625", "-9.7608581802433776527e-4"},
		{"0.5", "6.4872127070012814684e-1"},
		{"-0.5", "-3.934693402873665764e-1"},
		{"3", "1.9085536923187667742e+1"},
		{"-3", "-9.50212931632136057e-1"},
		{"100", "2.6881171418161354484e+43"},
		{"1e-4000", "1e-4000"},
		{"-1e-4000", "-1e-4000"},
		{"-100", "-1"},
		{"1e30", "inf"},
	})
}

func TestExp2(t *testing.T) {
	testUnary(t, "Exp2", math.Exp2, []unaryCase{
		{"0", "1"},
		{"inf", "inf"},
		{"-inf", "0"},
		{"nan", "nan"},
		{"0.5", "1.4142135623730950488"},
		{"-0.5", "0.7071067811865475244"},
		{"2.5", "5.656854249492380195"},
		{"-10.25", "8.211879055212056084e-4"},
		{"100.75", "2.1319256910522753565e+30"},
		{"16383", "0x1p16383"},
		{"16384", "inf"},
		{"-16382", "0x1p-16382"},
		{"-16445", "0x1p-16445"},
		{"-16446", "0"},
	})
	// integer powers are exact
	for i := int64(-16000); i <= 16000; i += 997 {
		z := math.Exp2(new(float80.Float80), new(float80.Float80).SetInt64(i))
		_, e, m := z.Bits()
		if m != 1<<63 || int(e)-float80.Bias != int(i) {
			t.Errorf("Exp2(%d) = %v", i, z)
		}
	}
}

func TestLog(t *testing.T) {
	testUnary(t, "Log", math.Log, []unaryCase{
		{"inf", "inf"},
		{"0", "-inf"},
		{"-0", "-inf"},
		{"1", "0"},
		{"-1", "indef"},
		{"-inf", "indef"},
		{"nan", "nan"},
		{"0.5", "-6.9314718055994530943e-1"},
		{"2", "6.9314718055994530943e-1"},
		{"3", "1.0986122886681096914"},
		{"10", "2.302585092994045684"},
		{"1e30", "6.907755278982137052e+1"},
		{"0.001", "-6.907755278982137052"},
		{"0x1p-16445", "-1.1398805384308300614e+4"},
	})
}

func TestLog2(t *testing.T) {
	testUnary(t, "Log2", math.Log2, []unaryCase{
		{"inf", "inf"},
		{"0", "-inf"},
		{"-2", "indef"},
		{"nan", "nan"},
		{"1", "0"},
		{"3", "1.5849625007211561815"},
		{"10", "3.3219280948873623478"},
		{"0.1", "-3.3219280948873623478"},
		{"1e4000", "1.3287712379549449391e+4"},
	})
	for i := int64(-16445); i <= 16383; i += 331 {
		x := math.Exp2(new(float80.Float80), new(float80.Float80).SetInt64(i))
		z := math.Log2(x, x)
		if n, acc := z.Int64(); n != i || acc != float80.Exact {
			t.Errorf("Log2(2**%d) = %v", i, z)
		}
	}
}

func TestLog10(t *testing.T) {
	testUnary(t, "Log10", math.Log10, []unaryCase{
		{"inf", "inf"},
		{"-0", "-inf"},
		{"-inf", "indef"},
		{"1", "0"},
		{"2", "3.0102999566398119523e-1"},
		{"3", "4.771212547196624373e-1"},
		{"0.5", "-3.0102999566398119523e-1"},
		{"7e-300", "-2.9915490195998574316e+2"},
		{"10", "1"},
		{"1000", "3"},
	})
}

func TestLog1p(t *testing.T) {
	testUnary(t, "Log1p", math.Log1p, []unaryCase{
		{"inf", "inf"},
		{"-inf", "indef"},
		{"0", "0"},
		{"-0", "-0"},
		{"-1", "-inf"},
		{"-2", "indef"},
		{"nan", "nan"},
		{"0.0009765625", "9.7608597305545889595e-4"},
		{"-0.25", "-2.8768207245178092744e-1"},
		{"0.5", "4.0546510810816438199e-1"},
		{"3", "1.3862943611198906189"},
		{"1e20", "4.605170185988091368e+1"},
		{"1e-4000", "1e-4000"},
	})
}

func TestSinCosTan(t *testing.T) {
	testUnary(t, "Sin", math.Sin, []unaryCase{
		{"0", "0"},
		{"-0", "-0"},
		{"inf", "indef"},
		{"-inf", "indef"},
		{"nan", "nan"},
		{"0.5", "4.7942553860420300028e-1"},
		{"1", "8.4147098480789650666e-1"},
		{"2", "9.092974268256816954e-1"},
		{"3", "1.411200080598672221e-1"},
		{"10", "-5.440211108893698134e-1"},
		{"100", "-5.0636564110975879364e-1"},
		{"1e6", "-3.4999350217129295213e-1"},
		{"1e22", "-8.5220084976718880177e-1"},
		{"-0.75", "-6.8163876002333416676e-1"},
		{"1e-4000", "1e-4000"},
	})
	testUnary(t, "Cos", math.Cos, []unaryCase{
		{"0", "1"},
		{"-0", "1"},
		{"inf", "indef"},
		{"nan", "nan"},
		{"0.5", "8.7758256189037271613e-1"},
		{"1", "5.403023058681397174e-1"},
		{"2", "-4.16146836547142387e-1"},
		{"3", "-9.899924966004454573e-1"},
		{"10", "-8.3907152907645245226e-1"},
		{"100", "8.623188722876839341e-1"},
		{"1e6", "9.367521275331447869e-1"},
		{"1e22", "5.232147853951389455e-1"},
		{"-0.75", "7.316888688738208863e-1"},
	})
	testUnary(t, "Tan", math.Tan, []unaryCase{
		{"0", "0"},
		{"-0", "-0"},
		{"-inf", "indef"},
		{"nan", "nan"},
		{"0.5", "5.4630248984379051327e-1"},
		{"1", "1.5574077246549022305"},
		{"2", "-2.1850398632615189917"},
		{"3", "-1.4254654307427780529e-1"},
		{"10", "6.4836082745908667126e-1"},
		{"-0.75", "-9.3159645994407246116e-1"},
		{"1e22", "-1.6287782256068988786"},
	})

	// values at multiples of the rounded π
	td := []struct {
		name string
		f    unary
		x    float80.Float80
		want string
	}{
		{"Sin", math.Sin, float80.Pi, "-5.0165576126683320235e-20"},
		{"Sin", math.Sin, float80.Pi_2, "1"},
		{"Cos", math.Cos, float80.Pi_2, "-2.5082788063341660117e-20"},
		{"Cos", math.Cos, float80.Pi, "-1"},
		{"Tan", math.Tan, float80.Pi_4, "1"},
	}
	for _, d := range td {
		z := d.f(new(float80.Float80), &d.x)
		check(t, d.name+"("+d.x.String()+")", z, mk(d.want))
	}
}

func TestInverseTrig(t *testing.T) {
	pi2 := new(float80.Float80).Set(&float80.Pi_2)
	testUnary(t, "Asin", math.Asin, []unaryCase{
		{"0", "0"},
		{"-0", "-0"},
		{"nan", "nan"},
		{"1.5", "indef"},
		{"-inf", "indef"},
		{"1", pi2.Text('e', 20)},
		{"-1", "-" + pi2.Text('e', 20)},
		{"0.5", "5.2359877559829887307e-1"},
		{"-0.5", "-5.2359877559829887307e-1"},
		{"0.75", "8.4806207898148100807e-1"},
		{"0.0009765625", "9.76562655220495716e-4"},
	})
	testUnary(t, "Acos", math.Acos, []unaryCase{
		{"1", "0"},
		{"0", pi2.Text('e', 20)},
		{"-1", float80.Pi.Text('e', 20)},
		{"-1.5", "indef"},
		{"inf", "indef"},
		{"nan", "nan"},
		{"0.5", "1.0471975511965977461"},
		{"-0.5", "2.0943951023931954923"},
		{"0.75", "7.227342478134156112e-1"},
		{"0.0009765625", "1.5698197641396761235"},
	})
	testUnary(t, "Atan", math.Atan, []unaryCase{
		{"0", "0"},
		{"-0", "-0"},
		{"inf", pi2.Text('e', 20)},
		{"-inf", "-" + pi2.Text('e', 20)},
		{"nan", "nan"},
		{"0.5", "4.636476090008061162e-1"},
		{"-0.5", "-4.636476090008061162e-1"},
		{"1", "7.8539816339744830963e-1"},
		{"2", "1.107148717794090503"},
		{"10", "1.4711276743037345918"},
		{"1e20", "1.5707963267948966193"},
		{"-0.0009765625", "-9.765621895593194304e-4"},
	})
}

func TestAtan2(t *testing.T) {
	pi := float80.Pi.Text('e', 20)
	pi2 := float80.Pi_2.Text('e', 20)
	pi4 := float80.Pi_4.Text('e', 20)
	pi34 := "2.356194490192344929"
	td := []struct {
		y, x, want string
	}{
		{"1", "nan", "nan"},
		{"nan", "1", "nan"},
		{"0", "1", "0"},
		{"-0", "1", "-0"},
		{"0", "0", "0"},
		{"-0", "0", "-0"},
		{"0", "-1", pi},
		{"-0", "-1", "-" + pi},
		{"0", "-0", pi},
		{"-0", "-0", "-" + pi},
		{"1", "0", pi2},
		{"-1", "-0", "-" + pi2},
		{"inf", "inf", pi4},
		{"-inf", "inf", "-" + pi4},
		{"inf", "-inf", pi34},
		{"-inf", "-inf", "-" + pi34},
		{"1", "inf", "0"},
		{"-1", "inf", "-0"},
		{"1", "-inf", pi},
		{"-1", "-inf", "-" + pi},
		{"inf", "1", pi2},
		{"-inf", "-1", "-" + pi2},
		{"1", "1", "7.8539816339744830963e-1"},
		{"1", "-1", pi34},
		{"-1", "-1", "-" + pi34},
		{"-1", "1", "-7.8539816339744830963e-1"},
		{"2", "3", "5.8800260354756755124e-1"},
		{"-0.5", "-10", "-3.091634257867850477"},
	}
	for _, d := range td {
		z := math.Atan2(new(float80.Float80), mk(d.y), mk(d.x))
		check(t, "Atan2("+d.y+", "+d.x+")", z, mk(d.want))
	}
}

func TestHyperbolic(t *testing.T) {
	testUnary(t, "Sinh", math.Sinh, []unaryCase{
		{"0", "0"},
		{"-0", "-0"},
		{"inf", "inf"},
		{"-inf", "-inf"},
		{"nan", "nan"},
		{"0.5", "5.2109530549374736164e-1"},
		{"-0.5", "-5.2109530549374736164e-1"},
		{"2", "3.6268604078470187677"},
		{"10", "1.1013232874703393377e+4"},
		{"-25", "-3.600244966869293626e+10"},
		{"1000", "9.8503555700852349693e+433"},
		{"1e-4000", "1e-4000"},
		{"12000", "inf"},
		{"-12000", "-inf"},
	})
	testUnary(t, "Cosh", math.Cosh, []unaryCase{
		{"0", "1"},
		{"-0", "1"},
		{"inf", "inf"},
		{"-inf", "inf"},
		{"nan", "nan"},
		{"0.5", "1.1276259652063807853"},
		{"-0.5", "1.1276259652063807853"},
		{"2", "3.7621956910836314597"},
		{"10", "1.1013232920103323139e+4"},
		{"-25", "3.600244966869293626e+10"},
		{"1000", "9.8503555700852349693e+433"},
		{"-12000", "inf"},
	})
	testUnary(t, "Tanh", math.Tanh, []unaryCase{
		{"0", "0"},
		{"-0", "-0"},
		{"inf", "1"},
		{"-inf", "-1"},
		{"nan", "nan"},
		{"0.5", "4.6211715726000975851e-1"},
		{"-0.5", "-4.6211715726000975851e-1"},
		{"2", "9.6402758007581688395e-1"},
		{"10", "9.999999958776927636e-1"},
		{"0.0009765625", "9.765621895592602186e-4"},
		{"100", "1"},
		{"-100", "-1"},
	})
	testUnary(t, "Asinh", math.Asinh, []unaryCase{
		{"0", "0"},
		{"-0", "-0"},
		{"inf", "inf"},
		{"-inf", "-inf"},
		{"nan", "nan"},
		{"0.5", "4.812118250596034475e-1"},
		{"-0.5", "-4.812118250596034475e-1"},
		{"2", "1.4436354751788103424"},
		{"1e10", "2.371899811050040215e+1"},
		{"0.0009765625", "9.7656234477963751077e-4"},
	})
	testUnary(t, "Acosh", math.Acosh, []unaryCase{
		{"1", "0"},
		{"inf", "inf"},
		{"0.5", "indef"},
		{"-inf", "indef"},
		{"nan", "nan"},
		{"1.5", "9.62423650119206895e-1"},
		{"2", "1.3169578969248167086"},
		{"10", "2.9932228461263808979"},
		{"1e10", "2.371899811050040215e+1"},
	})
	testUnary(t, "Atanh", math.Atanh, []unaryCase{
		{"0", "0"},
		{"-0", "-0"},
		{"1", "inf"},
		{"-1", "-inf"},
		{"1.5", "indef"},
		{"inf", "indef"},
		{"nan", "nan"},
		{"0.5", "5.493061443340548457e-1"},
		{"-0.5", "-5.493061443340548457e-1"},
		{"0.75", "9.729550745276566525e-1"},
		{"0.0009765625", "9.765628104410358409e-4"},
	})
}

func TestCbrt(t *testing.T) {
	testUnary(t, "Cbrt", math.Cbrt, []unaryCase{
		{"0", "0"},
		{"-0", "-0"},
		{"inf", "inf"},
		{"-inf", "-inf"},
		{"nan", "nan"},
		{"2", "1.2599210498948731648"},
		{"3", "1.4422495703074083823"},
		{"0.001", "0.1"},
		{"-27", "-3"},
		{"1e3000", "1e1000"},
		{"10", "2.1544346900318837217"},
		{"0x1p-16443", "0x1p-5481"},
		{"0x1p16383", "0x1p5461"},
	})
}

func TestPow(t *testing.T) {
	td := []struct {
		x, y, want string
	}{
		{"nan", "0", "1"},
		{"nan", "-0", "1"},
		{"1", "nan", "1"},
		{"1", "inf", "1"},
		{"2", "nan", "nan"},
		{"nan", "2", "nan"},
		{"0", "-3", "inf"},
		{"-0", "-3", "-inf"},
		{"-0", "-2", "inf"},
		{"-0", "-0.5", "inf"},
		{"-0", "-inf", "inf"},
		{"0", "3", "0"},
		{"-0", "3", "-0"},
		{"-0", "2", "0"},
		{"-0", "inf", "0"},
		{"-1", "inf", "1"},
		{"-1", "-inf", "1"},
		{"2", "inf", "inf"},
		{"2", "-inf", "0"},
		{"0.5", "inf", "0"},
		{"-0.5", "-inf", "inf"},
		{"inf", "0.5", "inf"},
		{"inf", "-0.5", "0"},
		{"-inf", "3", "-inf"},
		{"-inf", "2", "inf"},
		{"-inf", "-3", "-0"},
		{"-inf", "-2", "0"},
		{"-2", "0.5", "indef"},
		{"-2", "3", "-8"},
		{"2", "0.5", "1.4142135623730950488"},
		{"10", "-3", "1e-3"},
		{"3", "64", "3.4336838202925124846e+30"},
		{"1.5", "100", "4.065611775352152374e+17"},
		{"-2", "63", "-9.223372036854775808e+18"},
		{"0.75", "-20.5", "3.6411963647166563354e+2"},
		{"7", "1.5", "1.8520259177452134134e+1"},
		{"2", "-16445", "0x1p-16445"},
		{"2", "16384", "inf"},
		{"10", "5000", "inf"},
		{"-10", "-5001", "-0"},
	}
	for _, d := range td {
		z := math.Pow(new(float80.Float80), mk(d.x), mk(d.y))
		check(t, "Pow("+d.x+", "+d.y+")", z, mk(d.want))
	}
}

func TestHypot(t *testing.T) {
	td := []struct {
		x, y, want string
	}{
		{"inf", "nan", "inf"},
		{"nan", "-inf", "inf"},
		{"nan", "1", "nan"},
		{"1", "nan", "nan"},
		{"0", "-0", "0"},
		{"-3", "0", "3"},
		{"3", "4", "5"},
		{"1", "1", "1.4142135623730950488"},
		{"1e-4000", "1e-4000", "1.4142135623730950488e-4000"},
		{"1e4931", "1e4931", "1.4142135623730950488e+4931"},
		{"5", "-12", "13"},
		{"1e4932", "1e4932", "inf"},
	}
	for _, d := range td {
		z := math.Hypot(new(float80.Float80), mk(d.x), mk(d.y))
		check(t, "Hypot("+d.x+", "+d.y+")", z, mk(d.want))
	}
}

func TestProxies(t *testing.T) {
	x, y := mk("7.5"), mk("2")
	if z := math.FMA(new(float80.Float80), x, y, mk("1")); !z.Eq(mk("16")) {
		t.Errorf("FMA(7.5, 2, 1) = %v", z)
	}
	if z := math.Sqrt(new(float80.Float80), mk("2.25")); !z.Eq(mk("1.5")) {
		t.Errorf("Sqrt(2.25) = %v", z)
	}
	if z := math.Sqrt(new(float80.Float80), mk("-1")); !alike(z, indef) {
		t.Errorf("Sqrt(-1) = %v", z)
	}
	if z := math.Mod(new(float80.Float80), x, y); !z.Eq(mk("1.5")) {
		t.Errorf("Mod(7.5, 2) = %v", z)
	}
	if z := math.Min(new(float80.Float80), x, y); !z.Eq(y) {
		t.Errorf("Min(7.5, 2) = %v", z)
	}
	if z := math.Max(new(float80.Float80), x, y); !z.Eq(x) {
		t.Errorf("Max(7.5, 2) = %v", z)
	}
}

// TestFloat64Agreement checks random arguments against the float64 functions
// of the standard library.
func TestFloat64Agreement(t *testing.T) {
	td := []struct {
		name   string
		f      unary
		g      func(float64) float64
		lo, hi float64
	}{
		{"Exp", math.Exp, stdmath.Exp, -700, 700},
		{"Expm1", math.Expm1, stdmath.Expm1, -1, 1},
		{"Exp2", math.Exp2, stdmath.Exp2, -1000, 1000},
		{"Log", math.Log, stdmath.Log, 1e-300, 1e300},
		{"Log2", math.Log2, stdmath.Log2, 1e-300, 1e300},
		{"Log10", math.Log10, stdmath.Log10, 2, 1e300},
		{"Log1p", math.Log1p, stdmath.Log1p, -0.5, 10},
		{"Sin", math.Sin, stdmath.Sin, -100, 100},
		{"Cos", math.Cos, stdmath.Cos, -100, 100},
		{"Tan", math.Tan, stdmath.Tan, -1.5, 1.5},
		{"Asin", math.Asin, stdmath.Asin, -0.99, 0.99},
		// stdmath.Acos loses several ulps near 1
		{"Acos", math.Acos, stdmath.Acos, -0.99, 0.99},
		{"Atan", math.Atan, stdmath.Atan, -1e3, 1e3},
		{"Sinh", math.Sinh, stdmath.Sinh, -700, 700},
		{"Cosh", math.Cosh, stdmath.Cosh, -700, 700},
		{"Tanh", math.Tanh, stdmath.Tanh, -20, 20},
		{"Asinh", math.Asinh, stdmath.Asinh, -1e10, 1e10},
		{"Acosh", math.Acosh, stdmath.Acosh, 1.5, 1e10},
		{"Atanh", math.Atanh, stdmath.Atanh, -0.99, 0.99},
		{"Cbrt", math.Cbrt, stdmath.Cbrt, -1e300, 1e300},
	}
	r := rand.New(rand.NewPCG(1, 2))
	n := 200
	if testing.Short() {
		n = 20
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			for range n {
				x := d.lo + r.Float64()*(d.hi-d.lo)
				want := d.g(x)
				if want == 0 {
					continue
				}
				got, _ := d.f(new(float80.Float80), new(float80.Float80).SetFloat64(x)).Float64()
				if !scalar.EqualWithinULP(got, want, 4) {
					t.Errorf("%s(%g) = %g; want %g", d.name, x, got, want)
				}
			}
		})
	}
}

func BenchmarkExp(b *testing.B) {
	x := mk("12.375")
	z := new(float80.Float80)
	for i := 0; i < b.N; i++ {
		math.Exp(z, x)
	}
}

func BenchmarkSin(b *testing.B) {
	x := mk("1e10")
	z := new(float80.Float80)
	for i := 0; i < b.N; i++ {
		math.Sin(z, x)
	}
}
