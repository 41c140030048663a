// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Float80 values.

package float80

import "fmt"

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// encoding is the 10-byte register image.
func (x *Float80) MarshalBinary() ([]byte, error) {
	buf := make([]byte, Size)
	copy(buf, x[:])
	return buf, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (z *Float80) UnmarshalBinary(buf []byte) error {
	if len(buf) != Size {
		return fmt.Errorf("float80: cannot unmarshal %d bytes into a *float80.Float80", len(buf))
	}
	copy(z[:], buf)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The value is
// marshaled with the shortest decimal representation that parses back to
// the same value. NaN payloads are not preserved.
func (x *Float80) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	var buf []byte
	return x.Append(buf, 'g', -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It
// accepts the formats of SetString.
func (z *Float80) UnmarshalText(text []byte) error {
	v, err := ParseFloat80(string(text))
	if err != nil {
		return fmt.Errorf("float80: cannot unmarshal %q into a *float80.Float80: %w", text, err)
	}
	*z = *v
	return nil
}
