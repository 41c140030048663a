// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float80

import (
	"fmt"
	"unsafe"
)

// Native register layout expected by the 10-byte image.
const (
	NativeSize = 16 // size in bytes of the native register
	ExpOffset  = 8  // offset in bytes of the sign/exponent word
)

// A Layout describes how a host stores extended precision values.
type Layout struct {
	Size         uintptr // size of the wire image
	NativeSize   uintptr // size of the native register
	ExpOffset    uintptr // offset of the sign/exponent word in the register
	LittleEndian bool
}

// HostLayout measures the layout of the running host.
func HostLayout() Layout {
	var (
		r   register
		one uint16 = 1
	)
	return Layout{
		Size:         unsafe.Sizeof(Float80{}),
		NativeSize:   unsafe.Sizeof(r),
		ExpOffset:    unsafe.Offsetof(r.se),
		LittleEndian: *(*byte)(unsafe.Pointer(&one)) == 1,
	}
}

// A LayoutError is returned by VerifyLayout when a host layout does not match
// the one expected by the 10-byte image.
type LayoutError struct {
	Field    string // "size" (native register), "image size", "exponent offset" or "byte order"
	Expected uintptr
	Actual   uintptr
}

func (e *LayoutError) Error() string {
	if e.Field == "byte order" {
		return "float80: invalid native extended float layout: big endian host"
	}
	return fmt.Sprintf("float80: invalid native extended float layout: expected %s %d but got %d", e.Field, e.Expected, e.Actual)
}

// VerifyLayout checks that l matches the layout the 10-byte image is
// reinterpreted with. It returns a *LayoutError describing the first
// mismatch, or nil.
func VerifyLayout(l Layout) error {
	switch {
	case l.NativeSize != NativeSize:
		return &LayoutError{"size", NativeSize, l.NativeSize}
	case l.Size != Size:
		return &LayoutError{"image size", Size, l.Size}
	case l.ExpOffset != ExpOffset:
		return &LayoutError{"exponent offset", ExpOffset, l.ExpOffset}
	case !l.LittleEndian:
		return &LayoutError{Field: "byte order"}
	}
	return nil
}

func init() {
	if err := VerifyLayout(HostLayout()); err != nil {
		panic(err)
	}
}
